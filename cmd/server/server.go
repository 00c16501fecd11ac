package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/klauspost/compress/gzhttp"

	"github.com/dinequickly/costco-programatic/internal/config"
	"github.com/dinequickly/costco-programatic/internal/domain/availability"
	"github.com/dinequickly/costco-programatic/internal/domain/warehouse"
	v1 "github.com/dinequickly/costco-programatic/internal/infrastructure/http/v1"
	"github.com/dinequickly/costco-programatic/internal/infrastructure/http/v1/handlers"
	"github.com/dinequickly/costco-programatic/internal/infrastructure/metrics"
	"github.com/dinequickly/costco-programatic/internal/infrastructure/netutil"
	"github.com/dinequickly/costco-programatic/internal/infrastructure/upstream"
	"github.com/dinequickly/costco-programatic/pkg/logger"
)

func run(ctx context.Context, cfg *config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}

	log, err := logger.New(logger.Config{
		Level:       cfg.Log.Level,
		Development: cfg.Log.Development,
		Service:     handlers.ServiceName,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Infow("starting costco-item-availability", "version", version)

	// --- Upstream clients ---
	m := metrics.New()
	client := upstream.NewClient(cfg.Upstream.Client(), upstream.WithObserver(m))
	if cfg.Upstream.ClientIdentifier == "" || cfg.Upstream.APIKey == "" {
		log.Warn("upstream client identifier or API key not configured; calls may be rejected")
	}

	// --- Workflow ---
	defaults := availability.NewDefaultsStore(cfg.Defaults)
	resolver := warehouse.NewResolver(upstream.NewGeocoder(client), upstream.NewLocator(client))
	service := availability.NewService(resolver, upstream.NewSearcher(client), defaults)

	d := defaults.Get()
	log.Infow("defaults loaded",
		"keyword", d.Keyword,
		"zip_code", d.ZipCode,
		"limit", d.Limit,
		"warehouse_id", d.WarehouseID,
	)

	// --- Router ---
	router := v1.NewRouter(v1.RouterConfig{
		Service:             service,
		Logger:              log,
		Metrics:             m,
		DifferentiateStatus: cfg.HTTP.DifferentiateStatus,
		Version:             version,
	})

	var handler http.Handler = router
	if cfg.Server.Gzip {
		handler = gzhttp.GzipHandler(router)
	}

	// --- HTTP Server ---
	ln, err := netutil.ListenFallback(ctx, "", cfg.Server.Port, cfg.Server.PortAttempts)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	port := netutil.Port(ln)
	if port != cfg.Server.Port {
		log.Warnw("requested port in use, using next free port", "requested", cfg.Server.Port, "port", port)
	}

	server := &http.Server{
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Infow("server starting", "port", port)
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case sig := <-quit:
		log.Infow("shutting down server...", "signal", sig.String())
	case err, ok := <-serveErr:
		if ok && err != nil {
			_ = ln.Close()
			log.Errorw("server failed", "error", err)
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
		return err
	}

	log.Info("server stopped")
	return nil
}
