// Package v1 provides the HTTP API.
package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/dinequickly/costco-programatic/internal/domain/availability"
	"github.com/dinequickly/costco-programatic/internal/infrastructure/http/v1/handlers"
	"github.com/dinequickly/costco-programatic/internal/infrastructure/http/v1/middleware"
	"github.com/dinequickly/costco-programatic/internal/infrastructure/metrics"
	"github.com/dinequickly/costco-programatic/pkg/logger"
)

// RouterConfig holds router dependencies.
type RouterConfig struct {
	// Service runs the search workflow
	Service *availability.Service

	// Logger for request logging
	Logger *logger.Logger

	// Metrics, optional; enables /metrics and request instrumentation
	Metrics *metrics.Metrics

	// DifferentiateStatus maps failures to 400/404/502 instead of a flat 500
	DifferentiateStatus bool

	// Version reported by the service description
	Version string
}

// RouteRegistrar is implemented by handlers that own a set of routes.
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	log := cfg.Logger
	if log == nil {
		log = logger.Default()
	}
	errOpts := middleware.ErrorOptions{DifferentiateStatus: cfg.DifferentiateStatus}

	router := gin.New()

	// Global middleware (order matters!)
	// Recovery stays inside Logger and Metrics: a panic is logged and counted as a 500.
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(log))
	if cfg.Metrics != nil {
		router.Use(middleware.Metrics(cfg.Metrics))
	}
	router.Use(middleware.Recovery(errOpts))
	router.Use(middleware.ErrorHandler(errOpts))

	defaults := cfg.Service.Defaults()
	baseHandler := handlers.NewBaseHandler()

	healthHandler := handlers.NewHealthHandler(cfg.Version, defaults)
	router.GET("/", healthHandler.Describe)
	router.GET("/health", healthHandler.Health)

	if cfg.Metrics != nil {
		router.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	api := router.Group("/api")
	for _, h := range []RouteRegistrar{
		handlers.NewCostcoHandler(baseHandler, cfg.Service),
		handlers.NewConfigHandler(baseHandler, defaults),
	} {
		h.RegisterRoutes(api)
	}

	return router
}
