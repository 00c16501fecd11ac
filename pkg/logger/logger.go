// Package logger is the zap setup shared by the server, the HTTP layer and
// the upstream clients. A request-scoped Logger travels in context.Context
// and stamps every entry with the request and trace ids.
package logger

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	appctx "github.com/dinequickly/costco-programatic/internal/core/context"
)

// Logger is a sugared zap logger.
type Logger struct {
	*zap.SugaredLogger
}

// Config selects level, encoder and sinks.
type Config struct {
	Level       string // debug, info, warn, error; anything else means info
	Development bool   // colored console output instead of JSON
	Service     string // added to every entry as "service" when set
	OutputPaths []string
}

// New builds a Logger from cfg.
func New(cfg Config) (*Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	zc := zap.NewProductionConfig()
	if cfg.Development {
		zc = zap.NewDevelopmentConfig()
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	if len(cfg.OutputPaths) > 0 {
		zc.OutputPaths = cfg.OutputPaths
	}
	if cfg.Service != "" {
		zc.InitialFields = map[string]any{"service": cfg.Service}
	}

	zl, err := zc.Build()
	if err != nil {
		return nil, err
	}
	return &Logger{zl.Sugar()}, nil
}

// Nop discards everything.
func Nop() *Logger {
	return &Logger{zap.NewNop().Sugar()}
}

var (
	fallbackOnce sync.Once
	fallback     *Logger
)

// Default is the JSON stdout logger used when a context carries none,
// e.g. in code running outside a request.
func Default() *Logger {
	fallbackOnce.Do(func() {
		zc := zap.NewProductionConfig()
		zc.OutputPaths = []string{"stdout"}
		zl, err := zc.Build()
		if err != nil {
			zl = zap.NewNop()
		}
		fallback = &Logger{zl.Sugar()}
	})
	return fallback
}

// WithContext returns l annotated with the request and trace ids in ctx.
func (l *Logger) WithContext(ctx context.Context) *Logger {
	tc := appctx.GetTrace(ctx)
	if tc == nil {
		return l
	}
	return &Logger{l.SugaredLogger.With("trace_id", tc.TraceID, "request_id", tc.RequestID)}
}

// WithComponent tags entries with the emitting component
// ("upstream", "warehouse", "availability", ...).
func (l *Logger) WithComponent(name string) *Logger {
	return &Logger{l.SugaredLogger.With("component", name)}
}

type ctxKey struct{}

// WithLogger stores l in ctx.
func WithLogger(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext returns the logger stored in ctx (or Default) annotated with
// the request's trace ids.
func FromContext(ctx context.Context) *Logger {
	l, ok := ctx.Value(ctxKey{}).(*Logger)
	if !ok {
		l = Default()
	}
	return l.WithContext(ctx)
}

// helper reports the caller of the package-level functions below, not the
// functions themselves.
func helper(ctx context.Context) *zap.SugaredLogger {
	return FromContext(ctx).WithOptions(zap.AddCallerSkip(1))
}

func Debug(ctx context.Context, msg string, kv ...any) { helper(ctx).Debugw(msg, kv...) }
func Info(ctx context.Context, msg string, kv ...any)  { helper(ctx).Infow(msg, kv...) }
func Warn(ctx context.Context, msg string, kv ...any)  { helper(ctx).Warnw(msg, kv...) }
func Error(ctx context.Context, msg string, kv ...any) { helper(ctx).Errorw(msg, kv...) }
