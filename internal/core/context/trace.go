// Package context carries request-scoped values (trace ids, request start)
// through context.Context.
package context

import (
	"context"
	"time"
)

// TraceContext contains request tracing information.
type TraceContext struct {
	TraceID   string
	SpanID    string
	RequestID string
	StartedAt time.Time
}

type traceContextKey struct{}

// WithTrace adds TraceContext to context.
func WithTrace(ctx context.Context, trace *TraceContext) context.Context {
	return context.WithValue(ctx, traceContextKey{}, trace)
}

// GetTrace returns TraceContext from context.
func GetTrace(ctx context.Context) *TraceContext {
	if v, ok := ctx.Value(traceContextKey{}).(*TraceContext); ok {
		return v
	}
	return nil
}

// GetRequestID returns request ID from context or empty string.
func GetRequestID(ctx context.Context) string {
	if t := GetTrace(ctx); t != nil {
		return t.RequestID
	}
	return ""
}

// Elapsed returns time since the request started, or zero when the context
// carries no trace.
func Elapsed(ctx context.Context) time.Duration {
	if t := GetTrace(ctx); t != nil && !t.StartedAt.IsZero() {
		return time.Since(t.StartedAt)
	}
	return 0
}
