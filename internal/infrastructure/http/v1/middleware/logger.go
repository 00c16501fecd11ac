package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dinequickly/costco-programatic/pkg/logger"
)

// Logger puts log into the request context for handlers and upstream
// clients, then writes one access entry per request once the response status
// is final. It runs outside Recovery, so panics are logged as 500s.
func Logger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		began := time.Now()
		req := c.Request

		c.Request = req.WithContext(logger.WithLogger(req.Context(), log))
		c.Next()

		entry := []any{
			"method", req.Method,
			"route", c.FullPath(),
			"path", req.URL.Path,
			"status", c.Writer.Status(),
			"bytes", c.Writer.Size(),
			"duration_ms", time.Since(began).Milliseconds(),
			"client_ip", c.ClientIP(),
		}
		if q := req.URL.RawQuery; q != "" {
			entry = append(entry, "query", q)
		}
		if errs := c.Errors.String(); errs != "" {
			entry = append(entry, "errors", errs)
		}

		access := log.WithContext(c.Request.Context())
		if c.Writer.Status() >= 500 {
			access.Warnw("request served", entry...)
			return
		}
		access.Infow("request served", entry...)
	}
}
