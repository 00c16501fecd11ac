// Package middleware provides HTTP middleware components.
package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/dinequickly/costco-programatic/internal/core/apperror"
	appctx "github.com/dinequickly/costco-programatic/internal/core/context"
	"github.com/dinequickly/costco-programatic/pkg/logger"
)

// Recovery middleware recovers from panics and renders the failure envelope.
// Logs stack trace but never exposes internal details to client.
// Register it after Trace, Logger and Metrics.
func Recovery(opts ErrorOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				ctx := c.Request.Context()
				logger.Error(ctx, "panic recovered",
					"error", err,
					"stack", string(debug.Stack()),
				)

				appErr := apperror.NewInternal(fmt.Errorf("panic: %v", err)).
					WithDetail("request_id", appctx.GetRequestID(ctx))
				_ = c.Error(appErr)
				c.Abort()
				if !c.Writer.Written() {
					renderFailure(c, appErr, opts)
				}
			}
		}()
		c.Next()
	}
}
