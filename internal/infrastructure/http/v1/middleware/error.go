package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dinequickly/costco-programatic/internal/core/apperror"
	appctx "github.com/dinequickly/costco-programatic/internal/core/context"
	"github.com/dinequickly/costco-programatic/internal/infrastructure/http/v1/dto"
	"github.com/dinequickly/costco-programatic/pkg/logger"
)

// ErrorOptions controls how failures are mapped to HTTP status codes.
type ErrorOptions struct {
	// DifferentiateStatus uses AppError.HTTPStatus; otherwise every failure is 500.
	DifferentiateStatus bool
}

// ErrorHandler middleware turns errors registered by handlers into the
// failure envelope {success:false, error, duration}.
func ErrorHandler(opts ErrorOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		// If response already written by handler, do not override it.
		if c.Writer.Written() {
			return
		}

		renderFailure(c, c.Errors.Last().Err, opts)
	}
}

// renderFailure logs err once and writes the failure envelope.
func renderFailure(c *gin.Context, err error, opts ErrorOptions) {
	ctx := c.Request.Context()
	appErr := apperror.Ensure(err)

	logger.Error(ctx, "request failed",
		"code", appErr.Code,
		"message", appErr.Message,
		"details", appErr.Details,
		"cause", appErr.Err,
	)

	status := http.StatusInternalServerError
	if opts.DifferentiateStatus && appErr.HTTPStatus != 0 {
		status = appErr.HTTPStatus
	}

	c.JSON(status, dto.NewErrorResponse(appErr.Message, appctx.Elapsed(ctx)))
}
