package middleware

import (
	"log/slog"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/asteria-rituals/daily-ritual/internal/adapters/http/dto"
	"github.com/asteria-rituals/daily-ritual/internal/platform/logging"
)

// Recovery returns middleware that turns a panic into a 500 INTERNAL_ERROR
// envelope and logs the stack. It must be first in the chain. logger is used
// when the request context carries no logger yet.
func Recovery(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}

			ctx := c.Request.Context()
			logging.FromContextOr(ctx, logger).ErrorContext(ctx, "panic recovered",
				slog.Any("error", r),
				slog.String("stack", string(debug.Stack())),
				slog.String("method", c.Request.Method),
				slog.String("path", c.Request.URL.Path),
				slog.String("trace_id", dto.GetTraceID(c)),
			)

			abortWithEnvelope(c, dto.ErrorCodeInternal, "an internal error occurred")
		}()

		c.Next()
	}
}
