package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/asteria-rituals/daily-ritual/internal/platform/logging"
)

// HeaderCorrelationID is the header name for correlation ID. Unlike the
// request ID it is kept across service hops.
const HeaderCorrelationID = "X-Correlation-ID"

// CorrelationID returns middleware that propagates X-Correlation-ID, or
// starts a new correlation when the caller sent none.
func CorrelationID() gin.HandlerFunc {
	return createIDMiddleware(idMiddlewareConfig{
		headerName: HeaderCorrelationID,
		enrichers:  []contextEnricher{logging.WithCorrelationID},
	})
}
