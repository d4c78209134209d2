// Package middleware provides the Gin middleware chain of the service.
package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/asteria-rituals/daily-ritual/internal/platform/logging"
)

// HeaderRequestID is the header name for request ID.
const HeaderRequestID = "X-Request-ID"

// RequestID returns middleware that extracts or generates a request ID.
// The ID is echoed in the response headers and tagged on the context logger,
// so outbound client logs carry it. It is not sent to third-party hosts.
func RequestID() gin.HandlerFunc {
	return createIDMiddleware(idMiddlewareConfig{
		headerName: HeaderRequestID,
		enrichers:  []contextEnricher{logging.WithRequestID},
	})
}
