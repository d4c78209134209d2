package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type contextEnricher func(ctx context.Context, id string) context.Context

// idMiddlewareConfig describes one propagated identifier header.
type idMiddlewareConfig struct {
	headerName string
	enrichers  []contextEnricher
}

// createIDMiddleware reads the header, or generates a UUID v4 when it is
// absent, and echoes it on the response. Each enricher stores the ID in the
// request context.
func createIDMiddleware(cfg idMiddlewareConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(cfg.headerName)
		if id == "" {
			id = uuid.NewString()
		}

		c.Header(cfg.headerName, id)

		ctx := c.Request.Context()
		for _, enrich := range cfg.enrichers {
			ctx = enrich(ctx, id)
		}

		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
