package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/asteria-rituals/daily-ritual/internal/adapters/http/handlers"
	"github.com/asteria-rituals/daily-ritual/internal/adapters/http/middleware"
	"github.com/asteria-rituals/daily-ritual/internal/platform/telemetry"
)

// RouterConfig contains configuration for setting up the router.
type RouterConfig struct {
	Logger *slog.Logger

	// ServiceName names the server spans.
	ServiceName string

	HealthHandler *handlers.HealthHandler
	RitualHandler *handlers.RitualHandler
}

// SetupRouter installs the middleware chain and the routes on engine.
// Middleware order (first to last):
//  1. Recovery
//  2. Request ID
//  3. Correlation ID
//  4. OpenTelemetry tracing, then metrics
//  5. Logging (skips /-/ paths)
//
// Routes:
//   - /-/live, /-/ready, /-/build, /-/metrics: operational
//   - GET /api/daily: the ritual. It carries no route deadline; the run
//     outlives a disconnected caller and the client timeouts bound it.
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	engine.HandleMethodNotAllowed = true
	engine.NoRoute(noRoute)
	engine.NoMethod(noMethod)

	engine.Use(
		middleware.Recovery(cfg.Logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
		telemetry.TracingMiddleware(cfg.ServiceName),
		telemetry.Middleware(),
		middleware.Logging(cfg.Logger),
	)

	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutesOnEngine(engine)
	}

	if cfg.RitualHandler != nil {
		cfg.RitualHandler.RegisterRitualRoutes(engine)
	}
}

// NewDefaultRouterConfig creates a RouterConfig.
func NewDefaultRouterConfig(
	logger *slog.Logger,
	serviceName string,
	healthHandler *handlers.HealthHandler,
	ritualHandler *handlers.RitualHandler,
) RouterConfig {
	return RouterConfig{
		Logger:        logger,
		ServiceName:   serviceName,
		HealthHandler: healthHandler,
		RitualHandler: ritualHandler,
	}
}
