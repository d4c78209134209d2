package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/asteria-rituals/daily-ritual/internal/adapters/http/dto"
	"github.com/asteria-rituals/daily-ritual/internal/domain"
)

// RitualPath is the route of the daily ritual endpoint.
const RitualPath = "/api/daily"

// RitualRunner runs one ritual invocation. *app.RitualService satisfies it.
type RitualRunner interface {
	Run(ctx context.Context) (*domain.Summary, error)
}

// RitualHandler serves the daily ritual endpoint.
type RitualHandler struct {
	runner RitualRunner
}

// NewRitualHandler creates a new ritual handler.
func NewRitualHandler(runner RitualRunner) *RitualHandler {
	return &RitualHandler{
		runner: runner,
	}
}

// Daily handles GET /api/daily. It builds and publishes today's page and
// answers with the JSON summary. Failures are answered in plain text:
// 500 for missing or invalid settings or an unreachable notes service, 502
// when the notes service rejects the blocks. A caller that goes away does
// not stop a run already under way.
func (h *RitualHandler) Daily(c *gin.Context) {
	summary, err := h.runner.Run(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// RegisterRitualRoutes registers the ritual route on the engine.
func (h *RitualHandler) RegisterRitualRoutes(r gin.IRoutes) {
	r.GET(RitualPath, h.Daily)
}
