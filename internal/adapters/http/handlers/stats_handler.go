package handlers

import (
	"intia-api/internal/core/services"
	"intia-api/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// StatsHandler handles admin dashboard endpoints
type StatsHandler struct {
	statsService *services.StatsService
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(statsService *services.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// Overview returns the admin dashboard snapshot
// @Summary Admin overview
// @Description Global and per-branch counts plus ACTIVE policies ending within 30 days
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Response{data=services.Overview}
// @Router /admin-stats/overview [get]
func (h *StatsHandler) Overview(c *fiber.Ctx) error {
	overview, err := h.statsService.Overview(c.UserContext())
	if err != nil {
		return handleError(c, err)
	}
	return response.Success(c, "Overview retrieved successfully", overview)
}
