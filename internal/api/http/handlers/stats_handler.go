package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/incidentops/incident-service/internal/service"
)

// StatsHandler serves the dashboard aggregates.
type StatsHandler struct {
	service *service.StatsService
}

// NewStatsHandler constructs handler.
func NewStatsHandler(statsService *service.StatsService) *StatsHandler {
	return &StatsHandler{service: statsService}
}

// Overview GET /stats/overview.
func (h *StatsHandler) Overview(c *fiber.Ctx) error {
	stats, err := h.service.Overview(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": stats})
}

// Groups GET /stats/groups.
func (h *StatsHandler) Groups(c *fiber.Ctx) error {
	stats, err := h.service.Groups(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": stats})
}
