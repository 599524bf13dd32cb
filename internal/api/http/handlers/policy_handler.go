package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/incidentops/incident-service/internal/auth"
	"github.com/incidentops/incident-service/internal/domain"
)

// PolicyHandler serves the static role policy: permission rows and
// navigation entries. Unrecognized roles get the USER row rather than an
// error.
type PolicyHandler struct{}

// NewPolicyHandler constructs handler.
func NewPolicyHandler() *PolicyHandler {
	return &PolicyHandler{}
}

// Permissions GET /permissions/:role.
func (h *PolicyHandler) Permissions(c *fiber.Ctx) error {
	role := domain.Role(c.Params("role"))
	return c.JSON(fiber.Map{"data": auth.PermissionsFor(role)})
}

// Navigation GET /navigation/:role.
func (h *PolicyHandler) Navigation(c *fiber.Ctx) error {
	role := domain.Role(c.Params("role"))
	return c.JSON(fiber.Map{"data": auth.NavigationFor(role)})
}
