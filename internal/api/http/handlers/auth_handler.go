package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/incidentops/incident-service/internal/api/dto"
	"github.com/incidentops/incident-service/internal/auth"
	"github.com/incidentops/incident-service/internal/service"
	apperrors "github.com/incidentops/incident-service/pkg/util"
)

// AuthHandler manages the demo login and role-switch endpoints.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{service: authService}
}

// Login POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	user, token, expiresAt, err := h.service.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.SessionResponse{
		Token:       token,
		ExpiresAt:   expiresAt,
		User:        dto.FromUser(user),
		Permissions: auth.PermissionsFor(user.Role),
		Navigation:  auth.NavigationFor(user.Role),
	}})
}

// SwitchRole POST /auth/role.
func (h *AuthHandler) SwitchRole(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.SwitchRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	user, token, expiresAt, err := h.service.SwitchRole(c.Context(), principal.User, req.Role)
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"data": dto.SessionResponse{
		Token:       token,
		ExpiresAt:   expiresAt,
		User:        dto.FromUser(user),
		Permissions: auth.PermissionsFor(user.Role),
		Navigation:  auth.NavigationFor(user.Role),
	}})
}
