package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/incidentops/incident-service/internal/api/dto"
	"github.com/incidentops/incident-service/internal/auth"
	"github.com/incidentops/incident-service/internal/service"
	apperrors "github.com/incidentops/incident-service/pkg/util"
)

// IncidentsHandler manages incident CRUD and list endpoints.
type IncidentsHandler struct {
	service *service.IncidentService
}

// NewIncidentsHandler constructs handler.
func NewIncidentsHandler(incidentService *service.IncidentService) *IncidentsHandler {
	return &IncidentsHandler{service: incidentService}
}

// CreateIncident POST /incidents.
func (h *IncidentsHandler) CreateIncident(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.CreateIncidentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	incident, err := h.service.CreateIncident(c.Context(), principal.User, service.IncidentCreateInput{
		Title:       req.Title,
		Description: req.Description,
		AssignedTo:  req.AssignedTo,
		Priority:    req.Priority,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.FromIncident(incident)})
}

// UpdateIncident PUT /incidents/:id.
func (h *IncidentsHandler) UpdateIncident(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.UpdateIncidentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	incident, err := h.service.UpdateIncident(c.Context(), principal.User, c.Params("id"), service.IncidentUpdateInput{
		Title:       req.Title,
		Description: req.Description,
		AssignedTo:  req.AssignedTo,
		Priority:    req.Priority,
		Status:      req.Status,
		ResolvedAt:  req.ResolvedAt,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.FromIncident(incident)})
}

// DeleteIncidents DELETE /incidents.
func (h *IncidentsHandler) DeleteIncidents(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.DeleteIncidentsRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if len(req.IDs) == 0 {
		return apperrors.NewValidationError("ids required", nil)
	}

	removed, err := h.service.DeleteIncidents(c.Context(), principal.User, req.IDs)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.DeleteIncidentsResponse{Removed: removed}})
}

// GetIncident GET /incidents/:id.
func (h *IncidentsHandler) GetIncident(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	incident, err := h.service.GetIncident(c.Context(), principal.User, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.FromIncident(incident)})
}

// ListIncidents GET /incidents.
func (h *IncidentsHandler) ListIncidents(c *fiber.Ctx) error {
	if _, ok := auth.PrincipalFromContext(c); !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	page, err := h.service.ListIncidents(c.Context(), service.IncidentListQuery{
		Priority:   c.Query("priority"),
		Status:     c.Query("status"),
		AssignedTo: c.Query("assignee"),
		Page:       parseInt(c.Query("page"), 1),
		PageSize:   parseInt(c.Query("page_size"), 0),
	})
	if err != nil {
		return err
	}

	items := make([]dto.IncidentResponse, 0, len(page.Items))
	for i := range page.Items {
		items = append(items, dto.FromIncident(&page.Items[i]))
	}
	return c.JSON(fiber.Map{"data": dto.IncidentPageResponse{
		Items:      items,
		TotalCount: page.TotalCount,
		TotalPages: page.TotalPages,
		Page:       page.Page,
		PageSize:   page.PageSize,
		PageWindow: page.PageWindow,
	}})
}

func parseInt(val string, def int) int {
	if val == "" {
		return def
	}
	parsed, err := strconv.Atoi(val)
	if err != nil || parsed <= 0 {
		return def
	}
	return parsed
}
