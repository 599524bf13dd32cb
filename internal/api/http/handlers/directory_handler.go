package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/incidentops/incident-service/internal/api/dto"
	"github.com/incidentops/incident-service/internal/domain"
	"github.com/incidentops/incident-service/internal/service"
	apperrors "github.com/incidentops/incident-service/pkg/util"
)

// DirectoryHandler exposes the technician directory.
type DirectoryHandler struct {
	service *service.DirectoryService
}

// NewDirectoryHandler constructs handler.
func NewDirectoryHandler(directoryService *service.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{service: directoryService}
}

// Groups GET /directory/groups.
func (h *DirectoryHandler) Groups(c *fiber.Ctx) error {
	rosters, err := h.service.Rosters(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.GroupRosterResponse, 0, len(rosters))
	for _, roster := range rosters {
		members := make([]dto.StaffMemberResponse, 0, len(roster.Members))
		for i := range roster.Members {
			members = append(members, dto.FromStaffMember(&roster.Members[i]))
		}
		items = append(items, dto.GroupRosterResponse{
			ID:          roster.Group.ID,
			Label:       roster.Group.Label,
			Description: roster.Group.Description,
			IDPrefix:    roster.Group.IDPrefix,
			MaxMembers:  roster.Group.MaxMembers,
			MinMembers:  roster.Group.MinMembers,
			Members:     members,
		})
	}
	return c.JSON(fiber.Map{"data": items})
}

// Search GET /directory/technicians?q=.
func (h *DirectoryHandler) Search(c *fiber.Ctx) error {
	members, err := h.service.Search(c.Context(), c.Query("q"))
	if err != nil {
		return err
	}
	items := make([]dto.StaffMemberResponse, 0, len(members))
	for i := range members {
		items = append(items, dto.FromStaffMember(&members[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// AddTechnician POST /directory/groups/:group/technicians.
func (h *DirectoryHandler) AddTechnician(c *fiber.Ctx) error {
	var req dto.AddTechnicianRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	member, err := h.service.AddTechnician(c.Context(), domain.StaffGroupID(c.Params("group")), req.Name, req.Email)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.FromStaffMember(member)})
}

// UpdateTechnician PUT /directory/technicians/:id.
func (h *DirectoryHandler) UpdateTechnician(c *fiber.Ctx) error {
	var req dto.UpdateTechnicianRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	member, err := h.service.UpdateTechnician(c.Context(), c.Params("id"), req.Name, req.Email)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.FromStaffMember(member)})
}
