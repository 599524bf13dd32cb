package dto

import "github.com/incidentops/incident-service/internal/domain"

// AddTechnicianRequest payload.
type AddTechnicianRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UpdateTechnicianRequest payload.
type UpdateTechnicianRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// StaffMemberResponse wire form.
type StaffMemberResponse struct {
	ID    string              `json:"id"`
	Name  string              `json:"name"`
	Email string              `json:"email"`
	Group domain.StaffGroupID `json:"group"`
}

// GroupRosterResponse pairs group metadata with its members.
type GroupRosterResponse struct {
	ID          domain.StaffGroupID   `json:"id"`
	Label       string                `json:"label"`
	Description string                `json:"description"`
	IDPrefix    string                `json:"id_prefix"`
	MaxMembers  int                   `json:"max_members,omitempty"`
	MinMembers  int                   `json:"min_members,omitempty"`
	Members     []StaffMemberResponse `json:"members"`
}

// FromStaffMember maps a directory entry to its wire form.
func FromStaffMember(m *domain.StaffMember) StaffMemberResponse {
	return StaffMemberResponse{ID: m.ID, Name: m.Name, Email: m.Email, Group: m.Group}
}
