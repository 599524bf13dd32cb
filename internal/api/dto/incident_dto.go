package dto

import (
	"time"

	"github.com/incidentops/incident-service/internal/domain"
)

// CreateIncidentRequest payload.
type CreateIncidentRequest struct {
	Title       string                  `json:"title"`
	Description string                  `json:"description"`
	AssignedTo  string                  `json:"assigned_to"`
	Priority    domain.IncidentPriority `json:"priority"`
}

// UpdateIncidentRequest is a full-field replacement payload.
type UpdateIncidentRequest struct {
	Title       string                  `json:"title"`
	Description string                  `json:"description"`
	AssignedTo  string                  `json:"assigned_to"`
	Priority    domain.IncidentPriority `json:"priority"`
	Status      domain.IncidentStatus   `json:"status"`
	ResolvedAt  *time.Time              `json:"resolved_at"`
}

// DeleteIncidentsRequest carries the identifier set for a bulk delete.
type DeleteIncidentsRequest struct {
	IDs []string `json:"ids"`
}

// DeleteIncidentsResponse reports how many records were removed.
type DeleteIncidentsResponse struct {
	Removed int `json:"removed"`
}

// IncidentResponse is the wire form of an incident. The resolution date is
// rendered as the "N/A" sentinel while unresolved.
type IncidentResponse struct {
	ID          string                  `json:"id"`
	Title       string                  `json:"title"`
	Description string                  `json:"description"`
	AssignedTo  string                  `json:"assigned_to"`
	Priority    domain.IncidentPriority `json:"priority"`
	Status      domain.IncidentStatus   `json:"status"`
	CreatedBy   string                  `json:"created_by"`
	CreatedAt   time.Time               `json:"created_at"`
	ResolvedAt  string                  `json:"resolved_at"`
}

// IncidentPageResponse is one page of the filtered list.
type IncidentPageResponse struct {
	Items      []IncidentResponse `json:"items"`
	TotalCount int                `json:"total_count"`
	TotalPages int                `json:"total_pages"`
	Page       int                `json:"page"`
	PageSize   int                `json:"page_size"`
	PageWindow []int              `json:"page_window"`
}

// UnresolvedSentinel is the rendering of a missing resolution date.
const UnresolvedSentinel = "N/A"

// FromIncident maps a domain incident to its wire form.
func FromIncident(incident *domain.Incident) IncidentResponse {
	resolved := UnresolvedSentinel
	if incident.ResolvedAt != nil {
		resolved = incident.ResolvedAt.Format(time.RFC3339)
	}
	return IncidentResponse{
		ID:          incident.ID,
		Title:       incident.Title,
		Description: incident.Description,
		AssignedTo:  incident.AssignedTo,
		Priority:    incident.Priority,
		Status:      incident.Status,
		CreatedBy:   incident.CreatedBy,
		CreatedAt:   incident.CreatedAt,
		ResolvedAt:  resolved,
	}
}
