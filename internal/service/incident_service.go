package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/incidentops/incident-service/internal/auth"
	"github.com/incidentops/incident-service/internal/domain"
	"github.com/incidentops/incident-service/internal/events"
	"github.com/incidentops/incident-service/internal/paging"
	"github.com/incidentops/incident-service/internal/repository"
	apperrors "github.com/incidentops/incident-service/pkg/util"
)

// IncidentCreateInput carries the caller-supplied fields for a new incident.
// Identifier, status, dates and creator are derived by the service.
type IncidentCreateInput struct {
	Title       string
	Description string
	AssignedTo  string
	Priority    domain.IncidentPriority
}

// IncidentUpdateInput is a full-field replacement for an existing incident.
type IncidentUpdateInput struct {
	Title       string
	Description string
	AssignedTo  string
	Priority    domain.IncidentPriority
	Status      domain.IncidentStatus
	ResolvedAt  *time.Time
}

// IncidentListQuery bundles filter criteria and the requested page.
type IncidentListQuery struct {
	Priority   string
	Status     string
	AssignedTo string
	Page       int
	PageSize   int
}

// IncidentPage is one page of the filtered collection plus the pagination
// state needed by the navigation controls.
type IncidentPage struct {
	Items      []domain.Incident
	TotalCount int
	TotalPages int
	Page       int
	PageSize   int
	PageWindow []int
}

// IncidentService orchestrates incident CRUD with role and ownership checks.
type IncidentService struct {
	incidents       repository.IncidentRepository
	dispatcher      events.Dispatcher
	defaultPageSize int
}

// NewIncidentService builds the service.
func NewIncidentService(incidents repository.IncidentRepository, dispatcher events.Dispatcher, defaultPageSize int) *IncidentService {
	if defaultPageSize <= 0 {
		defaultPageSize = 10
	}
	return &IncidentService{
		incidents:       incidents,
		dispatcher:      dispatcher,
		defaultPageSize: defaultPageSize,
	}
}

// CreateIncident adds a record for the actor. New incidents always start
// OPEN and unresolved, with the identifier assigned by the store.
func (s *IncidentService) CreateIncident(ctx context.Context, actor *domain.User, input IncidentCreateInput) (*domain.Incident, error) {
	if !auth.PermissionsFor(actor.Role).CanAdd {
		return nil, apperrors.NewForbidden("role cannot create incidents")
	}
	if strings.TrimSpace(input.Title) == "" {
		return nil, apperrors.NewValidationError("title required", nil)
	}
	priority := input.Priority
	if priority == "" {
		priority = domain.IncidentPriorityLow
	}

	incident := &domain.Incident{
		Title:       input.Title,
		Description: input.Description,
		AssignedTo:  input.AssignedTo,
		Priority:    priority,
		Status:      domain.IncidentStatusOpen,
		CreatedBy:   actor.Name,
	}
	if err := s.incidents.Create(ctx, incident); err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type:  events.EventIncidentCreated,
		Actor: events.Actor{Name: actor.Name, Role: actor.Role},
		Payload: events.IncidentCreatedPayload{
			IncidentID: incident.ID,
			Title:      incident.Title,
			Priority:   incident.Priority,
		},
	})
	return incident, nil
}

// UpdateIncident replaces every caller-editable field of the record. A USER
// may only touch incidents they created; ADMIN and TECHNICIAN follow the
// static permission table.
func (s *IncidentService) UpdateIncident(ctx context.Context, actor *domain.User, id string, input IncidentUpdateInput) (*domain.Incident, error) {
	existing, err := s.incidents.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !auth.CanEditIncident(actor, existing) {
		return nil, apperrors.NewForbidden("not allowed to edit this incident")
	}

	updated := *existing
	updated.Title = input.Title
	updated.Description = input.Description
	updated.AssignedTo = input.AssignedTo
	updated.Priority = input.Priority
	updated.Status = input.Status
	updated.ResolvedAt = input.ResolvedAt

	if err := s.incidents.Replace(ctx, &updated); err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type:  events.EventIncidentModified,
		Actor: events.Actor{Name: actor.Name, Role: actor.Role},
		Payload: events.IncidentModifiedPayload{
			IncidentID: updated.ID,
			Title:      updated.Title,
		},
	})
	return &updated, nil
}

// DeleteIncidents removes every listed record and reports how many went
// away. Repeating a delete is safe; the second call removes zero. For a
// USER actor every record still present must have been created by them.
func (s *IncidentService) DeleteIncidents(ctx context.Context, actor *domain.User, ids []string) (int, error) {
	if actor.Role == domain.RoleUser {
		for _, id := range ids {
			incident, err := s.incidents.GetByID(ctx, id)
			if apperrors.IsNotFound(err) {
				continue
			}
			if err != nil {
				return 0, err
			}
			if !auth.CanDeleteIncident(actor, incident) {
				return 0, apperrors.NewForbidden("not allowed to delete this incident")
			}
		}
	} else if !auth.PermissionsFor(actor.Role).CanDelete {
		return 0, apperrors.NewForbidden("role cannot delete incidents")
	}

	removed, err := s.incidents.RemoveMany(ctx, ids)
	if err != nil {
		return 0, err
	}
	if removed > 0 {
		s.publish(ctx, events.Event{
			Type:  events.EventIncidentsDeleted,
			Actor: events.Actor{Name: actor.Name, Role: actor.Role},
			Payload: events.IncidentsDeletedPayload{
				IncidentIDs: ids,
				Count:       removed,
			},
		})
	}
	return removed, nil
}

// GetIncident returns a single record for the details view.
func (s *IncidentService) GetIncident(ctx context.Context, actor *domain.User, id string) (*domain.Incident, error) {
	if !auth.PermissionsFor(actor.Role).CanViewDetails {
		return nil, apperrors.NewForbidden("role cannot view incident details")
	}
	return s.incidents.GetByID(ctx, id)
}

// ListIncidents applies the AND-combined filter criteria to the full
// collection and slices out the requested page. The filter is always
// recomputed from the current snapshot.
func (s *IncidentService) ListIncidents(ctx context.Context, query IncidentListQuery) (*IncidentPage, error) {
	filter := repository.IncidentFilter{}
	if p := normalizeCriterion(query.Priority); p != "" {
		priority := domain.IncidentPriority(p)
		filter.Priority = &priority
	}
	if st := normalizeCriterion(query.Status); st != "" {
		status := domain.IncidentStatus(st)
		filter.Status = &status
	}
	if a := normalizeCriterion(query.AssignedTo); a != "" {
		assignee := a
		filter.AssignedTo = &assignee
	}

	filtered, err := s.incidents.ListWithFilter(ctx, filter)
	if err != nil {
		return nil, err
	}

	pageSize := query.PageSize
	if pageSize <= 0 {
		pageSize = s.defaultPageSize
	}
	totalPages := paging.TotalPages(len(filtered), pageSize)
	page := paging.ClampPage(query.Page, totalPages)
	start, end := paging.PageBounds(len(filtered), page, pageSize)

	return &IncidentPage{
		Items:      filtered[start:end],
		TotalCount: len(filtered),
		TotalPages: totalPages,
		Page:       page,
		PageSize:   pageSize,
		PageWindow: paging.Window(page, totalPages),
	}, nil
}

// normalizeCriterion treats empty and the "All" sentinel as no filter.
func normalizeCriterion(value string) string {
	value = strings.TrimSpace(value)
	if strings.EqualFold(value, "All") {
		return ""
	}
	return value
}

func (s *IncidentService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	event.ID = uuid.NewString()
	event.Timestamp = time.Now()
	_ = s.dispatcher.Publish(ctx, event)
}
