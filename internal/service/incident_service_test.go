package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/incidentops/incident-service/internal/domain"
	"github.com/incidentops/incident-service/internal/events"
	"github.com/incidentops/incident-service/internal/repository"
	apperrors "github.com/incidentops/incident-service/pkg/util"
)

type incidentFixture struct {
	service       *IncidentService
	incidents     repository.IncidentRepository
	notifications repository.NotificationRepository
	messages      repository.MessageRepository
	dispatcher    events.Dispatcher
}

func newIncidentFixture(t *testing.T) *incidentFixture {
	t.Helper()
	incidents := repository.NewIncidentRepository()
	notifications := repository.NewNotificationRepository()
	messages := repository.NewMessageRepository()
	dispatcher := events.NewInMemoryDispatcher()

	NewNotificationService(dispatcher, notifications, messages, zap.NewNop()).RegisterHandlers()

	return &incidentFixture{
		service:       NewIncidentService(incidents, dispatcher, 10),
		incidents:     incidents,
		notifications: notifications,
		messages:      messages,
		dispatcher:    dispatcher,
	}
}

var (
	adminActor = &domain.User{Name: "Administrator Bob", Role: domain.RoleAdmin}
	techActor  = &domain.User{Name: "tech_joe", Role: domain.RoleTechnician}
	userActor  = &domain.User{Name: "U1", Role: domain.RoleUser}
)

func TestCreateIncident_FirstAndSecond(t *testing.T) {
	ctx := context.Background()
	f := newIncidentFixture(t)

	incident, err := f.service.CreateIncident(ctx, userActor, IncidentCreateInput{Title: "X", Priority: domain.IncidentPriorityLow})
	require.NoError(t, err)
	assert.Equal(t, "001", incident.ID)
	assert.Equal(t, domain.IncidentStatusOpen, incident.Status)
	assert.Nil(t, incident.ResolvedAt)
	assert.Equal(t, "U1", incident.CreatedBy)

	second, err := f.service.CreateIncident(ctx, userActor, IncidentCreateInput{Title: "Y", Priority: domain.IncidentPriorityHigh})
	require.NoError(t, err)
	assert.Equal(t, "002", second.ID)
}

func TestCreateIncident_Validation(t *testing.T) {
	ctx := context.Background()
	f := newIncidentFixture(t)

	_, err := f.service.CreateIncident(ctx, userActor, IncidentCreateInput{Title: "   "})
	require.Error(t, err)
	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
}

func TestCreateIncident_TechnicianForbidden(t *testing.T) {
	ctx := context.Background()
	f := newIncidentFixture(t)

	_, err := f.service.CreateIncident(ctx, techActor, IncidentCreateInput{Title: "X"})
	require.Error(t, err)
	assert.Equal(t, "FORBIDDEN", apperrors.ToDomainError(err).Code)
}

// A USER creating an incident produces an info notice plus a message to the
// ADMIN role; other roles produce only their own notice text.
func TestCreateIncident_Emissions(t *testing.T) {
	ctx := context.Background()
	f := newIncidentFixture(t)

	_, err := f.service.CreateIncident(ctx, userActor, IncidentCreateInput{Title: "Printer down", Priority: domain.IncidentPriorityHigh})
	require.NoError(t, err)

	notices, err := f.notifications.List(ctx)
	require.NoError(t, err)
	require.Len(t, notices, 1)
	assert.Equal(t, domain.NotificationInfo, notices[0].Type)
	assert.Equal(t, "Incident Created", notices[0].Title)
	assert.Equal(t, "New incident created: Printer down", notices[0].Message)

	messages, err := f.messages.List(ctx)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "U1", messages[0].From)
	assert.Equal(t, "Admin", messages[0].To)
	assert.Equal(t, domain.RoleAdmin, messages[0].ToRole)
	assert.Equal(t, "Printer down", messages[0].Subject)
	assert.Equal(t, "New incident created: Printer down. Priority: HIGH", messages[0].Content)

	// the table blocks technician creation, so the TECHNICIAN notice text
	// is exercised through the dispatcher
	err = f.dispatcher.Publish(ctx, events.Event{
		Type:  events.EventIncidentCreated,
		Actor: events.Actor{Name: "tech_joe", Role: domain.RoleTechnician},
		Payload: events.IncidentCreatedPayload{
			IncidentID: "002",
			Title:      "Switch flapping",
			Priority:   domain.IncidentPriorityLow,
		},
	})
	require.NoError(t, err)
	notices, err = f.notifications.List(ctx)
	require.NoError(t, err)
	require.Len(t, notices, 2)
	assert.Equal(t, "You created: Switch flapping", notices[0].Message)

	_, err = f.service.CreateIncident(ctx, adminActor, IncidentCreateInput{Title: "Audit"})
	require.NoError(t, err)
	notices, err = f.notifications.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "New incident: Audit", notices[0].Message)

	messages, err = f.messages.List(ctx)
	require.NoError(t, err)
	assert.Len(t, messages, 1, "only USER creations message the admin")
}

func TestUpdateIncident_OwnershipRule(t *testing.T) {
	ctx := context.Background()
	f := newIncidentFixture(t)

	mine, err := f.service.CreateIncident(ctx, userActor, IncidentCreateInput{Title: "mine"})
	require.NoError(t, err)
	other, err := f.service.CreateIncident(ctx, adminActor, IncidentCreateInput{Title: "theirs"})
	require.NoError(t, err)

	updated, err := f.service.UpdateIncident(ctx, userActor, mine.ID, IncidentUpdateInput{
		Title:    "mine, renamed",
		Priority: domain.IncidentPriorityMedium,
		Status:   domain.IncidentStatusInProgress,
	})
	require.NoError(t, err)
	assert.Equal(t, "mine, renamed", updated.Title)
	assert.Equal(t, "U1", updated.CreatedBy, "creator survives the replace")

	_, err = f.service.UpdateIncident(ctx, userActor, other.ID, IncidentUpdateInput{Title: "hijack"})
	require.Error(t, err)
	assert.Equal(t, "FORBIDDEN", apperrors.ToDomainError(err).Code)

	// admin edits anything; technician too (table-gated)
	_, err = f.service.UpdateIncident(ctx, adminActor, mine.ID, IncidentUpdateInput{Title: "admin touch", Status: domain.IncidentStatusOpen, Priority: domain.IncidentPriorityLow})
	require.NoError(t, err)
	_, err = f.service.UpdateIncident(ctx, techActor, mine.ID, IncidentUpdateInput{Title: "tech touch", Status: domain.IncidentStatusOpen, Priority: domain.IncidentPriorityLow})
	require.NoError(t, err)
}

func TestUpdateIncident_NotFound(t *testing.T) {
	ctx := context.Background()
	f := newIncidentFixture(t)

	_, err := f.service.UpdateIncident(ctx, adminActor, "404", IncidentUpdateInput{Title: "ghost"})
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))

	notices, listErr := f.notifications.List(ctx)
	require.NoError(t, listErr)
	assert.Empty(t, notices, "no modified notice for a failed update")
}

func TestUpdateIncident_EmitsModifiedNotice(t *testing.T) {
	ctx := context.Background()
	f := newIncidentFixture(t)

	incident, err := f.service.CreateIncident(ctx, adminActor, IncidentCreateInput{Title: "X"})
	require.NoError(t, err)

	_, err = f.service.UpdateIncident(ctx, adminActor, incident.ID, IncidentUpdateInput{Title: "X2", Status: domain.IncidentStatusOpen, Priority: domain.IncidentPriorityLow})
	require.NoError(t, err)

	notices, err := f.notifications.List(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, notices)
	assert.Equal(t, domain.NotificationWarning, notices[0].Type)
	assert.Equal(t, "Incident Modified", notices[0].Title)
	assert.Equal(t, fmt.Sprintf("Incident #%s has been modified", incident.ID), notices[0].Message)
}

func TestDeleteIncidents(t *testing.T) {
	ctx := context.Background()
	f := newIncidentFixture(t)

	for i := 0; i < 3; i++ {
		_, err := f.service.CreateIncident(ctx, adminActor, IncidentCreateInput{Title: fmt.Sprintf("inc %d", i)})
		require.NoError(t, err)
	}

	removed, err := f.service.DeleteIncidents(ctx, adminActor, []string{"001", "002"})
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	notices, err := f.notifications.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.NotificationCritical, notices[0].Type)
	assert.Equal(t, "Incidents Deleted", notices[0].Title)
	assert.Equal(t, "2 incident(s) deleted", notices[0].Message)

	// idempotent: nothing left to remove, still succeeds
	removed, err = f.service.DeleteIncidents(ctx, adminActor, []string{"001", "002"})
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestDeleteIncidents_RoleGates(t *testing.T) {
	ctx := context.Background()
	f := newIncidentFixture(t)

	mine, err := f.service.CreateIncident(ctx, userActor, IncidentCreateInput{Title: "mine"})
	require.NoError(t, err)
	other, err := f.service.CreateIncident(ctx, adminActor, IncidentCreateInput{Title: "theirs"})
	require.NoError(t, err)

	_, err = f.service.DeleteIncidents(ctx, techActor, []string{mine.ID})
	require.Error(t, err)
	assert.Equal(t, "FORBIDDEN", apperrors.ToDomainError(err).Code)

	_, err = f.service.DeleteIncidents(ctx, userActor, []string{other.ID})
	require.Error(t, err)
	assert.Equal(t, "FORBIDDEN", apperrors.ToDomainError(err).Code)

	removed, err := f.service.DeleteIncidents(ctx, userActor, []string{mine.ID})
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
}

func TestListIncidents_FilterAndPagination(t *testing.T) {
	ctx := context.Background()
	f := newIncidentFixture(t)

	for i := 0; i < 25; i++ {
		_, err := f.service.CreateIncident(ctx, adminActor, IncidentCreateInput{Title: fmt.Sprintf("inc %d", i+1)})
		require.NoError(t, err)
	}

	page, err := f.service.ListIncidents(ctx, IncidentListQuery{Page: 1})
	require.NoError(t, err)
	assert.Equal(t, 25, page.TotalCount)
	assert.Equal(t, 3, page.TotalPages)
	assert.Len(t, page.Items, 10)
	assert.Equal(t, []int{1, 2, 3}, page.PageWindow)

	last, err := f.service.ListIncidents(ctx, IncidentListQuery{Page: 3})
	require.NoError(t, err)
	assert.Len(t, last.Items, 5)

	// out-of-range page clamps to the last page
	clamped, err := f.service.ListIncidents(ctx, IncidentListQuery{Page: 99})
	require.NoError(t, err)
	assert.Equal(t, 3, clamped.Page)
	assert.Len(t, clamped.Items, 5)
}

// Concatenating every page reproduces the filtered list exactly once, in
// order.
func TestListIncidents_PageRoundTrip(t *testing.T) {
	ctx := context.Background()
	f := newIncidentFixture(t)

	for i := 0; i < 25; i++ {
		_, err := f.service.CreateIncident(ctx, adminActor, IncidentCreateInput{Title: fmt.Sprintf("inc %d", i+1)})
		require.NoError(t, err)
	}

	var ids []string
	first, err := f.service.ListIncidents(ctx, IncidentListQuery{Page: 1})
	require.NoError(t, err)
	for p := 1; p <= first.TotalPages; p++ {
		page, err := f.service.ListIncidents(ctx, IncidentListQuery{Page: p})
		require.NoError(t, err)
		for i := range page.Items {
			ids = append(ids, page.Items[i].ID)
		}
	}

	require.Len(t, ids, 25)
	seen := make(map[string]struct{}, len(ids))
	for i, id := range ids {
		_, dup := seen[id]
		assert.False(t, dup, "id %s appeared twice", id)
		seen[id] = struct{}{}
		assert.Equal(t, fmt.Sprintf("%03d", i+1), id, "insertion order preserved across pages")
	}
}

func TestListIncidents_FilterScenarios(t *testing.T) {
	ctx := context.Background()
	f := newIncidentFixture(t)

	priorities := []domain.IncidentPriority{
		domain.IncidentPriorityHigh,
		domain.IncidentPriorityLow,
		domain.IncidentPriorityHigh,
	}
	for i, p := range priorities {
		_, err := f.service.CreateIncident(ctx, adminActor, IncidentCreateInput{Title: fmt.Sprintf("inc %d", i), Priority: p})
		require.NoError(t, err)
	}

	page, err := f.service.ListIncidents(ctx, IncidentListQuery{Priority: "HIGH"})
	require.NoError(t, err)
	assert.Equal(t, 2, page.TotalCount)

	// "All" is the no-filter sentinel
	page, err = f.service.ListIncidents(ctx, IncidentListQuery{Priority: "All", Status: "All", AssignedTo: "All"})
	require.NoError(t, err)
	assert.Equal(t, 3, page.TotalCount)

	// no matches: empty window, zero pages, no failure
	page, err = f.service.ListIncidents(ctx, IncidentListQuery{Status: string(domain.IncidentStatusClosed)})
	require.NoError(t, err)
	assert.Zero(t, page.TotalCount)
	assert.Zero(t, page.TotalPages)
	assert.Empty(t, page.Items)
	assert.Empty(t, page.PageWindow)
}

func TestListIncidents_EmptyStore(t *testing.T) {
	ctx := context.Background()
	f := newIncidentFixture(t)

	page, err := f.service.ListIncidents(ctx, IncidentListQuery{Page: 1})
	require.NoError(t, err)
	assert.Zero(t, page.TotalPages)
	assert.Empty(t, page.Items)
	assert.Empty(t, page.PageWindow)
}
