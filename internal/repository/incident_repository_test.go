package repository

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/incidentops/incident-service/internal/domain"
	apperrors "github.com/incidentops/incident-service/pkg/util"
)

func newIncident(title, createdBy string) *domain.Incident {
	return &domain.Incident{
		Title:     title,
		Priority:  domain.IncidentPriorityLow,
		Status:    domain.IncidentStatusOpen,
		CreatedBy: createdBy,
	}
}

func TestIncidentRepository_CreateAssignsSequentialIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewIncidentRepository()

	first := newIncident("X", "U1")
	require.NoError(t, repo.Create(ctx, first))
	assert.Equal(t, "001", first.ID)
	assert.False(t, first.CreatedAt.IsZero())
	assert.Nil(t, first.ResolvedAt)
	assert.Equal(t, domain.IncidentStatusOpen, first.Status)

	second := newIncident("Y", "U1")
	require.NoError(t, repo.Create(ctx, second))
	assert.Equal(t, "002", second.ID)
}

// New identifiers are always strictly greater than every existing numeric
// id, even after deletions punch holes in the sequence.
func TestIncidentRepository_IDMonotonicAfterDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewIncidentRepository()

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Create(ctx, newIncident("inc", "U1")))
	}
	removed, err := repo.RemoveMany(ctx, []string{"004", "005"})
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	next := newIncident("after delete", "U1")
	require.NoError(t, repo.Create(ctx, next))
	assert.Equal(t, "004", next.ID)

	existing, err := repo.List(ctx)
	require.NoError(t, err)
	max := 0
	for _, inc := range existing[:len(existing)-1] {
		n, err := strconv.Atoi(inc.ID)
		require.NoError(t, err)
		if n > max {
			max = n
		}
	}
	nextNum, _ := strconv.Atoi(next.ID)
	assert.Greater(t, nextNum, max)
}

func TestIncidentRepository_RemoveManyIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := NewIncidentRepository()
	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Create(ctx, newIncident("inc", "U1")))
	}

	removed, err := repo.RemoveMany(ctx, []string{"001", "003"})
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	removed, err = repo.RemoveMany(ctx, []string{"001", "003"})
	require.NoError(t, err)
	assert.Equal(t, 0, removed, "second identical delete removes nothing")

	remaining, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "002", remaining[0].ID)
}

func TestIncidentRepository_ReplaceNotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewIncidentRepository()

	err := repo.Replace(ctx, &domain.Incident{ID: "999", Title: "ghost"})
	assert.True(t, apperrors.IsNotFound(err))

	_, err = repo.GetByID(ctx, "999")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestIncidentRepository_ReplaceKeepsOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewIncidentRepository()
	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Create(ctx, newIncident("inc", "U1")))
	}

	updated := newIncident("renamed", "U1")
	updated.ID = "002"
	require.NoError(t, repo.Replace(ctx, updated))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"001", "002", "003"}, []string{list[0].ID, list[1].ID, list[2].ID})
	assert.Equal(t, "renamed", list[1].Title)
}

// Filtering is the conjunction of independent exact-match predicates; unset
// criteria match everything.
func TestIncidentRepository_ListWithFilter(t *testing.T) {
	ctx := context.Background()
	repo := NewIncidentRepository()

	seed := []struct {
		priority domain.IncidentPriority
		status   domain.IncidentStatus
		assignee string
	}{
		{domain.IncidentPriorityHigh, domain.IncidentStatusOpen, "User 1"},
		{domain.IncidentPriorityHigh, domain.IncidentStatusClosed, "User 2"},
		{domain.IncidentPriorityLow, domain.IncidentStatusOpen, "User 1"},
		{domain.IncidentPriorityCritical, domain.IncidentStatusWaiting, "User 3"},
	}
	for _, s := range seed {
		inc := newIncident("inc", "U1")
		inc.Priority = s.priority
		inc.Status = s.status
		inc.AssignedTo = s.assignee
		require.NoError(t, repo.Create(ctx, inc))
	}

	high := domain.IncidentPriorityHigh
	result, err := repo.ListWithFilter(ctx, IncidentFilter{Priority: &high})
	require.NoError(t, err)
	assert.Len(t, result, 2)
	for _, inc := range result {
		assert.Equal(t, high, inc.Priority)
	}

	open := domain.IncidentStatusOpen
	userOne := "User 1"
	result, err = repo.ListWithFilter(ctx, IncidentFilter{Priority: &high, Status: &open, AssignedTo: &userOne})
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "001", result[0].ID)

	missing := "nobody"
	result, err = repo.ListWithFilter(ctx, IncidentFilter{AssignedTo: &missing})
	require.NoError(t, err)
	assert.Empty(t, result)

	all, err := repo.ListWithFilter(ctx, IncidentFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestIncidentRepository_VersionBumpsOnMutation(t *testing.T) {
	ctx := context.Background()
	repo := NewIncidentRepository()
	assert.Equal(t, uint64(0), repo.Version(ctx))

	require.NoError(t, repo.Create(ctx, newIncident("inc", "U1")))
	assert.Equal(t, uint64(1), repo.Version(ctx))

	_, err := repo.RemoveMany(ctx, []string{"does-not-exist"})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), repo.Version(ctx), "no-op delete leaves version alone")
}
