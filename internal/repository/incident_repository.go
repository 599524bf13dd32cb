package repository

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/incidentops/incident-service/internal/domain"
	apperrors "github.com/incidentops/incident-service/pkg/util"
)

// IncidentFilter captures list filter criteria. Nil fields match everything;
// the set criteria are AND-combined exact matches.
type IncidentFilter struct {
	Priority   *domain.IncidentPriority
	Status     *domain.IncidentStatus
	AssignedTo *string
}

// Matches reports whether the incident satisfies every set criterion.
func (f IncidentFilter) Matches(incident *domain.Incident) bool {
	if f.Priority != nil && incident.Priority != *f.Priority {
		return false
	}
	if f.Status != nil && incident.Status != *f.Status {
		return false
	}
	if f.AssignedTo != nil && incident.AssignedTo != *f.AssignedTo {
		return false
	}
	return true
}

// IncidentRepository encapsulates the incident collection.
type IncidentRepository interface {
	Create(ctx context.Context, incident *domain.Incident) error
	Replace(ctx context.Context, incident *domain.Incident) error
	GetByID(ctx context.Context, id string) (*domain.Incident, error)
	RemoveMany(ctx context.Context, ids []string) (int, error)
	List(ctx context.Context) ([]domain.Incident, error)
	ListWithFilter(ctx context.Context, filter IncidentFilter) ([]domain.Incident, error)
	Version(ctx context.Context) uint64
}

// incidentRepository keeps the collection in memory, in insertion order.
// Every mutation happens under the lock and bumps the version counter, so
// each operation is atomic with respect to concurrent callers.
type incidentRepository struct {
	mu        sync.RWMutex
	incidents []domain.Incident
	version   uint64
	now       func() time.Time
}

// NewIncidentRepository instantiates an empty in-memory store.
func NewIncidentRepository() IncidentRepository {
	return &incidentRepository{now: time.Now}
}

// idWidth is the zero-padding width for assigned identifiers.
const idWidth = 3

func (r *incidentRepository) Create(ctx context.Context, incident *domain.Incident) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	maxID := 0
	for i := range r.incidents {
		if n, err := strconv.Atoi(r.incidents[i].ID); err == nil && n > maxID {
			maxID = n
		}
	}
	incident.ID = fmt.Sprintf("%0*d", idWidth, maxID+1)
	if incident.CreatedAt.IsZero() {
		incident.CreatedAt = r.now()
	}

	r.incidents = append(r.incidents, *incident)
	r.version++
	return nil
}

func (r *incidentRepository) Replace(ctx context.Context, incident *domain.Incident) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.incidents {
		if r.incidents[i].ID == incident.ID {
			r.incidents[i] = *incident
			r.version++
			return nil
		}
	}
	return apperrors.NewNotFound("incident", map[string]any{"id": incident.ID})
}

func (r *incidentRepository) GetByID(ctx context.Context, id string) (*domain.Incident, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.incidents {
		if r.incidents[i].ID == id {
			incident := r.incidents[i]
			return &incident, nil
		}
	}
	return nil, apperrors.NewNotFound("incident", map[string]any{"id": id})
}

// RemoveMany deletes every incident whose id is in the set and reports how
// many were removed. Ids with no matching record are ignored, so a repeated
// call succeeds with count zero.
func (r *incidentRepository) RemoveMany(ctx context.Context, ids []string) (int, error) {
	idSet := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		idSet[id] = struct{}{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.incidents[:0]
	removed := 0
	for i := range r.incidents {
		if _, hit := idSet[r.incidents[i].ID]; hit {
			removed++
			continue
		}
		kept = append(kept, r.incidents[i])
	}
	r.incidents = kept
	if removed > 0 {
		r.version++
	}
	return removed, nil
}

func (r *incidentRepository) List(ctx context.Context) ([]domain.Incident, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make([]domain.Incident, len(r.incidents))
	copy(snapshot, r.incidents)
	return snapshot, nil
}

// ListWithFilter recomputes the visible subset from the full collection on
// every call; there is no cached index to go stale.
func (r *incidentRepository) ListWithFilter(ctx context.Context, filter IncidentFilter) ([]domain.Incident, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Incident, 0, len(r.incidents))
	for i := range r.incidents {
		if filter.Matches(&r.incidents[i]) {
			result = append(result, r.incidents[i])
		}
	}
	return result, nil
}

func (r *incidentRepository) Version(ctx context.Context) uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.version
}
