package service

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/incidentops/incident-service/internal/domain"
	"github.com/incidentops/incident-service/internal/repository"
)

var (
	seedPriorities = []domain.IncidentPriority{
		domain.IncidentPriorityLow,
		domain.IncidentPriorityMedium,
		domain.IncidentPriorityHigh,
		domain.IncidentPriorityCritical,
	}
	seedStatuses = []domain.IncidentStatus{
		domain.IncidentStatusOpen,
		domain.IncidentStatusInProgress,
		domain.IncidentStatusClosed,
		domain.IncidentStatusWaiting,
	}
)

// SeedIncidents fills the store with n mock records so the dashboard has
// something to show without a backend. Every fifth incident is resolved two
// days after creation; every third is attributed to the demo account.
func SeedIncidents(ctx context.Context, incidents repository.IncidentRepository, n int, rng *rand.Rand) error {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	now := time.Now()
	for i := 0; i < n; i++ {
		createdAt := now.AddDate(0, 0, -i)
		incident := &domain.Incident{
			Title:       fmt.Sprintf("Incident: connection problem #%d", i+1),
			Description: fmt.Sprintf("Detailed description for mock incident #%d.", i+1),
			AssignedTo:  fmt.Sprintf("User %d", rng.Intn(10)+1),
			Priority:    seedPriorities[rng.Intn(len(seedPriorities))],
			Status:      seedStatuses[rng.Intn(len(seedStatuses))],
			CreatedBy:   fmt.Sprintf("User %d", rng.Intn(10)+1),
			CreatedAt:   createdAt,
		}
		if i%3 == 0 {
			incident.CreatedBy = "John Doe"
		}
		if i%5 == 0 {
			resolvedAt := createdAt.AddDate(0, 0, 2)
			incident.ResolvedAt = &resolvedAt
		}
		if err := incidents.Create(ctx, incident); err != nil {
			return err
		}
	}
	return nil
}
