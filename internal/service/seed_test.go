package service

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/incidentops/incident-service/internal/repository"
)

func TestSeedIncidents(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewIncidentRepository()

	require.NoError(t, SeedIncidents(ctx, repo, 20, rand.New(rand.NewSource(1))))

	incidents, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, incidents, 20)

	assert.Equal(t, "001", incidents[0].ID)
	assert.Equal(t, "020", incidents[19].ID)

	johnDoe, resolved := 0, 0
	for i := range incidents {
		if incidents[i].CreatedBy == "John Doe" {
			johnDoe++
		}
		if incidents[i].ResolvedAt != nil {
			resolved++
			assert.Equal(t, incidents[i].CreatedAt.AddDate(0, 0, 2), *incidents[i].ResolvedAt)
		}
		assert.False(t, incidents[i].CreatedAt.IsZero())
	}
	assert.GreaterOrEqual(t, johnDoe, 7, "every third record belongs to the demo account")
	assert.Equal(t, 4, resolved, "every fifth record carries a resolution date")

	// seeding twice keeps ids monotonic
	require.NoError(t, SeedIncidents(ctx, repo, 5, rand.New(rand.NewSource(2))))
	incidents, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, incidents, 25)
	assert.Equal(t, "025", incidents[24].ID)
}
