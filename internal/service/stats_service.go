package service

import (
	"context"
	"math"
	"time"

	"github.com/incidentops/incident-service/internal/domain"
	"github.com/incidentops/incident-service/internal/repository"
)

// OverviewStats are the dashboard headline aggregates.
type OverviewStats struct {
	TotalIncidents      int     `json:"totalIncidents"`
	ResolvedIncidents   int     `json:"resolvedIncidents"`
	InProgressIncidents int     `json:"inProgressIncidents"`
	PendingIncidents    int     `json:"pendingIncidents"`
	ResolutionRate      int     `json:"resolutionRate"`
	AvgResolutionHours  float64 `json:"avgResolutionHours"`
}

// GroupStats aggregates incident outcomes per technician group.
type GroupStats struct {
	Group             domain.StaffGroupID `json:"group"`
	Label             string              `json:"label"`
	Members           int                 `json:"members"`
	TotalIncidents    int                 `json:"totalIncidents"`
	ResolvedIncidents int                 `json:"resolvedIncidents"`
	ResolutionRate    int                 `json:"resolutionRate"`
}

// StatsService derives dashboard aggregates from the live incident
// collection; nothing is cached.
type StatsService struct {
	incidents repository.IncidentRepository
	staff     repository.StaffRepository
}

// NewStatsService builds the service.
func NewStatsService(incidents repository.IncidentRepository, staff repository.StaffRepository) *StatsService {
	return &StatsService{incidents: incidents, staff: staff}
}

// Overview computes the headline numbers. An incident counts as resolved
// when it carries a resolution date or is closed.
func (s *StatsService) Overview(ctx context.Context) (*OverviewStats, error) {
	incidents, err := s.incidents.List(ctx)
	if err != nil {
		return nil, err
	}

	stats := &OverviewStats{TotalIncidents: len(incidents)}
	var resolvedDuration time.Duration
	var resolvedWithDate int
	for i := range incidents {
		inc := &incidents[i]
		if inc.Resolved() || inc.Status == domain.IncidentStatusClosed {
			stats.ResolvedIncidents++
		}
		if inc.ResolvedAt != nil {
			resolvedDuration += inc.ResolvedAt.Sub(inc.CreatedAt)
			resolvedWithDate++
		}
		switch inc.Status {
		case domain.IncidentStatusInProgress:
			stats.InProgressIncidents++
		case domain.IncidentStatusWaiting:
			stats.PendingIncidents++
		}
	}
	if stats.TotalIncidents > 0 {
		stats.ResolutionRate = int(math.Round(float64(stats.ResolvedIncidents) * 100 / float64(stats.TotalIncidents)))
	}
	if resolvedWithDate > 0 {
		stats.AvgResolutionHours = math.Round(resolvedDuration.Hours()/float64(resolvedWithDate)*10) / 10
	}
	return stats, nil
}

// Groups computes per-group aggregates by matching incident assignees
// against the group rosters.
func (s *StatsService) Groups(ctx context.Context) ([]GroupStats, error) {
	incidents, err := s.incidents.List(ctx)
	if err != nil {
		return nil, err
	}
	groups, err := s.staff.Groups(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]GroupStats, 0, len(groups))
	for _, group := range groups {
		members, err := s.staff.MembersByGroup(ctx, group.ID)
		if err != nil {
			return nil, err
		}
		names := make(map[string]struct{}, len(members))
		for i := range members {
			names[members[i].Name] = struct{}{}
		}

		gs := GroupStats{Group: group.ID, Label: group.Label, Members: len(members)}
		for i := range incidents {
			if _, assigned := names[incidents[i].AssignedTo]; !assigned {
				continue
			}
			gs.TotalIncidents++
			if incidents[i].Resolved() || incidents[i].Status == domain.IncidentStatusClosed {
				gs.ResolvedIncidents++
			}
		}
		if gs.TotalIncidents > 0 {
			gs.ResolutionRate = int(math.Round(float64(gs.ResolvedIncidents) * 100 / float64(gs.TotalIncidents)))
		}
		result = append(result, gs)
	}
	return result, nil
}
