package service

import (
	"context"
	"strings"

	"github.com/incidentops/incident-service/internal/domain"
	"github.com/incidentops/incident-service/internal/repository"
	apperrors "github.com/incidentops/incident-service/pkg/util"
)

// GroupRoster pairs a group with its current members.
type GroupRoster struct {
	Group   domain.StaffGroup
	Members []domain.StaffMember
}

// DirectoryService exposes the technician directory.
type DirectoryService struct {
	staff repository.StaffRepository
}

// NewDirectoryService builds the service.
func NewDirectoryService(staff repository.StaffRepository) *DirectoryService {
	return &DirectoryService{staff: staff}
}

// Rosters returns every group with its members, in directory order.
func (s *DirectoryService) Rosters(ctx context.Context) ([]GroupRoster, error) {
	groups, err := s.staff.Groups(ctx)
	if err != nil {
		return nil, err
	}
	rosters := make([]GroupRoster, 0, len(groups))
	for _, group := range groups {
		members, err := s.staff.MembersByGroup(ctx, group.ID)
		if err != nil {
			return nil, err
		}
		rosters = append(rosters, GroupRoster{Group: group, Members: members})
	}
	return rosters, nil
}

// Search filters the roster by name, email or id.
func (s *DirectoryService) Search(ctx context.Context, term string) ([]domain.StaffMember, error) {
	return s.staff.Search(ctx, term)
}

// AddTechnician appends a member to a group with the next prefixed id.
func (s *DirectoryService) AddTechnician(ctx context.Context, group domain.StaffGroupID, name, email string) (*domain.StaffMember, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperrors.NewValidationError("name required", nil)
	}
	return s.staff.AddMember(ctx, group, name, email)
}

// UpdateTechnician edits a member's contact fields.
func (s *DirectoryService) UpdateTechnician(ctx context.Context, id, name, email string) (*domain.StaffMember, error) {
	return s.staff.UpdateMember(ctx, id, name, email)
}
