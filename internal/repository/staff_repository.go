package repository

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/incidentops/incident-service/internal/domain"
	apperrors "github.com/incidentops/incident-service/pkg/util"
)

// StaffRepository holds the technician directory grouped by team.
type StaffRepository interface {
	Groups(ctx context.Context) ([]domain.StaffGroup, error)
	GroupByID(ctx context.Context, id domain.StaffGroupID) (*domain.StaffGroup, error)
	MembersByGroup(ctx context.Context, group domain.StaffGroupID) ([]domain.StaffMember, error)
	Search(ctx context.Context, term string) ([]domain.StaffMember, error)
	AddMember(ctx context.Context, group domain.StaffGroupID, name, email string) (*domain.StaffMember, error)
	UpdateMember(ctx context.Context, id, name, email string) (*domain.StaffMember, error)
}

var staffGroups = []domain.StaffGroup{
	{ID: domain.GroupManager, Label: "Manager", Description: "Management Group", IDPrefix: "MGR", MaxMembers: 1},
	{ID: domain.GroupNetwork, Label: "Network Technician", Description: "Network Infrastructure Team", IDPrefix: "NET", MinMembers: 4},
	{ID: domain.GroupApplication, Label: "Application Technician", Description: "Application Support Team", IDPrefix: "APP", MinMembers: 4},
	{ID: domain.GroupDatabase, Label: "Database Technician", Description: "Database Administration Team", IDPrefix: "DB", MinMembers: 4},
}

type staffRepository struct {
	mu      sync.RWMutex
	members []domain.StaffMember
	nextSeq map[domain.StaffGroupID]int
}

// NewStaffRepository instantiates the directory, optionally with the demo
// roster.
func NewStaffRepository(seed bool) StaffRepository {
	r := &staffRepository{nextSeq: make(map[domain.StaffGroupID]int)}
	for _, g := range staffGroups {
		r.nextSeq[g.ID] = 1
	}
	if seed {
		r.seedRoster()
	}
	return r
}

func (r *staffRepository) seedRoster() {
	seed := []struct {
		group domain.StaffGroupID
		name  string
		email string
	}{
		{domain.GroupManager, "Jean Dupont", "jean.dupont@example.com"},
		{domain.GroupNetwork, "Pierre Martin", "pierre.martin@example.com"},
		{domain.GroupNetwork, "Claire Bernard", "claire.bernard@example.com"},
		{domain.GroupNetwork, "Michel Blanc", "michel.blanc@example.com"},
		{domain.GroupNetwork, "Sophie Durand", "sophie.durand@example.com"},
		{domain.GroupApplication, "David Leclerc", "david.leclerc@example.com"},
		{domain.GroupApplication, "Marie Garnier", "marie.garnier@example.com"},
		{domain.GroupApplication, "Thomas Petit", "thomas.petit@example.com"},
		{domain.GroupApplication, "Julie Fontaine", "julie.fontaine@example.com"},
		{domain.GroupDatabase, "Laurent Mercier", "laurent.mercier@example.com"},
		{domain.GroupDatabase, "Anne Dufour", "anne.dufour@example.com"},
		{domain.GroupDatabase, "Pascal Renard", "pascal.renard@example.com"},
		{domain.GroupDatabase, "Nicole Martin", "nicole.martin@example.com"},
	}
	for _, s := range seed {
		r.members = append(r.members, domain.StaffMember{
			ID:    r.assignID(s.group),
			Name:  s.name,
			Email: s.email,
			Group: s.group,
		})
	}
}

func (r *staffRepository) assignID(group domain.StaffGroupID) string {
	prefix := ""
	for _, g := range staffGroups {
		if g.ID == group {
			prefix = g.IDPrefix
			break
		}
	}
	id := fmt.Sprintf("%s%03d", prefix, r.nextSeq[group])
	r.nextSeq[group]++
	return id
}

func (r *staffRepository) Groups(ctx context.Context) ([]domain.StaffGroup, error) {
	groups := make([]domain.StaffGroup, len(staffGroups))
	copy(groups, staffGroups)
	return groups, nil
}

func (r *staffRepository) GroupByID(ctx context.Context, id domain.StaffGroupID) (*domain.StaffGroup, error) {
	for _, g := range staffGroups {
		if g.ID == id {
			group := g
			return &group, nil
		}
	}
	return nil, apperrors.NewNotFound("staff group", map[string]any{"group": string(id)})
}

func (r *staffRepository) MembersByGroup(ctx context.Context, group domain.StaffGroupID) ([]domain.StaffMember, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []domain.StaffMember
	for i := range r.members {
		if r.members[i].Group == group {
			result = append(result, r.members[i])
		}
	}
	return result, nil
}

// Search matches the term against name, email and id, case-insensitively.
// An empty term returns the full roster.
func (r *staffRepository) Search(ctx context.Context, term string) ([]domain.StaffMember, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	needle := strings.ToLower(strings.TrimSpace(term))
	result := make([]domain.StaffMember, 0, len(r.members))
	for i := range r.members {
		m := &r.members[i]
		if needle == "" ||
			strings.Contains(strings.ToLower(m.Name), needle) ||
			strings.Contains(strings.ToLower(m.Email), needle) ||
			strings.Contains(strings.ToLower(m.ID), needle) {
			result = append(result, *m)
		}
	}
	return result, nil
}

func (r *staffRepository) AddMember(ctx context.Context, group domain.StaffGroupID, name, email string) (*domain.StaffMember, error) {
	grp, err := r.GroupByID(ctx, group)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if grp.MaxMembers > 0 {
		count := 0
		for i := range r.members {
			if r.members[i].Group == group {
				count++
			}
		}
		if count >= grp.MaxMembers {
			return nil, apperrors.NewConflict("group roster is full", map[string]any{"group": string(group)})
		}
	}

	member := domain.StaffMember{
		ID:    r.assignID(group),
		Name:  name,
		Email: email,
		Group: group,
	}
	r.members = append(r.members, member)
	return &member, nil
}

func (r *staffRepository) UpdateMember(ctx context.Context, id, name, email string) (*domain.StaffMember, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.members {
		if r.members[i].ID == id {
			if name != "" {
				r.members[i].Name = name
			}
			if email != "" {
				r.members[i].Email = email
			}
			member := r.members[i]
			return &member, nil
		}
	}
	return nil, apperrors.NewNotFound("staff member", map[string]any{"id": id})
}
