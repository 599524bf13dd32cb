package auth

import "github.com/incidentops/incident-service/internal/domain"

// PermissionSet holds the fixed action flags governing incident operations.
type PermissionSet struct {
	CanAdd                bool `json:"canAdd"`
	CanEdit               bool `json:"canEdit"`
	CanDelete             bool `json:"canDelete"`
	CanViewDetails        bool `json:"canViewDetails"`
	CanAssignToTechnician bool `json:"canAssignToTechnician"`
}

// PermissionsFor returns the static permission row for a role. An
// unrecognized role falls back to the USER row; it never fails.
func PermissionsFor(role domain.Role) PermissionSet {
	switch role {
	case domain.RoleAdmin:
		return PermissionSet{
			CanAdd:                true,
			CanEdit:               true,
			CanDelete:             true,
			CanViewDetails:        true,
			CanAssignToTechnician: true,
		}
	case domain.RoleTechnician:
		return PermissionSet{
			CanEdit:        true,
			CanViewDetails: true,
		}
	case domain.RoleUser:
		return PermissionSet{
			CanAdd:         true,
			CanViewDetails: true,
		}
	default:
		return PermissionsFor(domain.RoleUser)
	}
}

// CanEditIncident applies the record-level ownership override: a USER may
// edit only incidents they created, while ADMIN and TECHNICIAN are gated
// purely by the static table.
func CanEditIncident(actor *domain.User, incident *domain.Incident) bool {
	if actor.Role == domain.RoleUser {
		return incident.CreatedBy == actor.Name
	}
	return PermissionsFor(actor.Role).CanEdit
}

// CanDeleteIncident mirrors CanEditIncident for deletion.
func CanDeleteIncident(actor *domain.User, incident *domain.Incident) bool {
	if actor.Role == domain.RoleUser {
		return incident.CreatedBy == actor.Name
	}
	return PermissionsFor(actor.Role).CanDelete
}
