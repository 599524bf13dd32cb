package dto

import (
	"time"

	"github.com/incidentops/incident-service/internal/auth"
	"github.com/incidentops/incident-service/internal/domain"
)

// LoginRequest payload. The password is accepted for form parity and never
// verified.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SwitchRoleRequest payload for the role-management demo screen.
type SwitchRoleRequest struct {
	Role domain.Role `json:"role"`
}

// UserResponse is the wire form of the session identity.
type UserResponse struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  domain.Role `json:"role"`
}

// SessionResponse bundles the token with everything the shell needs to
// render for the role.
type SessionResponse struct {
	Token       string             `json:"token"`
	ExpiresAt   time.Time          `json:"expires_at"`
	User        UserResponse       `json:"user"`
	Permissions auth.PermissionSet `json:"permissions"`
	Navigation  []auth.NavEntry    `json:"navigation"`
}

// FromUser maps a domain user to its wire form.
func FromUser(user *domain.User) UserResponse {
	return UserResponse{ID: user.ID, Name: user.Name, Email: user.Email, Role: user.Role}
}
