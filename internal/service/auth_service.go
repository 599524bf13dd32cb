package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/incidentops/incident-service/internal/auth"
	"github.com/incidentops/incident-service/internal/config"
	"github.com/incidentops/incident-service/internal/domain"
	apperrors "github.com/incidentops/incident-service/pkg/util"
)

// AuthService runs the demo login flow: the role is derived from the login
// name, never from a credential store.
type AuthService struct {
	tokenMgr *auth.TokenManager
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig) *AuthService {
	return &AuthService{
		tokenMgr: auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTLMinutes),
	}
}

// TokenManager exposes the manager for middleware wiring.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

// Login derives the role from the username and issues a session token. The
// password is accepted but never verified; this mirrors the demo gate the
// dashboard ships with.
func (s *AuthService) Login(ctx context.Context, username, _ string) (*domain.User, string, time.Time, error) {
	name := strings.TrimSpace(username)
	user := &domain.User{
		ID:    uuid.NewString(),
		Name:  name,
		Email: emailFor(name),
		Role:  auth.DeriveRole(name),
	}
	token, expiresAt, err := s.tokenMgr.GenerateToken(user)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, expiresAt, nil
}

// SwitchRole reissues the session with the requested role. Kept for the
// role-management demo screen; rejects unknown roles outright.
func (s *AuthService) SwitchRole(ctx context.Context, current *domain.User, role domain.Role) (*domain.User, string, time.Time, error) {
	if !role.Valid() {
		return nil, "", time.Time{}, apperrors.NewValidationError("unknown role", map[string]any{"role": string(role)})
	}
	user := *current
	user.Role = role
	token, expiresAt, err := s.tokenMgr.GenerateToken(&user)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return &user, token, expiresAt, nil
}

func emailFor(name string) string {
	if name == "" {
		return ""
	}
	local := strings.ToLower(strings.Join(strings.Fields(name), "."))
	return local + "@example.com"
}
