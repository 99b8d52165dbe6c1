package session

import (
	"context"
	"sync"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/Zomujo/dial4inclusion/internal/domain"
	"github.com/Zomujo/dial4inclusion/internal/gateway"
)

// AuthAPI is the slice of the gateway the session manager needs.
type AuthAPI interface {
	Login(ctx context.Context, userIdentifier, password string) (*gateway.AuthResult, error)
	Register(ctx context.Context, input gateway.RegisterInput) (*gateway.AuthResult, error)
}

// Manager holds the current token and user identity. It makes no network
// calls of its own beyond delegating login/register to the gateway.
type Manager struct {
	storage Storage
	api     AuthAPI
	logger  *zap.Logger

	mu    sync.RWMutex
	token string
	user  *domain.User
}

// NewManager constructs the session holder.
func NewManager(storage Storage, api AuthAPI, logger *zap.Logger) *Manager {
	return &Manager{storage: storage, api: api, logger: logger}
}

// Load restores a persisted session. Returns false when unauthenticated;
// callers redirect to login in that case. An expired JWT counts as absent.
func (m *Manager) Load() bool {
	token, user, ok := m.storage.Load()
	if !ok {
		return false
	}
	if tokenExpired(token) {
		m.logger.Info("persisted token expired, clearing session")
		_ = m.storage.Clear()
		return false
	}

	m.mu.Lock()
	m.token = token
	m.user = user
	m.mu.Unlock()
	return true
}

// Login authenticates against the remote API and persists the session.
func (m *Manager) Login(ctx context.Context, userIdentifier, password string) (*domain.User, error) {
	result, err := m.api.Login(ctx, userIdentifier, password)
	if err != nil {
		return nil, err
	}
	return m.adopt(result)
}

// Register creates an account and persists the issued session.
func (m *Manager) Register(ctx context.Context, input gateway.RegisterInput) (*domain.User, error) {
	result, err := m.api.Register(ctx, input)
	if err != nil {
		return nil, err
	}
	return m.adopt(result)
}

// Logout clears persisted state and reverts to unauthenticated.
func (m *Manager) Logout() {
	m.mu.Lock()
	m.token = ""
	m.user = nil
	m.mu.Unlock()
	if err := m.storage.Clear(); err != nil {
		m.logger.Warn("failed to clear persisted session", zap.Error(err))
	}
}

// Token returns the bearer token, or empty when unauthenticated.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token
}

// CurrentUser returns the session user, or nil when unauthenticated.
func (m *Manager) CurrentUser() *domain.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user
}

// Authenticated reports whether a session is active.
func (m *Manager) Authenticated() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token != "" && m.user != nil
}

// IsAdmin reports whether the session user is an admin.
func (m *Manager) IsAdmin() bool {
	return m.hasRole(domain.RoleAdmin)
}

// IsNavigator reports whether the session user is a navigator.
func (m *Manager) IsNavigator() bool {
	return m.hasRole(domain.RoleNavigator)
}

// IsDistrictOfficer reports whether the session user is a district officer.
func (m *Manager) IsDistrictOfficer() bool {
	return m.hasRole(domain.RoleDistrictOfficer)
}

func (m *Manager) hasRole(role domain.Role) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user != nil && m.user.Role == role
}

func (m *Manager) adopt(result *gateway.AuthResult) (*domain.User, error) {
	user := result.User
	m.mu.Lock()
	m.token = result.AccessToken
	m.user = &user
	m.mu.Unlock()

	if err := m.storage.Save(result.AccessToken, &user); err != nil {
		m.logger.Warn("failed to persist session", zap.Error(err))
	}
	return &user, nil
}

// tokenExpired inspects the token's exp claim without verifying the
// signature; verification is the server's job. Opaque tokens pass through.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	expiry, err := claims.GetExpirationTime()
	if err != nil || expiry == nil {
		return false
	}
	return expiry.Before(time.Now())
}
