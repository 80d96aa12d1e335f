// Package session owns the authenticated identity of the client: the access
// token and the user it belongs to. The pair is mirrored into the local
// metadata store so that a restart resumes the session without a new login.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/jobdesk/internal/client/api"
	"github.com/dmitrijs2005/jobdesk/internal/client/models"
	"github.com/dmitrijs2005/jobdesk/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/jobdesk/internal/common"
	"github.com/dmitrijs2005/jobdesk/internal/logging"
)

// Manager is safe for concurrent use. Auth actions (login, signup, logout)
// are serialised; readers never wait on the network.
type Manager struct {
	client api.AuthClient
	store  metadata.Store
	logger logging.Logger

	authMu sync.Mutex

	mu      sync.RWMutex
	session models.Session
}

var _ api.TokenSource = (*Manager)(nil)

func NewManager(client api.AuthClient, store metadata.Store, logger logging.Logger) *Manager {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Manager{
		client: client,
		store:  store,
		logger: logger.With("component", "session"),
	}
}

// Init restores the persisted session. Missing keys, storage failures and
// an unparsable user all leave the manager signed out; none of them is an
// error. The token is not checked against the server.
func (m *Manager) Init(ctx context.Context) {
	m.authMu.Lock()
	defer m.authMu.Unlock()

	token, err := m.store.Get(ctx, common.AccessTokenKey)
	if err != nil {
		m.logger.Warn(ctx, "read stored token", "error", err)
		return
	}
	rawUser, err := m.store.Get(ctx, common.AuthUserKey)
	if err != nil {
		m.logger.Warn(ctx, "read stored user", "error", err)
		return
	}
	if len(token) == 0 || len(rawUser) == 0 {
		return
	}

	var user *models.User
	if err := json.Unmarshal(rawUser, &user); err != nil || user == nil {
		m.logger.Warn(ctx, "stored user is malformed, starting signed out", "error", err)
		return
	}

	m.setSession(models.Session{User: user, Token: string(token)})
	m.logger.Info(ctx, "session restored", "user", user.Email, "role", user.Role)
}

// Login authenticates against the user endpoint, or the admin endpoint
// when admin is set.
func (m *Manager) Login(ctx context.Context, email, password string, admin bool) (models.User, error) {
	creds := models.Credentials{Email: email, Password: password}
	if err := models.Validate(creds); err != nil {
		return models.User{}, err
	}

	m.authMu.Lock()
	defer m.authMu.Unlock()

	resp, err := m.client.Login(ctx, creds, admin)
	if err != nil {
		m.logger.Warn(ctx, "login rejected", "email", email, "admin", admin, "error", err)
		return models.User{}, newAuthError("login", "Login failed", err)
	}
	m.establish(ctx, resp)
	return resp.User, nil
}

// Signup creates a regular user account and signs in as that user.
func (m *Manager) Signup(ctx context.Context, email, password, fullName string) (models.User, error) {
	req := models.SignupRequest{
		Email:    email,
		Password: password,
		FullName: fullName,
		Role:     models.RoleUser,
	}
	if err := models.Validate(req); err != nil {
		return models.User{}, err
	}

	m.authMu.Lock()
	defer m.authMu.Unlock()

	resp, err := m.client.Signup(ctx, req)
	if err != nil {
		m.logger.Warn(ctx, "signup rejected", "email", email, "error", err)
		return models.User{}, newAuthError("signup", "Signup failed", err)
	}
	m.establish(ctx, resp)
	return resp.User, nil
}

// Logout forgets the session locally. It never fails and never contacts
// the server; storage errors are logged.
func (m *Manager) Logout(ctx context.Context) {
	m.authMu.Lock()
	defer m.authMu.Unlock()

	err := m.store.RunInTx(ctx, func(ctx context.Context, repo metadata.Repository) error {
		if err := repo.Delete(ctx, common.AccessTokenKey); err != nil {
			return err
		}
		return repo.Delete(ctx, common.AuthUserKey)
	})
	if err != nil {
		m.logger.Warn(ctx, "clear stored session", "error", err)
	}

	m.setSession(models.Session{})
	m.logger.Info(ctx, "signed out")
}

// establish persists resp and then publishes it in memory. A storage
// failure only costs persistence across restarts.
func (m *Manager) establish(ctx context.Context, resp *models.AuthResponse) {
	user := resp.User
	if err := m.persist(ctx, resp.AccessToken, &user); err != nil {
		m.logger.Warn(ctx, "persist session", "error", err)
	}
	m.setSession(models.Session{User: &user, Token: resp.AccessToken})
	m.logger.Info(ctx, "signed in", "user", user.Email, "role", user.Role)
}

func (m *Manager) persist(ctx context.Context, token string, user *models.User) error {
	rawUser, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	return m.store.RunInTx(ctx, func(ctx context.Context, repo metadata.Repository) error {
		if err := repo.Set(ctx, common.AccessTokenKey, []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, common.AuthUserKey, rawUser)
	})
}

func (m *Manager) setSession(s models.Session) {
	m.mu.Lock()
	m.session = s
	m.mu.Unlock()
}

// Current returns a copy of the session and whether it is authenticated.
func (m *Manager) Current() (models.Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s := m.session
	if s.User != nil {
		u := *s.User
		s.User = &u
	}
	return s, s.IsAuthenticated()
}

func (m *Manager) IsAuthenticated() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session.IsAuthenticated()
}

func (m *Manager) IsAdmin() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session.IsAuthenticated() && m.session.IsAdmin()
}

// Token is the bearer token for API calls, empty when signed out.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session.Token
}

// RequireAuth returns common.ErrNotAuthenticated when signed out.
func (m *Manager) RequireAuth() error {
	if !m.IsAuthenticated() {
		return common.ErrNotAuthenticated
	}
	return nil
}

// RequireAdmin returns a guard error unless an admin is signed in.
func (m *Manager) RequireAdmin() error {
	if err := m.RequireAuth(); err != nil {
		return err
	}
	if !m.IsAdmin() {
		return common.ErrNotAdmin
	}
	return nil
}

// ExpiresAt decodes the token's exp claim without verifying the signature.
// It is informational only.
func (m *Manager) ExpiresAt() (time.Time, bool) {
	info, ok := ParseTokenInfo(m.Token())
	if !ok || info.ExpiresAt.IsZero() {
		return time.Time{}, false
	}
	return info.ExpiresAt, true
}

// ParseTokenInfo reads subject and expiry from a JWT. Tokens that are not
// JWTs yield ok == false.
func ParseTokenInfo(token string) (models.TokenInfo, bool) {
	if token == "" {
		return models.TokenInfo{}, false
	}
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return models.TokenInfo{}, false
	}

	info := models.TokenInfo{Subject: claims.Subject}
	if claims.ExpiresAt != nil {
		info.ExpiresAt = claims.ExpiresAt.Time
	}
	return info, true
}
