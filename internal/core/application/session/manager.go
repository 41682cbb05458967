package session

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"hortifruti/internal/core/domain/model/identity"
	"hortifruti/internal/core/domain/model/kernel"
	"hortifruti/internal/core/ports"
	"hortifruti/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

// Storage keys. Both are always written and cleared together.
const (
	tokenKey    = "hortifruti.token"
	identityKey = "hortifruti.identity"
)

// identitySnapshot is the denormalized identity stored next to the token so
// the panel can render the header before the restore round trip completes.
type identitySnapshot struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// Manager owns the authenticated session: the bearer credential, the current
// identity and the restore lifecycle. All exported methods are safe for
// concurrent use.
//
// Manager satisfies the Session contract the command and query handlers
// expect, so a single instance is both the authentication surface and the
// credential source for every backend call.
type Manager struct {
	backend ports.BackendClient
	store   ports.CredentialStore
	logger  *slog.Logger

	mu        sync.RWMutex
	token     string
	identity  *identity.Identity
	restoring bool
}

// NewManager creates a session manager. The credential store is the only
// durable state the manager touches.
func NewManager(backend ports.BackendClient, store ports.CredentialStore, logger *slog.Logger) (*Manager, error) {
	if backend == nil {
		return nil, errs.NewValueIsRequiredError("backend")
	}
	if store == nil {
		return nil, errs.NewValueIsRequiredError("store")
	}
	if logger == nil {
		return nil, errs.NewValueIsRequiredError("logger")
	}

	return &Manager{
		backend: backend,
		store:   store,
		logger:  logger.With("component", "session"),
	}, nil
}

// Identity returns the authenticated identity, or nil when no session is
// active.
func (m *Manager) Identity() *identity.Identity {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.identity
}

// Credential returns the bearer token and whether a session is active.
func (m *Manager) Credential() (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token, m.token != ""
}

// Restoring reports whether a session restore is still in flight. Inbound
// guards hold requests while this is true instead of bouncing a user whose
// stored credential has not been validated yet.
func (m *Manager) Restoring() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.restoring
}

// HasRole reports whether the current identity holds the required role.
// An absent session never holds any role.
func (m *Manager) HasRole(required identity.Role) bool {
	return m.Identity().HasRole(required)
}

// Restore revalidates a previously stored credential against the backend.
//
// Without a stored token it returns immediately with no session and no
// network traffic. A token whose embedded expiry has already passed is
// discarded locally for the same reason. A token the backend rejects clears
// the stored credential silently: the user simply starts logged out, the
// rejection is not an error.
func (m *Manager) Restore(ctx context.Context) error {
	m.mu.Lock()
	m.restoring = true
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		m.restoring = false
		m.mu.Unlock()
	}()

	token, found, err := m.store.Get(tokenKey)
	if err != nil {
		return errs.NewRequestFailureErrorWithCause("restore session", "credential store read failed", err)
	}
	if !found || token == "" {
		m.logger.Debug("no stored credential, starting logged out")
		return nil
	}

	if expired(token) {
		m.logger.Info("stored credential expired, clearing")
		m.clearStore()
		return nil
	}

	ident, err := m.backend.CurrentIdentity(ctx, token)
	if err != nil {
		m.logger.Info("stored credential rejected, clearing", "error", err)
		m.clearStore()
		return nil
	}

	m.mu.Lock()
	m.token = token
	m.identity = ident
	m.mu.Unlock()

	m.logger.Info("session restored", "role", ident.Role().String())
	return nil
}

// Login authenticates against the backend and establishes the session.
//
// Any failure after authentication unwinds completely: no token, no identity,
// nothing persisted. A backend that answers with an empty token is treated as
// a rejected login.
func (m *Manager) Login(ctx context.Context, email, secret string) (*identity.Identity, error) {
	token, err := m.backend.Authenticate(ctx, email, secret)
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, errs.NewAuthenticationError("backend returned an empty credential")
	}

	ident, err := m.backend.CurrentIdentity(ctx, token)
	if err != nil {
		return nil, errs.NewAuthenticationErrorWithCause("could not load identity after login", err)
	}

	if err := m.persist(token, ident); err != nil {
		m.clearStore()
		return nil, err
	}

	m.mu.Lock()
	m.token = token
	m.identity = ident
	m.mu.Unlock()

	m.logger.Info("session established", "role", ident.Role().String())
	return ident, nil
}

// Logout drops the session and the stored credential. It never fails: a
// storage hiccup while clearing still leaves the in-memory session closed.
func (m *Manager) Logout() {
	m.mu.Lock()
	m.token = ""
	m.identity = nil
	m.mu.Unlock()

	m.clearStore()
	m.logger.Info("session closed")
}

// StoredSnapshot returns the identity snapshot persisted alongside the token,
// if one is stored and well formed. It is display-only: authorization always
// reads the backend-confirmed identity.
func (m *Manager) StoredSnapshot() (*identity.Identity, bool) {
	raw, found, err := m.store.Get(identityKey)
	if err != nil || !found {
		return nil, false
	}

	var snapshot identitySnapshot
	if err := json.Unmarshal([]byte(raw), &snapshot); err != nil {
		return nil, false
	}

	id, err := kernel.UUIDFromString(snapshot.ID)
	if err != nil {
		return nil, false
	}
	role, err := identity.RoleFromString(snapshot.Role)
	if err != nil {
		return nil, false
	}
	ident, err := identity.NewIdentity(id, snapshot.FullName, snapshot.Email, role)
	if err != nil {
		return nil, false
	}
	return ident, true
}

func (m *Manager) persist(token string, ident *identity.Identity) error {
	if err := m.store.Set(tokenKey, token); err != nil {
		return errs.NewRequestFailureErrorWithCause("persist session", "credential store write failed", err)
	}

	raw, err := json.Marshal(identitySnapshot{
		ID:       ident.ID().String(),
		FullName: ident.FullName(),
		Email:    ident.Email(),
		Role:     ident.Role().String(),
	})
	if err != nil {
		return errs.NewRequestFailureErrorWithCause("persist session", "identity snapshot encoding failed", err)
	}
	if err := m.store.Set(identityKey, string(raw)); err != nil {
		return errs.NewRequestFailureErrorWithCause("persist session", "credential store write failed", err)
	}
	return nil
}

func (m *Manager) clearStore() {
	if err := m.store.Delete(tokenKey); err != nil {
		m.logger.Warn("could not clear stored token", "error", err)
	}
	if err := m.store.Delete(identityKey); err != nil {
		m.logger.Warn("could not clear stored identity", "error", err)
	}
}

// expired reports whether the token carries an exp claim that already passed.
// The signature is not checked here, the backend remains the authority; this
// only avoids a round trip that is guaranteed to fail. A token that does not
// parse as a JWT is left for the backend to judge.
func expired(token string) bool {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}

