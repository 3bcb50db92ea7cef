package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/facgure/launchpad/internal/infrastructure/monitoring"
	"github.com/facgure/launchpad/internal/shared/types"
)

// Session is a live authenticated principal
type Session struct {
	ID        string     `json:"id"`
	Token     string     `json:"token"`
	User      types.User `json:"user"`
	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt time.Time  `json:"expires_at"`
}

// Permissions derives the coarse authorization booleans for the session's
// role
func (s *Session) Permissions() types.Permissions {
	return types.PermissionsFor(s.User.Role)
}

// Provider identifies a simulated external identity source
type Provider string

const (
	ProviderGoogle    Provider = "google"
	ProviderMicrosoft Provider = "microsoft"
)

// Config holds session manager policy
type Config struct {
	Secret        []byte        // JWT signing secret
	TTL           time.Duration // session lifetime
	ProviderDelay time.Duration // simulated external identity latency
	DemoOTP       bool          // fixed recovery OTP instead of random
}

// Manager owns session creation, verification, and teardown
type Manager struct {
	verifier Verifier
	users    *UserStore
	cfg      Config
	sessions sync.Map // token -> *Session
	resets   sync.Map // email -> *resetRequest
	metrics  *monitoring.Metrics
	count    int64
	countMu  sync.Mutex
}

// NewManager creates a session manager
func NewManager(verifier Verifier, users *UserStore, cfg Config) *Manager {
	if cfg.TTL == 0 {
		cfg.TTL = 24 * time.Hour
	}
	return &Manager{
		verifier: verifier,
		users:    users,
		cfg:      cfg,
	}
}

// WithMetrics adds metrics tracking to the manager
func (m *Manager) WithMetrics(metrics *monitoring.Metrics) *Manager {
	m.metrics = metrics
	return m
}

// Login authenticates the credentials and opens a session
func (m *Manager) Login(ctx context.Context, email, password string) (*Session, error) {
	if !validEmail(email) {
		m.recordLogin("invalid", "password")
		return nil, authErr(CodeInvalidEmail, "malformed email address")
	}
	if password == "" {
		m.recordLogin("invalid", "password")
		return nil, authErr(CodeInvalidCredentials, "password required")
	}

	user, err := m.verifier.Verify(email, password)
	if err != nil {
		m.recordLogin("failure", "password")
		return nil, err
	}

	sess, err := m.open(*user)
	if err != nil {
		return nil, err
	}
	m.recordLogin("success", "password")
	return sess, nil
}

// providerIdentities are the fixed identities the simulated external
// flows resolve to
var providerIdentities = map[Provider]types.User{
	ProviderGoogle: {
		ID:      "google-user-1",
		Name:    "อภิชาติ นิลมณีติ",
		Email:   "user@gmail.com",
		Role:    types.RoleUser,
		Avatar:  "/diverse-group.png",
		Company: "บริษัท โซลาร์เอเชีย.เท็ค จำกัด",
	},
	ProviderMicrosoft: {
		ID:      "microsoft-user-1",
		Name:    "อภิชาติ นิลมณีติ",
		Email:   "user@outlook.com",
		Role:    types.RoleUser,
		Avatar:  "/diverse-group.png",
		Company: "บริษัท โซลาร์เอเชีย.เท็ค จำกัด",
	},
}

// LoginWithProvider simulates an external identity flow: a fixed mock
// identity after a bounded delay. The delay respects ctx so a caller that
// navigates away does not leave a timer firing into a dead session.
func (m *Manager) LoginWithProvider(ctx context.Context, provider Provider) (*Session, error) {
	identity, ok := providerIdentities[provider]
	if !ok {
		return nil, fmt.Errorf("unknown identity provider %q", provider)
	}

	if m.cfg.ProviderDelay > 0 {
		select {
		case <-time.After(m.cfg.ProviderDelay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	sess, err := m.open(identity)
	if err != nil {
		return nil, err
	}
	m.recordLogin("success", string(provider))
	return sess, nil
}

// Verify returns the live session for a token
func (m *Manager) Verify(token string) (*Session, error) {
	val, ok := m.sessions.Load(token)
	if !ok {
		return nil, authErr(CodeSessionNotFound, "no session for token")
	}

	sess := val.(*Session)
	if time.Now().After(sess.ExpiresAt) {
		m.drop(token)
		return nil, authErr(CodeSessionExpired, "session expired")
	}

	sessCopy := *sess
	return &sessCopy, nil
}

// Logout tears down the session; logging out an unknown token is a no-op
func (m *Manager) Logout(token string) {
	m.drop(token)
}

// open mints a token and caches the session
func (m *Manager) open(user types.User) (*Session, error) {
	now := time.Now()
	expires := now.Add(m.cfg.TTL)
	id := uuid.New().String()

	claims := jwt.MapClaims{
		"jti":   id,
		"sub":   user.ID,
		"email": user.Email,
		"role":  string(user.Role),
		"iat":   now.Unix(),
		"exp":   expires.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.cfg.Secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign session token: %w", err)
	}

	sess := &Session{
		ID:        id,
		Token:     token,
		User:      user,
		CreatedAt: now,
		ExpiresAt: expires,
	}
	m.sessions.Store(token, sess)

	m.countMu.Lock()
	m.count++
	m.trackSessions()
	m.countMu.Unlock()

	sessCopy := *sess
	return &sessCopy, nil
}

func (m *Manager) drop(token string) {
	if _, ok := m.sessions.Load(token); !ok {
		return
	}
	m.sessions.Delete(token)

	m.countMu.Lock()
	if m.count > 0 {
		m.count--
	}
	m.trackSessions()
	m.countMu.Unlock()
}

// trackSessions publishes the live session count; caller holds countMu
func (m *Manager) trackSessions() {
	if m.metrics != nil {
		m.metrics.SessionsActive.Set(float64(m.count))
	}
}

func (m *Manager) recordLogin(outcome, provider string) {
	if m.metrics != nil {
		m.metrics.RecordLogin(outcome, provider)
	}
}
