package session

import (
	"context"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"

	"github.com/taskdeck/client/domain"
	"github.com/taskdeck/client/repository"
)

// State names the phase of the authentication state machine.
type State string

const (
	StateAnonymous      State = "anonymous"
	StateAuthenticating State = "authenticating"
	StateAuthenticated  State = "authenticated"
)

// Result reports the outcome of a login or register attempt. Failures
// carry a human-readable message; nothing escapes this layer as a
// panic or raw error.
type Result struct {
	Success bool
	Message string
}

// TokenBinder receives the current credential whenever the session
// changes. Implemented by the API client.
type TokenBinder interface {
	SetToken(token string)
}

// Manager owns the session: it exchanges credentials through the auth
// repository, normalizes the two response shapes into a fully
// populated session, and rebinds the API client's bearer credential.
type Manager struct {
	auth   repository.AuthRepository
	binder TokenBinder
	logger *zap.Logger

	mu      sync.RWMutex
	state   State
	current *domain.Session
}

func New(auth repository.AuthRepository, binder TokenBinder, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		auth:   auth,
		binder: binder,
		logger: logger,
		state:  StateAnonymous,
	}
}

// Login exchanges the credentials and, on success, transitions to
// Authenticated. A failed attempt returns to Anonymous.
func (m *Manager) Login(ctx context.Context, email, password string) Result {
	m.setState(StateAuthenticating)

	res, err := m.auth.Login(ctx, email, password)
	if err != nil {
		m.setState(StateAnonymous)
		m.logger.Warn("login rejected", zap.Error(err))
		return Result{Message: domain.ErrorMessage(err, "unable to sign in")}
	}
	return m.establish(res, email)
}

// Register creates an account, with the same contract as Login.
func (m *Manager) Register(ctx context.Context, profile repository.RegisterProfile) Result {
	m.setState(StateAuthenticating)

	res, err := m.auth.Register(ctx, profile)
	if err != nil {
		m.setState(StateAnonymous)
		m.logger.Warn("registration rejected", zap.Error(err))
		return Result{Message: domain.ErrorMessage(err, "unable to register")}
	}
	return m.establish(res, profile.Email)
}

// Logout unconditionally clears credential and identity. Idempotent.
func (m *Manager) Logout() {
	m.mu.Lock()
	m.current = nil
	m.state = StateAnonymous
	m.mu.Unlock()

	if m.binder != nil {
		m.binder.SetToken("")
	}
}

// IsAuthenticated reports whether both credential and identity are held.
func (m *Manager) IsAuthenticated() bool {
	return m.Current().IsAuthenticated()
}

// Current returns the session, or nil when anonymous.
func (m *Manager) Current() *domain.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// establish normalizes the auth response: credential and identity are
// stored together or not at all. A token-only response gets a
// synthesized identity derived from the submitted email.
func (m *Manager) establish(res *repository.AuthResult, email string) Result {
	if res == nil || res.Token == "" {
		m.setState(StateAnonymous)
		m.logger.Warn("auth response carried no usable credential")
		return Result{Message: "invalid response from server"}
	}

	identity := res.User
	if identity == nil {
		identity = &domain.User{
			ID:    domain.SentinelUserID,
			Email: email,
			Name:  domain.EmailLocalPart(email),
		}
	}

	sess := &domain.Session{
		Token:     res.Token,
		User:      identity,
		CreatedAt: time.Now(),
	}
	if exp, ok := tokenExpiry(res.Token); ok {
		sess.ExpiresAt = exp
	}

	m.mu.Lock()
	m.current = sess
	m.state = StateAuthenticated
	m.mu.Unlock()

	if m.binder != nil {
		m.binder.SetToken(res.Token)
	}
	m.logger.Info("session established", zap.String("user_id", identity.ID))
	return Result{Success: true}
}

func (m *Manager) setState(state State) {
	m.mu.Lock()
	m.state = state
	m.mu.Unlock()
}

// tokenExpiry reads the exp claim without verifying the signature; the
// client has no key material and only uses the expiry for display.
func tokenExpiry(token string) (time.Time, bool) {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}
