package teambuilder

import (
	"context"
	"sync"

	"github.com/volleyverse/fantasy-volley/external/rosterapi"
	"github.com/volleyverse/fantasy-volley/internal/platform/logging"
)

// Authenticator exchanges credentials for an account with a bearer
// token. *rosterapi.Client satisfies it.
type Authenticator interface {
	SignIn(ctx context.Context, email, password string) (rosterapi.Account, error)
	SignUp(ctx context.Context, email, password, name string) (rosterapi.Account, error)
}

// Manager owns the session lifecycle: sign-in creates a fresh hydrated
// session, sign-out discards it together with the token.
type Manager struct {
	auth   Authenticator
	client Client
	logger *logging.Logger

	mu      sync.Mutex
	session *Session
	account rosterapi.Account
}

func NewManager(auth Authenticator, client Client, logger *logging.Logger) *Manager {
	if logger == nil {
		logger = logging.Default()
	}

	return &Manager{
		auth:   auth,
		client: client,
		logger: logger,
	}
}

// SignIn authenticates and swaps in a new session, replacing any
// previous one. The saved lineup is hydrated best effort.
func (m *Manager) SignIn(ctx context.Context, email, password string) (*Session, error) {
	account, err := m.auth.SignIn(ctx, email, password)
	if err != nil {
		return nil, err
	}

	return m.startSession(ctx, account), nil
}

// SignUp registers a new account and opens its session.
func (m *Manager) SignUp(ctx context.Context, email, password, name string) (*Session, error) {
	account, err := m.auth.SignUp(ctx, email, password, name)
	if err != nil {
		return nil, err
	}

	return m.startSession(ctx, account), nil
}

// Session returns the active session, if any.
func (m *Manager) Session() (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session, m.session != nil
}

// Account returns the signed-in account, if any.
func (m *Manager) Account() (rosterapi.Account, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.account, m.session != nil
}

// SignOut drops the session and token. Unsaved selection state is
// discarded with it.
func (m *Manager) SignOut() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = nil
	m.account = rosterapi.Account{}
}

func (m *Manager) startSession(ctx context.Context, account rosterapi.Account) *Session {
	session := NewSession(m.client, account.Token, m.logger)
	session.Load(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = session
	m.account = account

	return session
}
