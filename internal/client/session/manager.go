package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/courtside/internal/client/api"
	"github.com/dmitrijs2005/courtside/internal/client/credentials"
	"github.com/dmitrijs2005/courtside/internal/client/models"
	"github.com/dmitrijs2005/courtside/internal/client/token"
	"github.com/dmitrijs2005/courtside/internal/logging"
)

const inboxSize = 16

// Authenticator is the slice of the API client the manager needs.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (*api.LoginResult, error)
}

// Manager owns the session state. All store writes happen before the
// in-memory state is updated, so a crash between the two never leaves the
// app claiming an authenticated session with no stored token.
type Manager struct {
	auth  Authenticator
	store *credentials.Store
	log   logging.Logger
	now   func() time.Time

	mu      sync.RWMutex
	session Session

	bootstrapOnce sync.Once
	inbox         chan Event
}

func NewManager(auth Authenticator, store *credentials.Store, log logging.Logger) *Manager {
	return &Manager{
		auth:  auth,
		store: store,
		log:   log,
		now:   time.Now,
		// Loading stays true until Bootstrap has run.
		session: Session{Loading: true},
		inbox:   make(chan Event, inboxSize),
	}
}

// Current returns a copy of the published session snapshot.
func (m *Manager) Current() Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s := m.session
	s.User = s.User.Clone()
	return s
}

// Bootstrap restores the session from the credential store. It runs exactly
// once; later calls are no-ops. An expired or undecodable stored token is
// cleaned up silently: this is a passive background check, not a user
// action, so no error surfaces.
func (m *Manager) Bootstrap(ctx context.Context) error {
	var err error
	m.bootstrapOnce.Do(func() {
		err = m.bootstrap(ctx)
	})
	return err
}

func (m *Manager) bootstrap(ctx context.Context) error {
	defer func() {
		m.mu.Lock()
		m.session.Loading = false
		m.mu.Unlock()
	}()

	tok, user, err := m.store.LoadSession(ctx)
	if err != nil {
		return fmt.Errorf("failed to read credential store: %w", err)
	}
	if tok == "" || user == nil {
		return nil
	}

	claims, err := token.Decode(tok)
	if err != nil || claims.Expired(m.now()) {
		m.log.Info(ctx, "stored token stale, clearing credentials")
		if clearErr := m.store.Clear(ctx); clearErr != nil {
			return fmt.Errorf("failed to clear stale credentials: %w", clearErr)
		}
		return nil
	}

	m.mu.Lock()
	m.session.IsAuthenticated = true
	m.session.User = user
	m.mu.Unlock()

	m.log.Info(ctx, "session restored", "user", user.Email)
	return nil
}

// Login authenticates against the backend, merges the decoded claims with
// the server profile into one user record, persists {token, record}
// atomically, and only then publishes the authenticated session. On any
// failure the prior session state is left untouched.
func (m *Manager) Login(ctx context.Context, email, password string) (*models.UserRecord, error) {
	res, err := m.auth.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	claims, err := token.Decode(res.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to decode issued token: %w", err)
	}

	user := &models.UserRecord{
		ID:          res.Profile.ID,
		Email:       res.Profile.Email,
		Donated:     res.Profile.Donated,
		ExpiresAt:   claims.ExpiresAt,
		Subject:     claims.Subject,
		Role:        claims.Role,
		DisplayName: claims.DisplayName,
	}

	if err := m.store.SaveSession(ctx, res.AccessToken, user); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	m.mu.Lock()
	m.session = Session{IsAuthenticated: true, User: user}
	m.mu.Unlock()

	m.log.Info(ctx, "login succeeded", "user", user.Email)
	return user.Clone(), nil
}

// Logout clears the credential store and resets the session. Idempotent.
// The in-memory state is reset even when the store wipe fails.
func (m *Manager) Logout(ctx context.Context) error {
	err := m.store.Clear(ctx)

	m.mu.Lock()
	m.session = Session{}
	m.mu.Unlock()

	if err != nil {
		return fmt.Errorf("failed to clear credential store: %w", err)
	}
	return nil
}

// MarkDonated flips the donation flag of the current user, persisting the
// change before publishing it. No-op when unauthenticated.
func (m *Manager) MarkDonated(ctx context.Context) error {
	m.mu.RLock()
	authenticated := m.session.IsAuthenticated
	m.mu.RUnlock()
	if !authenticated {
		return nil
	}

	if err := m.store.SetDonated(ctx); err != nil {
		return fmt.Errorf("failed to persist donation status: %w", err)
	}

	m.mu.Lock()
	if m.session.User != nil {
		u := m.session.User.Clone()
		u.Donated = true
		m.session.User = u
	}
	m.mu.Unlock()
	return nil
}

// Deliver puts an event into the manager's inbox without blocking. Returns
// false when the inbox is full and the event was dropped.
func (m *Manager) Deliver(ev Event) bool {
	select {
	case m.inbox <- ev:
		return true
	default:
		m.log.Warn(context.Background(), "session inbox full, dropping event")
		return false
	}
}

// RunInbox drains the inbox until ctx is cancelled.
func (m *Manager) RunInbox(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-m.inbox:
			m.handle(ctx, ev)
		}
	}
}

func (m *Manager) handle(ctx context.Context, ev Event) {
	switch e := ev.(type) {
	case DonationConfirmed:
		cur := m.Current()
		if cur.User == nil || (cur.User.ID != e.UserID && cur.User.Subject != e.UserID) {
			m.log.Debug(ctx, "donation confirmation for another user, ignoring", "userID", e.UserID)
			return
		}
		if err := m.MarkDonated(ctx); err != nil {
			m.log.Error(ctx, "failed to apply donation confirmation", "error", err)
		}
	case Expired:
		m.log.Warn(ctx, "session expired, forcing logout")
		if err := m.Logout(ctx); err != nil {
			m.log.Error(ctx, "failed to log out expired session", "error", err)
		}
	default:
		m.log.Debug(ctx, "unknown session event", "event", fmt.Sprintf("%T", ev))
	}
}
