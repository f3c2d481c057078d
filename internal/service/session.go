package service

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/doughdesk/storefront-service/internal/domain/model"
)

// ErrSessionNotFound is returned when a session ID is unknown or expired.
var ErrSessionNotFound = errors.New("session not found or expired")

// Session owns one cart and one order wizard for a single storefront caller.
// There are no shared singletons: every caller gets its own state,
// constructed when the session is created.
//
// All access to the cart and wizard goes through Update or View, which
// serialize mutations behind the session mutex. Within one session, every
// operation is atomic and its effects are immediately visible to the next.
type Session struct {
	id        string
	createdAt time.Time

	mu       sync.Mutex
	lastSeen time.Time
	cart     *Cart
	wizard   *Wizard
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// CreatedAt returns when the session was created.
func (s *Session) CreatedAt() time.Time {
	return s.createdAt
}

// Update runs fn with exclusive access to the session's cart and wizard and
// refreshes the idle timer. The error from fn is returned unchanged.
func (s *Session) Update(fn func(cart *Cart, wizard *Wizard) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = time.Now()
	return fn(s.cart, s.wizard)
}

// View runs fn with exclusive access for reading. Snapshots taken inside fn
// are safe to use after View returns.
func (s *Session) View(fn func(cart *Cart, wizard *Wizard)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = time.Now()
	fn(s.cart, s.wizard)
}

// CartSnapshot returns the ordered cart lines, item count and exact totals
// in one consistent read.
func (s *Session) CartSnapshot() (lines []model.CartLine, itemCount int, totals model.CartTotals) {
	s.View(func(cart *Cart, _ *Wizard) {
		lines = cart.Lines()
		itemCount = cart.ItemCount()
		totals = cart.Totals()
	})
	return lines, itemCount, totals
}

// idleSince returns the last time the session was touched.
func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// SessionStore holds live sessions keyed by ID. Sessions expire after
// sitting idle for the configured TTL; a background goroutine sweeps
// expired sessions out.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	stopCh   chan struct{}
	onChange func(delta int)
}

// SessionStoreOption configures a SessionStore.
type SessionStoreOption func(*SessionStore)

// WithSessionCounter registers a callback invoked with +1/-1 as sessions are
// created and removed. Used to drive the active sessions gauge.
func WithSessionCounter(onChange func(delta int)) SessionStoreOption {
	return func(st *SessionStore) {
		st.onChange = onChange
	}
}

// NewSessionStore creates a session store with the given idle TTL and starts
// the expiry sweeper.
func NewSessionStore(ttl time.Duration, opts ...SessionStoreOption) *SessionStore {
	st := &SessionStore{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		stopCh:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(st)
	}
	go st.sweep()
	return st
}

// Create builds a new session with an empty cart and a fresh wizard.
func (st *SessionStore) Create(opts ...WizardOption) *Session {
	now := time.Now()
	session := &Session{
		id:        uuid.NewString(),
		createdAt: now,
		lastSeen:  now,
		cart:      NewCart(),
		wizard:    NewWizard(opts...),
	}

	st.mu.Lock()
	st.sessions[session.id] = session
	st.mu.Unlock()

	if st.onChange != nil {
		st.onChange(1)
	}
	return session
}

// Get returns the session with the given ID, or ErrSessionNotFound when the
// ID is unknown or the session has expired.
func (st *SessionStore) Get(id string) (*Session, error) {
	st.mu.RLock()
	session, ok := st.sessions[id]
	st.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	if st.ttl > 0 && time.Since(session.idleSince()) > st.ttl {
		st.Delete(id)
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// Delete removes a session. Removing an unknown ID is a no-op.
func (st *SessionStore) Delete(id string) {
	st.mu.Lock()
	_, existed := st.sessions[id]
	delete(st.sessions, id)
	st.mu.Unlock()

	if existed && st.onChange != nil {
		st.onChange(-1)
	}
}

// Count returns the number of live sessions.
func (st *SessionStore) Count() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// TTL returns the configured idle TTL.
func (st *SessionStore) TTL() time.Duration {
	return st.ttl
}

// Stop shuts down the expiry sweeper.
func (st *SessionStore) Stop() {
	close(st.stopCh)
}

// sweep periodically removes sessions idle beyond the TTL.
func (st *SessionStore) sweep() {
	interval := st.ttl / 2
	if interval <= 0 || interval > time.Minute {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			st.sweepExpired()
		case <-st.stopCh:
			return
		}
	}
}

// sweepExpired removes all sessions idle beyond the TTL.
func (st *SessionStore) sweepExpired() {
	if st.ttl <= 0 {
		return
	}
	now := time.Now()

	st.mu.RLock()
	expired := make([]string, 0)
	for id, session := range st.sessions {
		if now.Sub(session.idleSince()) > st.ttl {
			expired = append(expired, id)
		}
	}
	st.mu.RUnlock()

	for _, id := range expired {
		st.Delete(id)
	}
}
