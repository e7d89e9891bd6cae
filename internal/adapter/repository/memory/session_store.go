package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/iho/finledger/internal/domain"
)

type sessionSlot struct {
	mu      sync.Mutex
	session *domain.Session
	deleted bool
}

// SessionStore implements usecase.SessionStore in process memory.
// The registry lock guards the map; each session has its own lock so
// callbacks on different sessions do not block each other.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*sessionSlot
	now      func() time.Time
}

// Option configures a SessionStore.
type Option func(*SessionStore)

// WithClock overrides the time source used to stamp session activity.
func WithClock(now func() time.Time) Option {
	return func(s *SessionStore) {
		s.now = now
	}
}

// NewSessionStore creates an empty SessionStore.
func NewSessionStore(opts ...Option) *SessionStore {
	s := &SessionStore{
		sessions: make(map[string]*sessionSlot),
		now:      func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create registers a new session.
func (s *SessionStore) Create(ctx context.Context, session *domain.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[session.ID]; ok {
		return fmt.Errorf("%w: %s", domain.ErrSessionExists, session.ID)
	}
	s.sessions[session.ID] = &sessionSlot{session: session}
	return nil
}

// View runs fn against the session ledger.
func (s *SessionStore) View(ctx context.Context, id string, fn func(*domain.Ledger) error) error {
	return s.with(ctx, id, fn)
}

// Update runs fn against the session ledger. A failing fn leaves the
// ledger as fn left it; ledger methods only append after validation.
func (s *SessionStore) Update(ctx context.Context, id string, fn func(*domain.Ledger) error) error {
	return s.with(ctx, id, fn)
}

func (s *SessionStore) with(ctx context.Context, id string, fn func(*domain.Ledger) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.RLock()
	slot, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return domain.ErrSessionNotFound
	}

	slot.mu.Lock()
	defer slot.mu.Unlock()

	// Deleted between the lookup and acquiring the session lock.
	if slot.deleted {
		return domain.ErrSessionNotFound
	}

	slot.session.LastSeenAt = s.now()
	return fn(slot.session.Ledger)
}

// Delete removes a session and its ledger.
func (s *SessionStore) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	slot, ok := s.sessions[id]
	if ok {
		delete(s.sessions, id)
	}
	s.mu.Unlock()

	if !ok {
		return domain.ErrSessionNotFound
	}

	slot.mu.Lock()
	slot.deleted = true
	slot.mu.Unlock()
	return nil
}

// DeleteIdle removes every session whose last activity is before the given time.
func (s *SessionStore) DeleteIdle(ctx context.Context, before time.Time) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, slot := range s.sessions {
		slot.mu.Lock()
		if slot.session.IdleSince(before) {
			slot.deleted = true
			delete(s.sessions, id)
			removed++
		}
		slot.mu.Unlock()
	}
	return removed, nil
}

// Count returns the number of live sessions.
func (s *SessionStore) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions), nil
}
