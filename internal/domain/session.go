package domain

import "time"

// Session owns one ledger for the lifetime of an interactive user session.
type Session struct {
	CreatedAt  time.Time
	LastSeenAt time.Time
	Ledger     *Ledger
	ID         string
}

// NewSession creates a session with an empty ledger.
func NewSession(id string, now time.Time) *Session {
	return &Session{
		ID:         id,
		Ledger:     NewLedger(),
		CreatedAt:  now,
		LastSeenAt: now,
	}
}

// IdleSince reports whether the session has not been used since before t.
func (s *Session) IdleSince(t time.Time) bool {
	return s.LastSeenAt.Before(t)
}
