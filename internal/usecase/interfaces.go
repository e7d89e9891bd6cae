package usecase

import (
	"context"
	"time"

	"github.com/iho/finledger/internal/domain"
)

// SessionStore keeps the ledgers of live sessions. Implementations serialise
// calls to fn per session, so the ledger itself needs no locking.
type SessionStore interface {
	Create(ctx context.Context, session *domain.Session) error
	// View runs fn with read access to the session ledger.
	View(ctx context.Context, id string, fn func(*domain.Ledger) error) error
	// Update runs fn with write access to the session ledger.
	Update(ctx context.Context, id string, fn func(*domain.Ledger) error) error
	Delete(ctx context.Context, id string) error
	// DeleteIdle removes sessions last used before the given time.
	DeleteIdle(ctx context.Context, before time.Time) (int, error)
	Count(ctx context.Context) (int, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// ReportRenderer encodes report data into a spreadsheet document.
type ReportRenderer interface {
	Render(ctx context.Context, data ReportData) ([]byte, error)
}

// Observer receives notifications about ledger activity, typically for metrics.
type Observer interface {
	SessionStarted()
	SessionsEnded(n int)
	EntryRecorded(kind string, category domain.Category)
	ReportExported(duration time.Duration, size int, err error)
}

// NopObserver discards every notification.
type NopObserver struct{}

func (NopObserver) SessionStarted()                          {}
func (NopObserver) SessionsEnded(int)                        {}
func (NopObserver) EntryRecorded(string, domain.Category)    {}
func (NopObserver) ReportExported(time.Duration, int, error) {}
