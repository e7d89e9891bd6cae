package usecase

import (
	"context"
	"time"

	"github.com/iho/finledger/internal/domain"
)

// SessionUseCase manages the lifecycle of per-user sessions.
type SessionUseCase struct {
	store    SessionStore
	idGen    IDGenerator
	observer Observer
}

// NewSessionUseCase creates a new SessionUseCase.
func NewSessionUseCase(store SessionStore, idGen IDGenerator, observer Observer) *SessionUseCase {
	if observer == nil {
		observer = NopObserver{}
	}
	return &SessionUseCase{
		store:    store,
		idGen:    idGen,
		observer: observer,
	}
}

// StartSession creates a session with an empty ledger.
func (uc *SessionUseCase) StartSession(ctx context.Context) (*domain.Session, error) {
	session := domain.NewSession(uc.idGen.Generate(), time.Now().UTC())

	if err := uc.store.Create(ctx, session); err != nil {
		return nil, err
	}

	uc.observer.SessionStarted()
	return session, nil
}

// EndSession discards a session and everything recorded in it.
func (uc *SessionUseCase) EndSession(ctx context.Context, id string) error {
	if err := uc.store.Delete(ctx, id); err != nil {
		return err
	}

	uc.observer.SessionsEnded(1)
	return nil
}

// ExpireIdle ends every session unused for longer than idleTTL.
func (uc *SessionUseCase) ExpireIdle(ctx context.Context, idleTTL time.Duration) (int, error) {
	n, err := uc.store.DeleteIdle(ctx, time.Now().UTC().Add(-idleTTL))
	if err != nil {
		return 0, err
	}

	if n > 0 {
		uc.observer.SessionsEnded(n)
	}
	return n, nil
}

// ActiveSessions returns the number of live sessions.
func (uc *SessionUseCase) ActiveSessions(ctx context.Context) (int, error) {
	return uc.store.Count(ctx)
}
