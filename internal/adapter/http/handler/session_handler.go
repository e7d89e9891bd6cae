package handler

import (
	"context"
	"net/http"

	"github.com/iho/finledger/internal/adapter/http/dto"
	"github.com/iho/finledger/internal/domain"
)

// SessionService defines the behavior needed by SessionHandler.
type SessionService interface {
	StartSession(ctx context.Context) (*domain.Session, error)
	EndSession(ctx context.Context, id string) error
}

// SessionHandler handles session lifecycle requests.
type SessionHandler struct {
	sessionUC SessionService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(sessionUC SessionService) *SessionHandler {
	return &SessionHandler{sessionUC: sessionUC}
}

// Create starts a session with an empty ledger.
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessionUC.StartSession(r.Context())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to start session", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.SessionFromDomain(session))
}

// Delete ends a session and discards its ledger.
func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}

	if err := h.sessionUC.EndSession(r.Context(), id); err != nil {
		writeError(w, mapDomainError(err), "failed to end session", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
