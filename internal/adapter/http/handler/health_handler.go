package handler

import (
	"context"
	"net/http"
	"time"
)

// SessionCounter reports the number of live sessions.
type SessionCounter interface {
	ActiveSessions(ctx context.Context) (int, error)
}

// HealthHandler handles health check requests.
type HealthHandler struct {
	sessions SessionCounter
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(sessions SessionCounter) *HealthHandler {
	return &HealthHandler{sessions: sessions}
}

// Liveness returns 200 if the service is alive.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Readiness returns 200 if the session store answers.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if h.sessions == nil {
		writeJSON(w, http.StatusOK, map[string]any{"status": "ready"})
		return
	}

	n, err := h.sessions.ActiveSessions(ctx)
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, "session store unhealthy", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":          "ready",
		"active_sessions": n,
	})
}
