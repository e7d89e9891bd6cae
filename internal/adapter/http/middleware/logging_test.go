package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

func TestLoggingMiddlewareLogsRequest(t *testing.T) {
	var buf bytes.Buffer
	mw := NewLoggingMiddleware(zerolog.New(&buf))

	handler := mw.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/v1/sessions", nil))

	var fields map[string]any
	if err := json.Unmarshal(buf.Bytes(), &fields); err != nil {
		t.Fatalf("expected json log line, got %q: %v", buf.String(), err)
	}
	if fields["method"] != http.MethodPost || fields["status"] != float64(http.StatusCreated) {
		t.Fatalf("unexpected log fields %+v", fields)
	}
}

func TestLoggingMiddlewareLogsRouteAndSession(t *testing.T) {
	var buf bytes.Buffer
	r := chi.NewRouter()
	r.Use(NewLoggingMiddleware(zerolog.New(&buf)).Wrap)
	r.Get("/api/v1/sessions/{id}/summary", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"session not found"}`))
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/sessions/01J0ABC/summary", nil))

	var fields map[string]any
	if err := json.Unmarshal(buf.Bytes(), &fields); err != nil {
		t.Fatalf("expected json log line, got %q: %v", buf.String(), err)
	}
	if fields["route"] != "/api/v1/sessions/{id}/summary" {
		t.Fatalf("expected route pattern, got %v", fields["route"])
	}
	if fields["session_id"] != "01J0ABC" {
		t.Fatalf("expected session_id, got %v", fields["session_id"])
	}
	if fields["level"] != "warn" {
		t.Fatalf("expected warn level for 404, got %v", fields["level"])
	}
	if fields["bytes"] != float64(len(`{"error":"session not found"}`)) {
		t.Fatalf("unexpected bytes %v", fields["bytes"])
	}
}

func TestLoggingMiddlewareServerErrorLevel(t *testing.T) {
	var buf bytes.Buffer
	handler := NewLoggingMiddleware(zerolog.New(&buf)).Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/categories", nil))

	var fields map[string]any
	if err := json.Unmarshal(buf.Bytes(), &fields); err != nil {
		t.Fatalf("expected json log line, got %q: %v", buf.String(), err)
	}
	if fields["level"] != "error" || fields["route"] != "/api/v1/categories" {
		t.Fatalf("unexpected log fields %+v", fields)
	}
	if _, ok := fields["session_id"]; ok {
		t.Fatalf("expected no session_id outside a session route")
	}
}

func TestRecoveryMiddleware(t *testing.T) {
	var buf bytes.Buffer
	handler := Recovery(zerolog.New(&buf))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if !bytes.Contains(buf.Bytes(), []byte("panic recovered")) {
		t.Fatalf("expected panic to be logged, got %q", buf.String())
	}
}
