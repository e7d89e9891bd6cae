package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/iho/finledger/internal/adapter/http/dto"
	"github.com/iho/finledger/internal/domain"
)

type sessionServiceStub struct {
	startFn func(ctx context.Context) (*domain.Session, error)
	endFn   func(ctx context.Context, id string) error
}

func (s *sessionServiceStub) StartSession(ctx context.Context) (*domain.Session, error) {
	return s.startFn(ctx)
}

func (s *sessionServiceStub) EndSession(ctx context.Context, id string) error {
	return s.endFn(ctx, id)
}

func TestSessionHandler_Create(t *testing.T) {
	handler := NewSessionHandler(&sessionServiceStub{
		startFn: func(ctx context.Context) (*domain.Session, error) {
			return domain.NewSession("sess-1", time.Now()), nil
		},
	})

	rec := httptest.NewRecorder()
	handler.Create(rec, httptest.NewRequest(http.MethodPost, "/sessions", nil))

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.SessionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ID != "sess-1" {
		t.Fatalf("expected session ID sess-1, got %s", resp.ID)
	}
}

func TestSessionHandler_Create_ServiceError(t *testing.T) {
	handler := NewSessionHandler(&sessionServiceStub{
		startFn: func(ctx context.Context) (*domain.Session, error) {
			return nil, errors.New("boom")
		},
	})

	rec := httptest.NewRecorder()
	handler.Create(rec, httptest.NewRequest(http.MethodPost, "/sessions", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestSessionHandler_Delete(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"ends session", nil, http.StatusNoContent},
		{"unknown session", domain.ErrSessionNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ended string
			handler := NewSessionHandler(&sessionServiceStub{
				endFn: func(ctx context.Context, id string) error {
					ended = id
					return tt.err
				},
			})

			req := setChiURLParam(httptest.NewRequest(http.MethodDelete, "/sessions/sess-1", nil), "id", "sess-1")
			rec := httptest.NewRecorder()
			handler.Delete(rec, req)

			if rec.Code != tt.status {
				t.Fatalf("expected %d, got %d", tt.status, rec.Code)
			}
			if ended != "sess-1" {
				t.Fatalf("expected EndSession(sess-1), got %q", ended)
			}
		})
	}
}
