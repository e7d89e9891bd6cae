package handler

import (
	"context"
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/iho/finledger/internal/adapter/http/dto"
	"github.com/iho/finledger/internal/domain"
	"github.com/iho/finledger/internal/usecase"
)

type reportServiceStub struct {
	exportFn func(ctx context.Context, sessionID string) (*usecase.Report, error)
}

func (s *reportServiceStub) Export(ctx context.Context, sessionID string) (*usecase.Report, error) {
	return s.exportFn(ctx, sessionID)
}

func TestReportHandler_Download(t *testing.T) {
	handler := NewReportHandler(&reportServiceStub{
		exportFn: func(ctx context.Context, sessionID string) (*usecase.Report, error) {
			return &usecase.Report{
				Filename:    usecase.DefaultReportFilename,
				ContentType: usecase.ReportContentType,
				Content:     []byte("PK-content"),
			}, nil
		},
	}, zerolog.Nop())

	req := setChiURLParam(httptest.NewRequest(http.MethodGet, "/sessions/sess-1/report", nil), "id", "sess-1")
	rec := httptest.NewRecorder()
	handler.Download(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != usecase.ReportContentType {
		t.Fatalf("unexpected content type %s", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); cd != "attachment; filename=financial_report.xlsx" {
		t.Fatalf("unexpected content disposition %s", cd)
	}
	if rec.Body.String() != "PK-content" {
		t.Fatalf("unexpected body %q", rec.Body.String())
	}
}

func TestReportHandler_Download_NonASCIIFilename(t *testing.T) {
	handler := NewReportHandler(&reportServiceStub{
		exportFn: func(ctx context.Context, sessionID string) (*usecase.Report, error) {
			return &usecase.Report{
				Filename:    "relatório financeiro.xlsx",
				ContentType: usecase.ReportContentType,
				Content:     []byte("PK"),
			}, nil
		},
	}, zerolog.Nop())

	req := setChiURLParam(httptest.NewRequest(http.MethodGet, "/sessions/sess-1/report", nil), "id", "sess-1")
	rec := httptest.NewRecorder()
	handler.Download(rec, req)

	cd := rec.Header().Get("Content-Disposition")
	if strings.Contains(cd, `\u00`) {
		t.Fatalf("unexpected escape sequence in %s", cd)
	}
	disposition, params, err := mime.ParseMediaType(cd)
	if err != nil {
		t.Fatalf("parse content disposition %q: %v", cd, err)
	}
	if disposition != "attachment" || params["filename"] != "relatório financeiro.xlsx" {
		t.Fatalf("unexpected content disposition %s", cd)
	}
}

func TestReportHandler_Download_Errors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"unknown session", domain.ErrSessionNotFound, http.StatusNotFound},
		{"render failure", errors.New("render report: zip: write failed"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewReportHandler(&reportServiceStub{
				exportFn: func(ctx context.Context, sessionID string) (*usecase.Report, error) {
					return nil, tt.err
				},
			}, zerolog.Nop())

			req := setChiURLParam(httptest.NewRequest(http.MethodGet, "/sessions/sess-1/report", nil), "id", "sess-1")
			rec := httptest.NewRecorder()
			handler.Download(rec, req)

			if rec.Code != tt.status {
				t.Fatalf("expected %d, got %d", tt.status, rec.Code)
			}
			if rec.Header().Get("Content-Disposition") != "" {
				t.Fatalf("expected no attachment on failure")
			}

			var resp dto.ErrorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("expected json error body: %v", err)
			}
		})
	}
}
