package handler

import (
	"context"
	"mime"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/iho/finledger/internal/usecase"
)

// ReportService defines the behavior needed by ReportHandler.
type ReportService interface {
	Export(ctx context.Context, sessionID string) (*usecase.Report, error)
}

// ReportHandler offers the session report as a download.
type ReportHandler struct {
	reportUC ReportService
	logger   zerolog.Logger
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportUC ReportService, logger zerolog.Logger) *ReportHandler {
	return &ReportHandler{reportUC: reportUC, logger: logger}
}

// Download renders the report and writes it as an attachment. Headers are
// only sent once the whole document is available.
func (h *ReportHandler) Download(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}

	report, err := h.reportUC.Export(r.Context(), id)
	if err != nil {
		status := mapDomainError(err)
		if status == http.StatusInternalServerError {
			h.logger.Error().Err(err).Str("session_id", id).Msg("report export failed")
		}
		writeError(w, status, "failed to export report", err.Error())
		return
	}

	w.Header().Set("Content-Type", report.ContentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": report.Filename}))
	w.Header().Set("Content-Length", strconv.Itoa(len(report.Content)))
	w.WriteHeader(http.StatusOK)
	w.Write(report.Content)
}
