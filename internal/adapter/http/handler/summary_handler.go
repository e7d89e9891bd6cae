package handler

import (
	"context"
	"net/http"

	"github.com/iho/finledger/internal/adapter/http/dto"
	"github.com/iho/finledger/internal/domain"
	"github.com/iho/finledger/internal/usecase"
)

// SummaryService defines the behavior needed by SummaryHandler.
type SummaryService interface {
	GetSummary(ctx context.Context, sessionID string) (*usecase.Summary, error)
	GetCategorySeries(ctx context.Context, sessionID string) ([]usecase.BarPoint, error)
	GetTreemapSeries(ctx context.Context, sessionID string) ([]usecase.TreemapNode, error)
	CurrencySymbol() string
}

// SummaryHandler serves aggregates and chart series.
type SummaryHandler struct {
	ledgerUC SummaryService
}

// NewSummaryHandler creates a new SummaryHandler.
func NewSummaryHandler(ledgerUC SummaryService) *SummaryHandler {
	return &SummaryHandler{ledgerUC: ledgerUC}
}

// Get returns totals and the category breakdown.
func (h *SummaryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}

	summary, err := h.ledgerUC.GetSummary(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get summary", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.SummaryFromUseCase(summary, h.ledgerUC.CurrencySymbol()))
}

// CategoryChart returns the expenses-by-category bar series.
func (h *SummaryHandler) CategoryChart(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}

	points, err := h.ledgerUC.GetCategorySeries(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to build category chart", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.BarSeriesFromUseCase(points))
}

// TreemapChart returns the income and expenses treemap series.
func (h *SummaryHandler) TreemapChart(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}

	nodes, err := h.ledgerUC.GetTreemapSeries(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to build treemap", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.TreemapFromUseCase(nodes))
}

// Categories lists the accepted expense categories.
func (h *SummaryHandler) Categories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.CategoriesFromDomain(domain.Categories()))
}
