package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/iho/finledger/internal/domain"
)

// ReportData is the read-only snapshot a renderer turns into a document.
type ReportData struct {
	Income   []domain.IncomeEntry
	Expenses []domain.ExpenseEntry
	Totals   domain.Totals
}

// Report is a rendered document ready to be offered as a download.
type Report struct {
	Filename    string
	ContentType string
	Content     []byte
}

// ReportUseCase exports a session ledger as a spreadsheet.
type ReportUseCase struct {
	store    SessionStore
	renderer ReportRenderer
	observer Observer
	filename string
}

// NewReportUseCase creates a new ReportUseCase.
func NewReportUseCase(store SessionStore, renderer ReportRenderer, observer Observer, filename string) *ReportUseCase {
	if observer == nil {
		observer = NopObserver{}
	}
	if filename == "" {
		filename = DefaultReportFilename
	}
	return &ReportUseCase{
		store:    store,
		renderer: renderer,
		observer: observer,
		filename: filename,
	}
}

// Export snapshots the session ledger and renders it. The whole export either
// yields a complete document or fails; there is no partial result.
func (uc *ReportUseCase) Export(ctx context.Context, sessionID string) (*Report, error) {
	var data ReportData
	err := uc.store.View(ctx, sessionID, func(l *domain.Ledger) error {
		data = ReportData{
			Income:   l.Income(),
			Expenses: l.Expenses(),
			Totals:   domain.ComputeTotals(l),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	start := time.Now()
	content, err := uc.renderer.Render(ctx, data)
	uc.observer.ReportExported(time.Since(start), len(content), err)
	if err != nil {
		return nil, fmt.Errorf("render report: %w", err)
	}

	return &Report{
		Filename:    uc.filename,
		ContentType: ReportContentType,
		Content:     content,
	}, nil
}
