package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/finledger/internal/domain"
)

// LedgerUseCase records entries into a session ledger and reads aggregates back.
type LedgerUseCase struct {
	store          SessionStore
	idGen          IDGenerator
	observer       Observer
	currencySymbol string
}

// NewLedgerUseCase creates a new LedgerUseCase.
func NewLedgerUseCase(store SessionStore, idGen IDGenerator, observer Observer, currencySymbol string) *LedgerUseCase {
	if observer == nil {
		observer = NopObserver{}
	}
	if currencySymbol == "" {
		currencySymbol = domain.DefaultCurrencySymbol
	}
	return &LedgerUseCase{
		store:          store,
		idGen:          idGen,
		observer:       observer,
		currencySymbol: currencySymbol,
	}
}

// AddIncomeInput represents input for recording an income.
type AddIncomeInput struct {
	SessionID   string
	Description string
	Amount      decimal.Decimal
}

// AddExpenseInput represents input for recording an expense.
type AddExpenseInput struct {
	SessionID   string
	Description string
	Category    domain.Category
	Amount      decimal.Decimal
}

// Summary is the aggregate view of a session ledger.
type Summary struct {
	Breakdown    domain.CategoryBreakdown
	Totals       domain.Totals
	IncomeCount  int
	ExpenseCount int
}

// CurrencySymbol returns the prefix used for formatted amounts.
func (uc *LedgerUseCase) CurrencySymbol() string {
	return uc.currencySymbol
}

// AddIncome validates and records an income entry.
func (uc *LedgerUseCase) AddIncome(ctx context.Context, input AddIncomeInput) (*domain.IncomeEntry, error) {
	entry := domain.IncomeEntry{
		ID:          uc.idGen.Generate(),
		Description: strings.TrimSpace(input.Description),
		Amount:      input.Amount,
		CreatedAt:   time.Now().UTC(),
	}

	if err := entry.Validate(); err != nil {
		return nil, err
	}

	err := uc.store.Update(ctx, input.SessionID, func(l *domain.Ledger) error {
		return l.AddIncome(entry)
	})
	if err != nil {
		return nil, err
	}

	uc.observer.EntryRecorded(EntryKindIncome, "")
	return &entry, nil
}

// AddExpense validates and records an expense entry.
func (uc *LedgerUseCase) AddExpense(ctx context.Context, input AddExpenseInput) (*domain.ExpenseEntry, error) {
	entry := domain.ExpenseEntry{
		ID:          uc.idGen.Generate(),
		Description: strings.TrimSpace(input.Description),
		Category:    input.Category,
		Amount:      input.Amount,
		CreatedAt:   time.Now().UTC(),
	}

	if err := entry.Validate(); err != nil {
		return nil, err
	}

	err := uc.store.Update(ctx, input.SessionID, func(l *domain.Ledger) error {
		return l.AddExpense(entry)
	})
	if err != nil {
		return nil, err
	}

	uc.observer.EntryRecorded(EntryKindExpense, entry.Category)
	return &entry, nil
}

// ListIncome returns the session's income entries in insertion order.
func (uc *LedgerUseCase) ListIncome(ctx context.Context, sessionID string) ([]domain.IncomeEntry, error) {
	var income []domain.IncomeEntry
	err := uc.store.View(ctx, sessionID, func(l *domain.Ledger) error {
		income = l.Income()
		return nil
	})
	return income, err
}

// ListExpenses returns the session's expense entries in insertion order.
func (uc *LedgerUseCase) ListExpenses(ctx context.Context, sessionID string) ([]domain.ExpenseEntry, error) {
	var expenses []domain.ExpenseEntry
	err := uc.store.View(ctx, sessionID, func(l *domain.Ledger) error {
		expenses = l.Expenses()
		return nil
	})
	return expenses, err
}

// GetSummary computes totals and the category breakdown.
func (uc *LedgerUseCase) GetSummary(ctx context.Context, sessionID string) (*Summary, error) {
	var summary Summary
	err := uc.store.View(ctx, sessionID, func(l *domain.Ledger) error {
		summary = Summary{
			Totals:       domain.ComputeTotals(l),
			Breakdown:    domain.ComputeCategoryBreakdown(l),
			IncomeCount:  len(l.Income()),
			ExpenseCount: len(l.Expenses()),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

// GetCategorySeries returns the expenses-by-category bar chart series.
func (uc *LedgerUseCase) GetCategorySeries(ctx context.Context, sessionID string) ([]BarPoint, error) {
	summary, err := uc.GetSummary(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return BuildCategoryBarSeries(summary.Breakdown, uc.currencySymbol), nil
}

// GetTreemapSeries returns the income and expenses treemap series.
func (uc *LedgerUseCase) GetTreemapSeries(ctx context.Context, sessionID string) ([]TreemapNode, error) {
	summary, err := uc.GetSummary(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return BuildTreemapSeries(summary.Breakdown, summary.Totals, uc.currencySymbol), nil
}
