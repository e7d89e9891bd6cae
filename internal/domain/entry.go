package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// IncomeEntry is a single recorded income.
type IncomeEntry struct {
	CreatedAt   time.Time
	ID          string
	Description string
	Amount      decimal.Decimal
}

// Validate checks the entry before it enters a ledger.
func (e *IncomeEntry) Validate() error {
	if err := ValidateDescription(e.Description); err != nil {
		return err
	}
	return ValidateAmount(e.Amount)
}

// ExpenseEntry is a single recorded expense.
type ExpenseEntry struct {
	CreatedAt   time.Time
	ID          string
	Description string
	Category    Category
	Amount      decimal.Decimal
}

// Validate checks the entry before it enters a ledger.
func (e *ExpenseEntry) Validate() error {
	if err := ValidateDescription(e.Description); err != nil {
		return err
	}
	if err := ValidateAmount(e.Amount); err != nil {
		return err
	}
	if !e.Category.Valid() {
		return ErrInvalidCategory
	}
	return nil
}
