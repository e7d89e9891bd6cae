package dto

import (
	"github.com/shopspring/decimal"

	"github.com/iho/finledger/internal/domain"
	"github.com/iho/finledger/internal/usecase"
)

// CreateIncomeRequest represents a request to record an income.
type CreateIncomeRequest struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateIncomeRequest) ToUseCaseInput(sessionID string) usecase.AddIncomeInput {
	return usecase.AddIncomeInput{
		SessionID:   sessionID,
		Description: r.Description,
		Amount:      r.Amount,
	}
}

// CreateExpenseRequest represents a request to record an expense.
type CreateExpenseRequest struct {
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
}

// ToUseCaseInput converts to use case input. The category is matched
// case-insensitively against the fixed category set.
func (r *CreateExpenseRequest) ToUseCaseInput(sessionID string) (usecase.AddExpenseInput, error) {
	category, err := domain.ParseCategory(r.Category)
	if err != nil {
		return usecase.AddExpenseInput{}, err
	}

	return usecase.AddExpenseInput{
		SessionID:   sessionID,
		Description: r.Description,
		Category:    category,
		Amount:      r.Amount,
	}, nil
}
