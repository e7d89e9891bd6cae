package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/finledger/internal/domain"
	"github.com/iho/finledger/internal/usecase"
)

// SessionResponse represents a session in API responses.
type SessionResponse struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

// SessionFromDomain converts domain session to response.
func SessionFromDomain(s *domain.Session) *SessionResponse {
	return &SessionResponse{
		ID:        s.ID,
		CreatedAt: s.CreatedAt,
	}
}

// IncomeResponse represents an income entry in API responses.
type IncomeResponse struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	CreatedAt   time.Time       `json:"created_at"`
}

// IncomeFromDomain converts domain income entry to response.
func IncomeFromDomain(e *domain.IncomeEntry) *IncomeResponse {
	return &IncomeResponse{
		ID:          e.ID,
		Description: e.Description,
		Amount:      e.Amount,
		CreatedAt:   e.CreatedAt,
	}
}

// ListIncomeResponse represents a list of income entries.
type ListIncomeResponse struct {
	Income []*IncomeResponse `json:"income"`
	Total  int               `json:"total"`
}

// ListIncomeFromDomain converts domain income entries to a list response.
func ListIncomeFromDomain(entries []domain.IncomeEntry) ListIncomeResponse {
	result := make([]*IncomeResponse, len(entries))
	for i := range entries {
		result[i] = IncomeFromDomain(&entries[i])
	}
	return ListIncomeResponse{Income: result, Total: len(result)}
}

// ExpenseResponse represents an expense entry in API responses.
type ExpenseResponse struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ExpenseFromDomain converts domain expense entry to response.
func ExpenseFromDomain(e *domain.ExpenseEntry) *ExpenseResponse {
	return &ExpenseResponse{
		ID:          e.ID,
		Description: e.Description,
		Category:    e.Category.String(),
		Amount:      e.Amount,
		CreatedAt:   e.CreatedAt,
	}
}

// ListExpensesResponse represents a list of expense entries.
type ListExpensesResponse struct {
	Expenses []*ExpenseResponse `json:"expenses"`
	Total    int                `json:"total"`
}

// ListExpensesFromDomain converts domain expense entries to a list response.
func ListExpensesFromDomain(entries []domain.ExpenseEntry) ListExpensesResponse {
	result := make([]*ExpenseResponse, len(entries))
	for i := range entries {
		result[i] = ExpenseFromDomain(&entries[i])
	}
	return ListExpensesResponse{Expenses: result, Total: len(result)}
}

// MoneyResponse carries an amount with its display text.
type MoneyResponse struct {
	Amount    decimal.Decimal `json:"amount"`
	Formatted string          `json:"formatted"`
}

func money(symbol string, amount decimal.Decimal) MoneyResponse {
	return MoneyResponse{
		Amount:    amount,
		Formatted: domain.FormatCurrency(symbol, amount),
	}
}

// CategoryAmountResponse is one row of the category breakdown.
type CategoryAmountResponse struct {
	Category string `json:"category"`
	MoneyResponse
}

// SummaryResponse represents the aggregates of a session ledger.
type SummaryResponse struct {
	TotalIncome  MoneyResponse            `json:"total_income"`
	TotalExpense MoneyResponse            `json:"total_expense"`
	Balance      MoneyResponse            `json:"balance"`
	Breakdown    []CategoryAmountResponse `json:"breakdown"`
	IncomeCount  int                      `json:"income_count"`
	ExpenseCount int                      `json:"expense_count"`
}

// SummaryFromUseCase converts a usecase summary to response. Breakdown rows
// follow the canonical category order.
func SummaryFromUseCase(s *usecase.Summary, symbol string) *SummaryResponse {
	cats := s.Breakdown.Categories()
	breakdown := make([]CategoryAmountResponse, len(cats))
	for i, c := range cats {
		breakdown[i] = CategoryAmountResponse{
			Category:      c.String(),
			MoneyResponse: money(symbol, s.Breakdown[c]),
		}
	}

	return &SummaryResponse{
		TotalIncome:  money(symbol, s.Totals.TotalIncome),
		TotalExpense: money(symbol, s.Totals.TotalExpense),
		Balance:      money(symbol, s.Totals.Balance),
		Breakdown:    breakdown,
		IncomeCount:  s.IncomeCount,
		ExpenseCount: s.ExpenseCount,
	}
}

// BarPointResponse is one bar of the category chart.
type BarPointResponse struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Label    string          `json:"label"`
}

// BarSeriesResponse represents the expenses-by-category chart.
type BarSeriesResponse struct {
	Points []BarPointResponse `json:"points"`
}

// BarSeriesFromUseCase converts chart points to response.
func BarSeriesFromUseCase(points []usecase.BarPoint) *BarSeriesResponse {
	result := make([]BarPointResponse, len(points))
	for i, p := range points {
		result[i] = BarPointResponse{
			Category: p.Category.String(),
			Amount:   p.Amount,
			Label:    p.Label,
		}
	}
	return &BarSeriesResponse{Points: result}
}

// TreemapNodeResponse is one leaf of the treemap.
type TreemapNodeResponse struct {
	Group  string          `json:"group"`
	Name   string          `json:"name"`
	Label  string          `json:"label"`
	Color  string          `json:"color"`
	Amount decimal.Decimal `json:"amount"`
}

// TreemapResponse represents the income and expenses treemap.
type TreemapResponse struct {
	Nodes []TreemapNodeResponse `json:"nodes"`
}

// TreemapFromUseCase converts treemap nodes to response.
func TreemapFromUseCase(nodes []usecase.TreemapNode) *TreemapResponse {
	result := make([]TreemapNodeResponse, len(nodes))
	for i, n := range nodes {
		result[i] = TreemapNodeResponse{
			Group:  n.Group,
			Name:   n.Name,
			Label:  n.Label,
			Color:  n.Color,
			Amount: n.Amount,
		}
	}
	return &TreemapResponse{Nodes: result}
}

// CategoriesResponse lists the accepted expense categories.
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

// CategoriesFromDomain converts categories to response.
func CategoriesFromDomain(categories []domain.Category) *CategoriesResponse {
	result := make([]string, len(categories))
	for i, c := range categories {
		result[i] = c.String()
	}
	return &CategoriesResponse{Categories: result}
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
