package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scenarioLedger(t *testing.T) *Ledger {
	t.Helper()

	l := NewLedger()
	require.NoError(t, l.AddIncome(IncomeEntry{Description: "Salary", Amount: decimal.RequireFromString("1000.00")}))
	require.NoError(t, l.AddExpense(ExpenseEntry{Description: "Rent", Amount: decimal.RequireFromString("400.00"), Category: CategoryHousing}))
	require.NoError(t, l.AddExpense(ExpenseEntry{Description: "Lunch", Amount: decimal.RequireFromString("50.00"), Category: CategoryFood}))
	return l
}

func TestComputeTotals_EmptyLedger(t *testing.T) {
	totals := ComputeTotals(NewLedger())

	assert.True(t, totals.TotalIncome.IsZero())
	assert.True(t, totals.TotalExpense.IsZero())
	assert.True(t, totals.Balance.IsZero())
	assert.Empty(t, ComputeCategoryBreakdown(NewLedger()))
}

func TestComputeTotals_Scenario(t *testing.T) {
	l := scenarioLedger(t)

	totals := ComputeTotals(l)
	assert.True(t, totals.TotalIncome.Equal(decimal.NewFromInt(1000)), "income %s", totals.TotalIncome)
	assert.True(t, totals.TotalExpense.Equal(decimal.NewFromInt(450)), "expense %s", totals.TotalExpense)
	assert.True(t, totals.Balance.Equal(decimal.NewFromInt(550)), "balance %s", totals.Balance)

	breakdown := ComputeCategoryBreakdown(l)
	require.Len(t, breakdown, 2)
	assert.True(t, breakdown[CategoryHousing].Equal(decimal.NewFromInt(400)))
	assert.True(t, breakdown[CategoryFood].Equal(decimal.NewFromInt(50)))
	_, hasTransport := breakdown[CategoryTransport]
	assert.False(t, hasTransport, "empty categories are omitted")
	assert.Equal(t, []Category{CategoryFood, CategoryHousing}, breakdown.Categories())
}

func TestComputeTotals_Invariants(t *testing.T) {
	amounts := []string{"0.01", "19.99", "0.10", "0.20", "1234.56", "7.77", "100", "3.33"}
	cats := Categories()

	l := NewLedger()
	sum := decimal.Zero
	for i, a := range amounts {
		amount := decimal.RequireFromString(a)
		sum = sum.Add(amount)
		require.NoError(t, l.AddIncome(IncomeEntry{Description: "in", Amount: amount}))
		require.NoError(t, l.AddExpense(ExpenseEntry{Description: "out", Amount: amount.Div(decimal.NewFromInt(2)), Category: cats[i%len(cats)]}))
	}

	totals := ComputeTotals(l)
	assert.True(t, totals.TotalIncome.Equal(sum), "income %s, want %s", totals.TotalIncome, sum)
	assert.True(t, totals.TotalIncome.Sub(totals.TotalExpense).Equal(totals.Balance))

	breakdown := ComputeCategoryBreakdown(l)
	assert.True(t, breakdown.Total().Equal(totals.TotalExpense), "breakdown %s, expense %s", breakdown.Total(), totals.TotalExpense)
}

func TestComputeTotals_Idempotent(t *testing.T) {
	l := scenarioLedger(t)

	assert.Equal(t, ComputeTotals(l), ComputeTotals(l))
	assert.Equal(t, ComputeCategoryBreakdown(l), ComputeCategoryBreakdown(l))
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "R$ 1000.00", FormatCurrency("R$", decimal.NewFromInt(1000)))
	assert.Equal(t, "R$ 0.00", FormatCurrency("", decimal.Zero))
	assert.Equal(t, "€ 12.35", FormatCurrency("€", decimal.RequireFromString("12.345")))
	assert.Equal(t, "R$ -550.00", FormatCurrency("R$", decimal.NewFromInt(-550)))
}
