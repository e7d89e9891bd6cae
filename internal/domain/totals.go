package domain

import "github.com/shopspring/decimal"

// Totals is the derived aggregate of a ledger. It is never stored.
type Totals struct {
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	Balance      decimal.Decimal
}

// CategoryBreakdown maps each category with at least one expense to its sum.
type CategoryBreakdown map[Category]decimal.Decimal

// Categories returns the categories present in b in canonical order.
func (b CategoryBreakdown) Categories() []Category {
	out := make([]Category, 0, len(b))
	for _, c := range categories {
		if _, ok := b[c]; ok {
			out = append(out, c)
		}
	}
	return out
}

// Total sums every category amount.
func (b CategoryBreakdown) Total() decimal.Decimal {
	total := decimal.Zero
	for _, amount := range b {
		total = total.Add(amount)
	}
	return total
}

// ComputeTotals sums income and expenses. Balance is always
// TotalIncome minus TotalExpense.
func ComputeTotals(l *Ledger) Totals {
	income := decimal.Zero
	for _, e := range l.income {
		income = income.Add(e.Amount)
	}

	expense := decimal.Zero
	for _, e := range l.expenses {
		expense = expense.Add(e.Amount)
	}

	return Totals{
		TotalIncome:  income,
		TotalExpense: expense,
		Balance:      income.Sub(expense),
	}
}

// ComputeCategoryBreakdown groups expenses by category. Categories without
// entries are omitted rather than zero-filled.
func ComputeCategoryBreakdown(l *Ledger) CategoryBreakdown {
	breakdown := make(CategoryBreakdown)
	for _, e := range l.expenses {
		breakdown[e.Category] = breakdown[e.Category].Add(e.Amount)
	}
	return breakdown
}
