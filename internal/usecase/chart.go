package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/iho/finledger/internal/domain"
)

// Treemap groups and the synthetic income row.
const (
	TreemapGroupIncome   = "Income"
	TreemapGroupExpenses = "Expenses"
	TreemapIncomeName    = "Total Income"
)

// Treemap group colors.
const (
	TreemapColorIncome   = "#4CAF50"
	TreemapColorExpenses = "#FF5722"
)

// BarPoint is one bar of the expenses-by-category chart.
type BarPoint struct {
	Category domain.Category
	Label    string
	Amount   decimal.Decimal
}

// TreemapNode is one leaf of the income/expenses treemap.
type TreemapNode struct {
	Group  string
	Name   string
	Label  string
	Color  string
	Amount decimal.Decimal
}

// BuildCategoryBarSeries emits one point per non-empty category in canonical
// order, labelled with the formatted amount.
func BuildCategoryBarSeries(breakdown domain.CategoryBreakdown, currencySymbol string) []BarPoint {
	cats := breakdown.Categories()
	points := make([]BarPoint, 0, len(cats))
	for _, c := range cats {
		amount := breakdown[c]
		points = append(points, BarPoint{
			Category: c,
			Amount:   amount,
			Label:    domain.FormatCurrency(currencySymbol, amount),
		})
	}
	return points
}

// BuildTreemapSeries emits the synthetic total income row under the Income
// group, followed by one row per expense category under the Expenses group.
// The income row is present even when total income is zero.
func BuildTreemapSeries(breakdown domain.CategoryBreakdown, totals domain.Totals, currencySymbol string) []TreemapNode {
	cats := breakdown.Categories()
	nodes := make([]TreemapNode, 0, len(cats)+1)

	nodes = append(nodes, treemapNode(TreemapGroupIncome, TreemapIncomeName, TreemapColorIncome, totals.TotalIncome, currencySymbol))
	for _, c := range cats {
		nodes = append(nodes, treemapNode(TreemapGroupExpenses, c.String(), TreemapColorExpenses, breakdown[c], currencySymbol))
	}
	return nodes
}

func treemapNode(group, name, color string, amount decimal.Decimal, currencySymbol string) TreemapNode {
	return TreemapNode{
		Group:  group,
		Name:   name,
		Label:  name + "\n" + domain.FormatCurrency(currencySymbol, amount),
		Color:  color,
		Amount: amount,
	}
}
