package dto

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/finledger/internal/domain"
	"github.com/iho/finledger/internal/usecase"
)

func TestSummaryFromUseCase(t *testing.T) {
	summary := &usecase.Summary{
		Totals: domain.Totals{
			TotalIncome:  decimal.NewFromInt(1000),
			TotalExpense: decimal.NewFromInt(450),
			Balance:      decimal.NewFromInt(550),
		},
		Breakdown: domain.CategoryBreakdown{
			domain.CategoryHousing: decimal.NewFromInt(400),
			domain.CategoryFood:    decimal.NewFromInt(50),
		},
		IncomeCount:  1,
		ExpenseCount: 2,
	}

	resp := SummaryFromUseCase(summary, "R$")

	if resp.Balance.Formatted != "R$ 550.00" {
		t.Fatalf("expected formatted balance, got %q", resp.Balance.Formatted)
	}
	if len(resp.Breakdown) != 2 {
		t.Fatalf("expected 2 breakdown rows, got %d", len(resp.Breakdown))
	}
	if resp.Breakdown[0].Category != "Food" || resp.Breakdown[1].Category != "Housing" {
		t.Fatalf("expected canonical order, got %+v", resp.Breakdown)
	}
	if resp.Breakdown[1].Formatted != "R$ 400.00" {
		t.Fatalf("expected formatted housing amount, got %q", resp.Breakdown[1].Formatted)
	}
	if resp.IncomeCount != 1 || resp.ExpenseCount != 2 {
		t.Fatalf("unexpected counts %+v", resp)
	}
}

func TestListExpensesFromDomain(t *testing.T) {
	now := time.Now()
	resp := ListExpensesFromDomain([]domain.ExpenseEntry{
		{ID: "e1", Description: "Rent", Category: domain.CategoryHousing, Amount: decimal.NewFromInt(400), CreatedAt: now},
		{ID: "e2", Description: "Lunch", Category: domain.CategoryFood, Amount: decimal.NewFromInt(50), CreatedAt: now},
	})

	if resp.Total != 2 {
		t.Fatalf("expected total 2, got %d", resp.Total)
	}
	if resp.Expenses[0].ID != "e1" || resp.Expenses[1].Category != "Food" {
		t.Fatalf("unexpected expenses %+v", resp.Expenses)
	}
}

func TestListIncomeFromDomain_Empty(t *testing.T) {
	resp := ListIncomeFromDomain(nil)

	if resp.Income == nil || len(resp.Income) != 0 || resp.Total != 0 {
		t.Fatalf("expected empty non-nil list, got %+v", resp)
	}
}

func TestTreemapFromUseCase(t *testing.T) {
	resp := TreemapFromUseCase([]usecase.TreemapNode{
		{Group: "Income", Name: "Total Income", Label: "Total Income\nR$ 0.00", Color: "#4CAF50", Amount: decimal.Zero},
	})

	if len(resp.Nodes) != 1 || resp.Nodes[0].Color != "#4CAF50" {
		t.Fatalf("unexpected nodes %+v", resp.Nodes)
	}
}

func TestCategoriesFromDomain(t *testing.T) {
	resp := CategoriesFromDomain(domain.Categories())

	want := []string{"Food", "Housing", "Transport", "Other"}
	if len(resp.Categories) != len(want) {
		t.Fatalf("expected %d categories, got %d", len(want), len(resp.Categories))
	}
	for i := range want {
		if resp.Categories[i] != want[i] {
			t.Fatalf("position %d: expected %s, got %s", i, want[i], resp.Categories[i])
		}
	}
}
