package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iho/finledger/internal/adapter/http/dto"
)

type styles struct {
	Title    lipgloss.Style
	Label    lipgloss.Style
	Income   lipgloss.Style
	Expense  lipgloss.Style
	Balance  lipgloss.Style
	Category lipgloss.Style
	Box      lipgloss.Style
}

func newStyles() styles {
	return styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#6C63FF")),
		Label:    lipgloss.NewStyle().Width(16),
		Income:   lipgloss.NewStyle().Foreground(lipgloss.Color("#4CAF50")),
		Expense:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5722")),
		Balance:  lipgloss.NewStyle().Bold(true),
		Category: lipgloss.NewStyle().Foreground(lipgloss.Color("#bbbbbb")).PaddingLeft(2).Width(18),
		Box:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2),
	}
}

func renderSummary(s *dto.SummaryResponse, st styles) string {
	totals := lipgloss.JoinVertical(lipgloss.Left,
		st.Label.Render("Total Income")+st.Income.Render(s.TotalIncome.Formatted),
		st.Label.Render("Total Expense")+st.Expense.Render(s.TotalExpense.Formatted),
		st.Label.Render("Final Balance")+st.Balance.Render(s.Balance.Formatted),
	)

	sections := []string{
		st.Title.Render("Financial Summary"),
		totals,
		fmt.Sprintf("%d income, %d expenses", s.IncomeCount, s.ExpenseCount),
	}

	if len(s.Breakdown) > 0 {
		rows := make([]string, 0, len(s.Breakdown)+1)
		rows = append(rows, st.Title.Render("Expenses by category"))
		for _, row := range s.Breakdown {
			rows = append(rows, st.Category.Render(row.Category)+st.Expense.Render(row.Formatted))
		}
		sections = append(sections, strings.Join(rows, "\n"))
	}

	return st.Box.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}
