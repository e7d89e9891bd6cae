// Package xlsx renders ledger reports as OpenXML spreadsheets.
package xlsx

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/iho/finledger/internal/domain"
	"github.com/iho/finledger/internal/usecase"
)

// Sheet names.
const (
	SheetSummary  = "Summary"
	SheetIncome   = "Income"
	SheetExpenses = "Expenses"
)

// Summary row labels, in sheet order.
const (
	LabelTotalIncome  = "Total Income"
	LabelTotalExpense = "Total Expense"
	LabelFinalBalance = "Final Balance"
)

// ChartTitle is the title of the column chart on the summary sheet.
const ChartTitle = "Financial Summary"

const (
	headerFill  = "#6C63FF"
	headerColor = "#FFFFFF"
	chartCell   = "D2"
)

// Exporter implements usecase.ReportRenderer with excelize.
type Exporter struct {
	currencySymbol string
}

// NewExporter creates an Exporter that formats amounts with currencySymbol.
func NewExporter(currencySymbol string) *Exporter {
	if currencySymbol == "" {
		currencySymbol = domain.DefaultCurrencySymbol
	}
	return &Exporter{currencySymbol: currencySymbol}
}

type styles struct {
	header   int
	currency int
	amount   int
}

// Render builds the workbook in memory and returns its bytes. Nothing is
// returned unless every sheet was written.
func (e *Exporter) Render(ctx context.Context, data usecase.ReportData) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	st, err := e.newStyles(f)
	if err != nil {
		return nil, fmt.Errorf("report: create styles: %w", err)
	}

	if err := e.writeSummary(f, st, data.Totals); err != nil {
		return nil, fmt.Errorf("report: summary sheet: %w", err)
	}

	if len(data.Income) > 0 {
		if err := writeIncome(f, st, data.Income); err != nil {
			return nil, fmt.Errorf("report: income sheet: %w", err)
		}
	}

	if len(data.Expenses) > 0 {
		if err := writeExpenses(f, st, data.Expenses); err != nil {
			return nil, fmt.Errorf("report: expenses sheet: %w", err)
		}
	}

	f.SetActiveSheet(0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("report: encode workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func (e *Exporter) newStyles(f *excelize.File) (styles, error) {
	var st styles
	var err error

	st.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: headerColor},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{headerFill}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return st, err
	}

	numFmt := fmt.Sprintf(`"%s "#,##0.00`, e.currencySymbol)

	st.currency, err = f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Bold: true},
		Alignment:    &excelize.Alignment{Horizontal: "center"},
		CustomNumFmt: &numFmt,
	})
	if err != nil {
		return st, err
	}

	st.amount, err = f.NewStyle(&excelize.Style{
		CustomNumFmt: &numFmt,
	})
	return st, err
}

func (e *Exporter) writeSummary(f *excelize.File, st styles, totals domain.Totals) error {
	// A new workbook starts with a single default sheet.
	if err := f.SetSheetName(f.GetSheetName(0), SheetSummary); err != nil {
		return err
	}

	rows := [][]any{
		{"Description", "Value"},
		{LabelTotalIncome, totals.TotalIncome},
		{LabelTotalExpense, totals.TotalExpense},
		{LabelFinalBalance, totals.Balance},
	}
	if err := writeRows(f, SheetSummary, rows); err != nil {
		return err
	}

	if err := f.SetColWidth(SheetSummary, "A", "A", 30); err != nil {
		return err
	}
	if err := f.SetColWidth(SheetSummary, "B", "B", 20); err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetSummary, "A1", "B1", st.header); err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetSummary, "B2", "B4", st.currency); err != nil {
		return err
	}

	return f.AddChart(SheetSummary, chartCell, &excelize.Chart{
		Type: excelize.Col,
		Series: []excelize.ChartSeries{
			{
				Name:       ChartTitle,
				Categories: fmt.Sprintf("%s!$A$2:$A$4", SheetSummary),
				Values:     fmt.Sprintf("%s!$B$2:$B$4", SheetSummary),
			},
		},
		Title:  []excelize.RichTextRun{{Text: ChartTitle}},
		Legend: excelize.ChartLegend{Position: "none"},
	})
}

func writeIncome(f *excelize.File, st styles, income []domain.IncomeEntry) error {
	if _, err := f.NewSheet(SheetIncome); err != nil {
		return err
	}

	rows := make([][]any, 0, len(income)+1)
	rows = append(rows, []any{"Description", "Amount"})
	for _, e := range income {
		rows = append(rows, []any{e.Description, e.Amount})
	}
	if err := writeRows(f, SheetIncome, rows); err != nil {
		return err
	}

	if err := f.SetColWidth(SheetIncome, "A", "A", 40); err != nil {
		return err
	}
	if err := f.SetColWidth(SheetIncome, "B", "B", 20); err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetIncome, "A1", "B1", st.header); err != nil {
		return err
	}
	return f.SetCellStyle(SheetIncome, "B2", fmt.Sprintf("B%d", len(rows)), st.amount)
}

func writeExpenses(f *excelize.File, st styles, expenses []domain.ExpenseEntry) error {
	if _, err := f.NewSheet(SheetExpenses); err != nil {
		return err
	}

	rows := make([][]any, 0, len(expenses)+1)
	rows = append(rows, []any{"Description", "Amount", "Category"})
	for _, e := range expenses {
		rows = append(rows, []any{e.Description, e.Amount, e.Category.String()})
	}
	if err := writeRows(f, SheetExpenses, rows); err != nil {
		return err
	}

	if err := f.SetColWidth(SheetExpenses, "A", "A", 40); err != nil {
		return err
	}
	if err := f.SetColWidth(SheetExpenses, "B", "C", 20); err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetExpenses, "A1", "C1", st.header); err != nil {
		return err
	}
	return f.SetCellStyle(SheetExpenses, "B2", fmt.Sprintf("B%d", len(rows)), st.amount)
}

// writeRows writes rows from A1 down. Decimal amounts are stored as their
// exact decimal text in numeric cells, so no precision is lost to float64.
func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		for j, v := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return err
			}
			if d, ok := v.(decimal.Decimal); ok {
				err = f.SetCellDefault(sheet, cell, d.String())
			} else {
				err = f.SetCellValue(sheet, cell, v)
			}
			if err != nil {
				return err
			}
		}
	}
	return nil
}
