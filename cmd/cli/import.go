package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/iho/finledger/internal/adapter/http/dto"
	"github.com/iho/finledger/internal/domain"
)

// importFile is the YAML layout accepted by the import command.
//
//	income:
//	  - description: Salary
//	    amount: "1000"
//	expenses:
//	  - description: Rent
//	    amount: "400"
//	    category: Housing
type importFile struct {
	Income   []importEntry `yaml:"income"`
	Expenses []importEntry `yaml:"expenses"`
}

type importEntry struct {
	Description string `yaml:"description"`
	Amount      string `yaml:"amount"`
	Category    string `yaml:"category,omitempty"`
}

// importPlan is a fully validated import ready to be sent.
type importPlan struct {
	income   []dto.CreateIncomeRequest
	expenses []dto.CreateExpenseRequest
}

// parseImport decodes and validates every entry so that nothing is sent
// when any entry is invalid.
func parseImport(r io.Reader) (*importPlan, error) {
	var f importFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("parse import file: %w", err)
	}

	plan := &importPlan{}
	for i, e := range f.Income {
		amount, err := validateImportEntry(e)
		if err != nil {
			return nil, fmt.Errorf("income[%d]: %w", i, err)
		}
		plan.income = append(plan.income, dto.CreateIncomeRequest{Description: e.Description, Amount: amount})
	}

	for i, e := range f.Expenses {
		amount, err := validateImportEntry(e)
		if err != nil {
			return nil, fmt.Errorf("expenses[%d]: %w", i, err)
		}
		category, err := domain.ParseCategory(e.Category)
		if err != nil {
			return nil, fmt.Errorf("expenses[%d]: %w", i, err)
		}
		plan.expenses = append(plan.expenses, dto.CreateExpenseRequest{
			Description: e.Description,
			Amount:      amount,
			Category:    category.String(),
		})
	}

	return plan, nil
}

func validateImportEntry(e importEntry) (decimal.Decimal, error) {
	if err := domain.ValidateDescription(e.Description); err != nil {
		return decimal.Zero, err
	}
	amount, err := decimal.NewFromString(e.Amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", domain.ErrInvalidAmount, e.Amount)
	}
	if err := domain.ValidateAmount(amount); err != nil {
		return decimal.Zero, err
	}
	return amount, nil
}

func (p *importPlan) send(ctx context.Context, c *apiClient, sessionID string) error {
	for i, req := range p.income {
		if _, err := c.addIncome(ctx, sessionID, req); err != nil {
			return fmt.Errorf("income[%d]: %w", i, err)
		}
	}
	for i, req := range p.expenses {
		if _, err := c.addExpense(ctx, sessionID, req); err != nil {
			return fmt.Errorf("expenses[%d]: %w", i, err)
		}
	}
	return nil
}

func importCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.yaml>",
		Short: "Record income and expenses from a YAML file",
		Long:  "Record income and expenses from a YAML file. A new session is started when --session is not given.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer file.Close()

			plan, err := parseImport(file)
			if err != nil {
				return err
			}

			client := opts.client()
			id := opts.sessionID
			if id == "" {
				s, err := client.startSession(cmd.Context())
				if err != nil {
					return err
				}
				id = s.ID
				fmt.Fprintf(cmd.OutOrStdout(), "started session %s\n", id)
			}

			if err := plan.send(cmd.Context(), client, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d income and %d expense entries into session %s\n",
				len(plan.income), len(plan.expenses), id)
			return nil
		},
	}
}
