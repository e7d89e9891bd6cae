package main

import (
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/iho/finledger/internal/adapter/http/dto"
	"github.com/iho/finledger/internal/usecase"
)

var errNoSession = errors.New("no session: pass --session or set FINLEDGER_SESSION")

func (o *options) requireSession() (string, error) {
	if o.sessionID == "" {
		return "", errNoSession
	}
	return o.sessionID, nil
}

func sessionCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Session operations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "new",
		Short: "Start a new session and print its ID",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.client().startSession(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s.ID)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "end",
		Short: "End the session and discard its ledger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := opts.requireSession()
			if err != nil {
				return err
			}
			if err := opts.client().endSession(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "session %s ended\n", id)
			return nil
		},
	})

	return cmd
}

func incomeCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "income",
		Short: "Income operations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add <description> <amount>",
		Short: "Record an income",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := opts.requireSession()
			if err != nil {
				return err
			}
			amount, err := decimal.NewFromString(args[1])
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[1], err)
			}

			entry, err := opts.client().addIncome(cmd.Context(), id, dto.CreateIncomeRequest{
				Description: args[0],
				Amount:      amount,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "recorded income %s: %s %s\n", entry.ID, entry.Description, entry.Amount.StringFixed(2))
			return nil
		},
	})

	return cmd
}

func expenseCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expense",
		Short: "Expense operations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add <description> <amount> <category>",
		Short: "Record an expense (Food, Housing, Transport, Other)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := opts.requireSession()
			if err != nil {
				return err
			}
			amount, err := decimal.NewFromString(args[1])
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[1], err)
			}

			entry, err := opts.client().addExpense(cmd.Context(), id, dto.CreateExpenseRequest{
				Description: args[0],
				Amount:      amount,
				Category:    args[2],
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "recorded expense %s: %s %s (%s)\n", entry.ID, entry.Description, entry.Amount.StringFixed(2), entry.Category)
			return nil
		},
	})

	return cmd
}

func summaryCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show totals and the expense breakdown",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := opts.requireSession()
			if err != nil {
				return err
			}
			s, err := opts.client().summary(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderSummary(s, newStyles()))
			return nil
		},
	}
}

func reportCmd(opts *options) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Download the spreadsheet report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := opts.requireSession()
			if err != nil {
				return err
			}
			content, filename, err := opts.client().report(cmd.Context(), id)
			if err != nil {
				return err
			}

			path := out
			if path == "" {
				path = filename
			}
			if err := os.WriteFile(path, content, 0o644); err != nil {
				return fmt.Errorf("write report: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "report written to %s (%d bytes)\n", path, len(content))
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Output path (defaults to the server-suggested filename)")
	return cmd
}

func categoriesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List expense categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cats, err := opts.client().categories(cmd.Context())
			if err != nil {
				return err
			}
			for _, c := range cats.Categories {
				fmt.Fprintln(cmd.OutOrStdout(), c)
			}
			return nil
		},
	}
}

// attachmentFilename returns the base name of the filename parameter of a
// Content-Disposition header, or the default report filename. Directory parts
// are dropped so a report is always written to the working directory.
func attachmentFilename(header string) string {
	_, params, err := mime.ParseMediaType(header)
	if err != nil || params["filename"] == "" {
		return usecase.DefaultReportFilename
	}

	name := filepath.Base(params["filename"])
	switch name {
	case ".", "..", string(filepath.Separator):
		return usecase.DefaultReportFilename
	}
	return name
}
