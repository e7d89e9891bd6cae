package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type options struct {
	baseURL   string
	timeout   time.Duration
	sessionID string
}

func (o *options) client() *apiClient {
	return newAPIClient(o.baseURL, o.timeout)
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "finledger-cli",
		Short:         "finledger CLI tool",
		Long:          `A command line interface for recording income and expenses against a finledger server.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.baseURL, "url", envOr("FINLEDGER_URL", "http://localhost:8080"), "Base URL of the finledger API")
	rootCmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 10*time.Second, "Request timeout")
	rootCmd.PersistentFlags().StringVarP(&opts.sessionID, "session", "s", os.Getenv("FINLEDGER_SESSION"), "Session ID (or FINLEDGER_SESSION)")

	rootCmd.AddCommand(
		sessionCmd(opts),
		incomeCmd(opts),
		expenseCmd(opts),
		summaryCmd(opts),
		reportCmd(opts),
		importCmd(opts),
		categoriesCmd(opts),
	)

	return rootCmd
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
