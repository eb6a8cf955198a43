package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "wealth-planner",
	Short: "Time-value-of-money calculators for personal financial planning",
	Long: "Plan SIPs, withdrawals, retirement and life goals, either as an HTTP API " +
		"(wealth-planner serve) or one calculation at a time (wealth-planner calc).",
	SilenceUsage: true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
