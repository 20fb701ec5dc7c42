// =============================================================================
// SpendLens - Root Command
// =============================================================================
//
// Defines the base Cobra command that the subcommands attach to:
//
//   spendlens
//   ├── analyze   (interactive menu over a loaded order history)
//   ├── report    (one-shot yearly/monthly summary)
//   └── version
//
// The root command owns the global flags (--config, --verbose) and the
// shared startup work: loading configuration and wiring up logging.
//
// =============================================================================

package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/spendlens/spendlens/internal/config"
	"github.com/spendlens/spendlens/internal/logging"
)

// cfgFile holds the path to the configuration file, overridable via --config.
var cfgFile string

// verbose forces debug logging regardless of the configured level.
var verbose bool

var rootCmd = &cobra.Command{
	Use:   "spendlens",
	Short: "SpendLens - net-spend summaries from order-history exports",
	Long: `SpendLens aggregates e-commerce order-history and refund exports into
per-year and per-month net-spend summaries.

It reads the header-driven CSV or XLSX files produced by retail data
exports, reconciles refunds against orders by order ID, and reports net
totals grouped by calendar period, either interactively or as a one-shot
report with an optional XLSX bar chart.

Example Usage:
  spendlens analyze --orders Retail.OrderHistory.1.csv
  spendlens report --orders orders.csv --refunds refunds.csv
  spendlens report --orders orders.csv --year 2024 --xlsx`,

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute runs the root command. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the configuration file",
	)
	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}

// setup loads the configuration and initializes logging. Shared by the
// subcommands that do real work.
func setup() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, err
	}

	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}
	logger := logging.Setup(level, cfg.LogFormat)

	return cfg, logger, nil
}
