// =============================================================================
// SpendLens - Analyze Command
// =============================================================================
//
// The 'analyze' command loads an order-history export and starts the
// interactive menu session: yearly totals, monthly charts, refund loading
// and XLSX report export.
//
// The orders file is required up front and an export with zero valid order
// rows ends the command with an error; every other failure (bad refunds
// file, unwritable report) is reported inside the session, which continues.
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/spendlens/spendlens/internal/ledger"
	"github.com/spendlens/spendlens/internal/session"
)

// ordersPath is the order-history export to analyze; falls back to the
// configured orders_path when the flag is not given.
var ordersPath string

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Interactively explore net spend from an order-history export",
	Long: `The analyze command loads the order-history export and opens an
interactive menu. From there you can list yearly net totals, draw a
monthly bar chart for any year, fold a refunds export into the totals,
and export a monthly XLSX report.

Refunds can be applied at most once per session: refund application is
additive, and applying the same refunds twice would double-count them.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runAnalyze()
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVar(
		&ordersPath,
		"orders",
		"",
		"Path to the order-history export (.csv or .xlsx)",
	)
}

func runAnalyze() error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}

	path := ordersPath
	if path == "" {
		path = cfg.OrdersPath
	}
	if path == "" {
		return fmt.Errorf("no orders file: pass --orders or set orders_path in %s", cfgFile)
	}

	fmt.Println("Loading order data...")
	orders, err := ledger.LoadOrdersFile(path)
	if err != nil {
		return err
	}
	if len(orders) == 0 {
		return fmt.Errorf("no valid order data found in %s", path)
	}
	logger.Info("orders loaded", "path", path, "orders", len(orders))

	return session.New(cfg, logger, orders, os.Stdin, os.Stdout).Run()
}
