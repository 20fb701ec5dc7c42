// =============================================================================
// SpendLens - Report Command
// =============================================================================
//
// The 'report' command is the non-interactive path: load orders, optionally
// fold in a refunds export, print yearly totals, and, when a year is given,
// print that year's monthly breakdown with an optional XLSX export.
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/spendlens/spendlens/internal/chart"
	"github.com/spendlens/spendlens/internal/ledger"
	"github.com/spendlens/spendlens/internal/report"
)

var (
	// reportOrdersPath and reportRefundsPath override the configured export
	// locations for this invocation.
	reportOrdersPath  string
	reportRefundsPath string

	// reportYear selects a monthly breakdown; 0 means yearly totals only.
	reportYear int

	// exportXLSX additionally writes the monthly chart workbook.
	exportXLSX bool
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print net-spend totals without the interactive menu",
	Long: `The report command prints yearly net-spend totals from an order-history
export. With --refunds, refund amounts are reconciled into the totals
first. With --year, the monthly breakdown for that year is printed as a
bar chart, and --xlsx additionally writes it as an XLSX report with an
embedded column chart.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runReport()
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringVar(&reportOrdersPath, "orders", "", "Path to the order-history export (.csv or .xlsx)")
	reportCmd.Flags().StringVar(&reportRefundsPath, "refunds", "", "Path to the refunds export to reconcile")
	reportCmd.Flags().IntVar(&reportYear, "year", 0, "Year for the monthly breakdown")
	reportCmd.Flags().BoolVar(&exportXLSX, "xlsx", false, "Export the monthly breakdown as an XLSX report (requires --year)")
}

func runReport() error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}

	if exportXLSX && reportYear == 0 {
		return fmt.Errorf("--xlsx requires --year")
	}

	path := reportOrdersPath
	if path == "" {
		path = cfg.OrdersPath
	}
	if path == "" {
		return fmt.Errorf("no orders file: pass --orders or set orders_path in %s", cfgFile)
	}

	orders, err := ledger.LoadOrdersFile(path)
	if err != nil {
		return err
	}
	if len(orders) == 0 {
		return fmt.Errorf("no valid order data found in %s", path)
	}
	logger.Info("orders loaded", "path", path, "orders", len(orders))

	refundsPath := reportRefundsPath
	if refundsPath == "" {
		refundsPath = cfg.RefundsPath
	}
	refundsApplied := false
	if refundsPath != "" {
		refunds, err := ledger.LoadRefundsFile(refundsPath)
		if err != nil {
			return err
		}
		report.ApplyRefunds(orders, refunds)
		refundsApplied = true
		logger.Info("refunds applied", "path", refundsPath, "refunds", len(refunds))
	}

	heading := "Yearly totals"
	if refundsApplied {
		heading += " (net with refunds)"
	}
	fmt.Println(heading + ":")

	totals := report.YearlyTotals(orders)
	for _, year := range report.SortedKeys(totals) {
		fmt.Printf("%d: %s\n", year, report.FormatAmount(cfg.CurrencySymbol, totals[year]))
	}

	if reportYear == 0 {
		return nil
	}

	monthly := report.MonthlyTotalsForYear(orders, reportYear)
	if len(monthly) == 0 {
		return fmt.Errorf("no data found for %d", reportYear)
	}
	chart.RenderBars(os.Stdout, monthly, reportYear, cfg.CurrencySymbol)

	if exportXLSX {
		out, err := chart.ExportXLSX(cfg.ReportsDir, cfg.ReportNameFormat, monthly, reportYear)
		if err != nil {
			return err
		}
		fmt.Printf("Report written to %s\n", out)
	}

	return nil
}
