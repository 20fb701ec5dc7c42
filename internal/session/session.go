// Package session drives the interactive menu over a loaded order history.
//
// All mutable session state lives on the Session struct and is threaded
// through each menu action explicitly; the reconciliation core stays free of
// UI concerns. Input and output are injected so the loop is testable.
package session

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spendlens/spendlens/internal/chart"
	"github.com/spendlens/spendlens/internal/config"
	"github.com/spendlens/spendlens/internal/ledger"
	"github.com/spendlens/spendlens/internal/report"
)

// Session holds the state of one interactive run: the order book and
// whether refunds have been folded into it yet.
type Session struct {
	Orders         map[string]*ledger.Order
	RefundsApplied bool

	cfg    *config.Config
	logger *slog.Logger
	in     *bufio.Scanner
	out    io.Writer
}

// New builds a session over an already loaded, non-empty order map.
func New(cfg *config.Config, logger *slog.Logger, orders map[string]*ledger.Order, in io.Reader, out io.Writer) *Session {
	return &Session{
		Orders: orders,
		cfg:    cfg,
		logger: logger,
		in:     bufio.NewScanner(in),
		out:    out,
	}
}

// Run executes the menu loop until the user quits or input ends.
func (s *Session) Run() error {
	for {
		s.printMenu()

		choice, ok := s.prompt("Select an option: ")
		if !ok {
			// Input closed (ctrl-d, piped input exhausted); leave quietly.
			fmt.Fprintln(s.out, "Goodbye.")
			return nil
		}

		switch choice {
		case "1":
			s.showYearlyTotals()
		case "2":
			s.showMonthlyChart()
		case "3":
			s.loadRefunds()
		case "4":
			s.exportReport()
		case "5":
			fmt.Fprintln(s.out, "Goodbye.")
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid selection.")
		}
	}
}

func (s *Session) printMenu() {
	fmt.Fprintln(s.out, "\n=== SpendLens ===")
	fmt.Fprintln(s.out, "1) View yearly totals")
	fmt.Fprintln(s.out, "2) View monthly chart for a year")
	fmt.Fprintln(s.out, "3) Load refunds file")
	fmt.Fprintln(s.out, "4) Export monthly report (XLSX)")
	fmt.Fprintln(s.out, "5) Quit")
	if s.RefundsApplied {
		fmt.Fprintln(s.out, "   (refunds applied)")
	}
}

// prompt writes msg and reads one trimmed input line. ok is false when the
// input stream has ended.
func (s *Session) prompt(msg string) (line string, ok bool) {
	fmt.Fprint(s.out, msg)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

// promptYear asks for a four-digit year; ok is false for unusable input.
func (s *Session) promptYear() (int, bool) {
	raw, ok := s.prompt("Enter year (e.g. 2026): ")
	if !ok {
		return 0, false
	}
	year, err := strconv.Atoi(raw)
	if err != nil {
		fmt.Fprintln(s.out, "Invalid year.")
		return 0, false
	}
	return year, true
}

func (s *Session) showYearlyTotals() {
	totals := report.YearlyTotals(s.Orders)

	heading := "\nYearly totals"
	if s.RefundsApplied {
		heading += " (net with refunds)"
	}
	fmt.Fprintln(s.out, heading+":")

	for _, year := range report.SortedKeys(totals) {
		fmt.Fprintf(s.out, "%d: %s\n", year, report.FormatAmount(s.cfg.CurrencySymbol, totals[year]))
	}
}

func (s *Session) showMonthlyChart() {
	year, ok := s.promptYear()
	if !ok {
		return
	}

	monthly := report.MonthlyTotalsForYear(s.Orders, year)
	if len(monthly) == 0 {
		fmt.Fprintf(s.out, "No data found for %d.\n", year)
		return
	}

	chart.RenderBars(s.out, monthly, year, s.cfg.CurrencySymbol)
}

// loadRefunds reads a refunds export and folds it into the order book.
// ApplyRefunds double-counts on repeat application, so a second load in the
// same session is refused up front. Load failures are reported and the
// session continues.
func (s *Session) loadRefunds() {
	if s.RefundsApplied {
		fmt.Fprintln(s.out, "Refunds have already been applied this session.")
		return
	}

	msg := "Enter refunds file path: "
	if s.cfg.RefundsPath != "" {
		msg = fmt.Sprintf("Enter refunds file path [%s]: ", s.cfg.RefundsPath)
	}
	path, ok := s.prompt(msg)
	if !ok {
		return
	}
	if path == "" {
		path = s.cfg.RefundsPath
	}
	if path == "" {
		fmt.Fprintln(s.out, "No refunds file given.")
		return
	}

	refunds, err := ledger.LoadRefundsFile(path)
	if err != nil {
		s.logger.Warn("refund load failed", "path", path, "error", err)
		fmt.Fprintf(s.out, "Failed to load refunds file: %v\n", err)
		return
	}

	report.ApplyRefunds(s.Orders, refunds)
	s.RefundsApplied = true
	fmt.Fprintf(s.out, "Loaded refunds for %d orders.\n", len(refunds))
}

func (s *Session) exportReport() {
	year, ok := s.promptYear()
	if !ok {
		return
	}

	monthly := report.MonthlyTotalsForYear(s.Orders, year)
	if len(monthly) == 0 {
		fmt.Fprintf(s.out, "No data found for %d.\n", year)
		return
	}

	path, err := chart.ExportXLSX(s.cfg.ReportsDir, s.cfg.ReportNameFormat, monthly, year)
	if err != nil {
		s.logger.Error("report export failed", "year", year, "error", err)
		fmt.Fprintf(s.out, "Failed to export report: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "Report written to %s\n", path)
}
