package session

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spendlens/spendlens/internal/config"
	"github.com/spendlens/spendlens/internal/ledger"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		ReportsDir:       t.TempDir(),
		ReportNameFormat: "spend_{year}_{uuid}.xlsx",
		CurrencySymbol:   "$",
	}
}

func testOrders() map[string]*ledger.Order {
	return map[string]*ledger.Order{
		"A": {ID: "A", Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), Subtotal: 100},
		"B": {ID: "B", Date: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), Subtotal: 50},
		"C": {ID: "C", Date: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), Subtotal: 10},
	}
}

func run(t *testing.T, orders map[string]*ledger.Order, cfg *config.Config, input string) (*Session, string) {
	t.Helper()
	var out strings.Builder
	s := New(cfg, slog.Default(), orders, strings.NewReader(input), &out)
	if err := s.Run(); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	return s, out.String()
}

func TestYearlyTotalsListing(t *testing.T) {
	_, out := run(t, testOrders(), testConfig(t), "1\n5\n")

	if !strings.Contains(out, "Yearly totals:") {
		t.Errorf("missing yearly heading:\n%s", out)
	}
	if !strings.Contains(out, "2024: $150.00") || !strings.Contains(out, "2025: $10.00") {
		t.Errorf("missing yearly lines:\n%s", out)
	}
	// Ascending year order.
	if strings.Index(out, "2024:") > strings.Index(out, "2025:") {
		t.Errorf("years not sorted ascending:\n%s", out)
	}
}

func TestMonthlyChartNoData(t *testing.T) {
	_, out := run(t, testOrders(), testConfig(t), "2\n2026\n5\n")
	if !strings.Contains(out, "No data found for 2026.") {
		t.Errorf("missing no-data message:\n%s", out)
	}
}

func TestMonthlyChartInvalidYear(t *testing.T) {
	_, out := run(t, testOrders(), testConfig(t), "2\nsoon\n5\n")
	if !strings.Contains(out, "Invalid year.") {
		t.Errorf("missing invalid-year message:\n%s", out)
	}
}

func TestMonthlyChartRenders(t *testing.T) {
	_, out := run(t, testOrders(), testConfig(t), "2\n2024\n5\n")
	if !strings.Contains(out, "Net spend by month") || !strings.Contains(out, "Mar") {
		t.Errorf("missing chart output:\n%s", out)
	}
}

func TestLoadRefundsAndReapplyRefused(t *testing.T) {
	dir := t.TempDir()
	refundsPath := filepath.Join(dir, "refunds.csv")
	content := "OrderID,AmountRefunded\nB,20.00\nZZZ,5.00\n"
	if err := os.WriteFile(refundsPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	orders := testOrders()
	input := "3\n" + refundsPath + "\n1\n3\n5\n"
	s, out := run(t, orders, testConfig(t), input)

	if !strings.Contains(out, "Loaded refunds for 2 orders.") {
		t.Errorf("missing load confirmation:\n%s", out)
	}
	if orders["B"].Refund != 20 {
		t.Errorf("B refund = %v, want 20", orders["B"].Refund)
	}
	if !s.RefundsApplied {
		t.Error("RefundsApplied flag not set")
	}
	if !strings.Contains(out, "Yearly totals (net with refunds):") {
		t.Errorf("missing net-with-refunds marker:\n%s", out)
	}
	if !strings.Contains(out, "2024: $130.00") {
		t.Errorf("2024 total should reflect the refund:\n%s", out)
	}
	if !strings.Contains(out, "Refunds have already been applied this session.") {
		t.Errorf("second load should be refused:\n%s", out)
	}
}

func TestLoadRefundsFailureKeepsSessionRunning(t *testing.T) {
	input := "3\n/no/such/file.csv\n1\n5\n"
	s, out := run(t, testOrders(), testConfig(t), input)

	if !strings.Contains(out, "Failed to load refunds file:") {
		t.Errorf("missing failure message:\n%s", out)
	}
	if s.RefundsApplied {
		t.Error("failed load must not set RefundsApplied")
	}
	// The menu kept going: option 1 still produced totals.
	if !strings.Contains(out, "2024: $150.00") {
		t.Errorf("session should continue after failed load:\n%s", out)
	}
}

func TestExportReport(t *testing.T) {
	cfg := testConfig(t)
	_, out := run(t, testOrders(), cfg, "4\n2024\n5\n")

	if !strings.Contains(out, "Report written to ") {
		t.Fatalf("missing export confirmation:\n%s", out)
	}
	entries, err := os.ReadDir(cfg.ReportsDir)
	if err != nil {
		t.Fatalf("read reports dir: %v", err)
	}
	if len(entries) != 1 || !strings.HasSuffix(entries[0].Name(), ".xlsx") {
		t.Errorf("reports dir = %v, want one .xlsx file", entries)
	}
}

func TestInvalidSelection(t *testing.T) {
	_, out := run(t, testOrders(), testConfig(t), "9\n5\n")
	if !strings.Contains(out, "Invalid selection.") {
		t.Errorf("missing invalid-selection message:\n%s", out)
	}
}

func TestInputEOFEndsSession(t *testing.T) {
	_, out := run(t, testOrders(), testConfig(t), "")
	if !strings.Contains(out, "Goodbye.") {
		t.Errorf("EOF should end the session politely:\n%s", out)
	}
}
