package tabular

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestReadCSVHeaderKeyedRows(t *testing.T) {
	input := "Order ID,Order Date,Shipment Item Subtotal\n" +
		"111-001,2024-03-01T10:00:00Z,100.00\n" +
		"111-002,2024-07-05T09:30:00Z,\"1,250.00\"\n"

	rows, err := readCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("readCSV returned error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0]["Order ID"] != "111-001" {
		t.Errorf("Order ID = %q, want 111-001", rows[0]["Order ID"])
	}
	if rows[1]["Shipment Item Subtotal"] != "1,250.00" {
		t.Errorf("quoted subtotal = %q, want 1,250.00", rows[1]["Shipment Item Subtotal"])
	}
}

func TestReadCSVStripsBOM(t *testing.T) {
	input := "\uFEFFOrderID,AmountRefunded\n111-001,10.00\n"

	rows, err := readCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("readCSV returned error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	// The BOM must not leak into the first header name.
	if got := rows[0]["OrderID"]; got != "111-001" {
		t.Errorf("OrderID = %q, want 111-001", got)
	}
}

func TestReadCSVSkipsEmptyRowsAndPadsShortOnes(t *testing.T) {
	input := "A,B\n1,2\n\n,\n3\n"

	rows, err := readCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("readCSV returned error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2 (blank rows skipped)", len(rows))
	}
	if rows[1]["A"] != "3" || rows[1]["B"] != "" {
		t.Errorf("short row = %v, want A=3 B=empty", rows[1])
	}
}

func TestReadCSVEmptyFile(t *testing.T) {
	if _, err := readCSV(strings.NewReader("")); err == nil {
		t.Fatal("expected error for empty input")
	}
}

func TestReadMissingFile(t *testing.T) {
	if _, err := Read(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestReadXLSX(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "orders.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	records := [][]interface{}{
		{"Order ID", "Order Date", "Shipment Item Subtotal"},
		{"111-001", "2024-03-01T10:00:00Z", "100.00"},
	}
	for i, record := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow(sheet, cell, &record); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
	f.Close()

	rows, err := Read(path)
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if rows[0]["Order ID"] != "111-001" || rows[0]["Shipment Item Subtotal"] != "100.00" {
		t.Errorf("unexpected row: %v", rows[0])
	}
}

func TestReadDispatchesOnExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "refunds.csv")
	content := "OrderID,AmountRefunded\n111-001,5.00\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	rows, err := Read(path)
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	if len(rows) != 1 || rows[0]["AmountRefunded"] != "5.00" {
		t.Errorf("unexpected rows: %v", rows)
	}
}
