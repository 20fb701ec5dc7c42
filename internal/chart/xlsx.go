package chart

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

const dataSheet = "Monthly Totals"

// ExportXLSX writes the monthly totals for a year to an XLSX workbook in
// dir: a two-column table (month, net amount) plus an embedded column chart.
// The file name is built from nameFormat (see BuildReportName) and the full
// path of the written file is returned.
func ExportXLSX(dir, nameFormat string, monthly map[int]float64, year int) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create reports directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), dataSheet); err != nil {
		return "", fmt.Errorf("failed to name sheet: %w", err)
	}

	header := []interface{}{"Month", "Net Amount"}
	if err := f.SetSheetRow(dataSheet, "A1", &header); err != nil {
		return "", fmt.Errorf("failed to write header: %w", err)
	}
	for m := 1; m <= 12; m++ {
		row := []interface{}{monthLabels[m-1], monthly[m]}
		cell, err := excelize.CoordinatesToCellName(1, m+1)
		if err != nil {
			return "", err
		}
		if err := f.SetSheetRow(dataSheet, cell, &row); err != nil {
			return "", fmt.Errorf("failed to write month row: %w", err)
		}
	}

	chart := &excelize.Chart{
		Type: excelize.Col,
		Series: []excelize.ChartSeries{
			{
				Name:       fmt.Sprintf("'%s'!$B$1", dataSheet),
				Categories: fmt.Sprintf("'%s'!$A$2:$A$13", dataSheet),
				Values:     fmt.Sprintf("'%s'!$B$2:$B$13", dataSheet),
			},
		},
		Title: []excelize.RichTextRun{
			{Text: fmt.Sprintf("Net Spend by Month — %d", year)},
		},
	}
	if err := f.AddChart(dataSheet, "D2", chart); err != nil {
		return "", fmt.Errorf("failed to add chart: %w", err)
	}

	path := filepath.Join(dir, BuildReportName(nameFormat, year))
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("failed to save report: %w", err)
	}
	return path, nil
}
