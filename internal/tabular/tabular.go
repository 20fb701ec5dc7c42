// =============================================================================
// SpendLens - Tabular File Reading
// =============================================================================
//
// This package isolates the mechanics of reading header-driven tabular
// exports. Retail order-history exports arrive either as CSV (UTF-8,
// sometimes with a byte-order marker) or as XLSX workbooks; both are exposed
// through the same contract: a slice of rows, each row a map from column
// header to trimmed cell value.
//
// =============================================================================

package tabular

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Row is a single data row keyed by column header.
type Row map[string]string

// Read parses the file at path, choosing the reader by extension.
// Anything that is not .xlsx is treated as CSV.
func Read(path string) ([]Row, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return ReadXLSX(path)
	}
	return ReadCSV(path)
}

// rowsFromRecords converts raw records into header-keyed rows. The first
// record is the header; later records are padded with empty strings when a
// trailing column is missing, and rows with no content at all are dropped.
func rowsFromRecords(records [][]string) ([]Row, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("file has no header row")
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = strings.TrimSpace(h)
	}

	rows := make([]Row, 0, len(records)-1)
	for _, record := range records[1:] {
		if isEmptyRecord(record) {
			continue
		}

		row := make(Row, len(headers))
		for i, header := range headers {
			if header == "" {
				continue
			}
			if i < len(record) {
				row[header] = strings.TrimSpace(record[i])
			} else {
				row[header] = ""
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func isEmptyRecord(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
