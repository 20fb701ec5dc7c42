package tabular

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// utf8BOM is the byte-order marker some export tools prepend to CSV files.
const utf8BOM = "\uFEFF"

// ReadCSV reads a CSV export into header-keyed rows.
//
// The reader is configured for real-world export data: lazy quotes, variable
// field counts per record, and leading whitespace trimming. A UTF-8 BOM, if
// present, is stripped before the header is read.
func ReadCSV(path string) ([]Row, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return readCSV(file)
}

func readCSV(r io.Reader) ([]Row, error) {
	br := bufio.NewReader(r)
	if err := skipBOM(br); err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	reader := csv.NewReader(br)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("CSV file is empty")
	}

	return rowsFromRecords(records)
}

// skipBOM consumes a UTF-8 byte-order marker if the stream begins with one.
func skipBOM(br *bufio.Reader) error {
	peek, err := br.Peek(len(utf8BOM))
	if err != nil {
		if err == io.EOF {
			return nil // shorter than a BOM, let the CSV reader report emptiness
		}
		return err
	}
	if strings.HasPrefix(string(peek), utf8BOM) {
		if _, err := br.Discard(len(utf8BOM)); err != nil {
			return err
		}
	}
	return nil
}
