// Package money normalizes the raw money and date strings found in retail
// order exports. Money parsing is deliberately lenient (exports routinely
// carry blank or malformed amount cells); date parsing is strict, because a
// row without a usable date cannot be bucketed into any reporting period.
package money

import (
	"strconv"
	"strings"
	"time"
)

// Layouts accepted for order dates, tried in order. Exports usually carry a
// full ISO-8601 timestamp; some older ones carry a bare date.
var dateLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Parse converts a raw currency cell into a float64.
//
// Empty or whitespace-only input reports ok=false rather than an error:
// an absent amount is an expected condition, not a failure. Surrounding
// whitespace is trimmed and comma thousands separators are removed before
// conversion. Any value that still fails to convert also reports ok=false;
// callers skip the row.
func Parse(raw string) (amount float64, ok bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}

	raw = strings.ReplaceAll(raw, ",", "")

	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return amount, true
}

// ParseDate converts a raw order-date cell into a time.Time.
//
// A trailing UTC designator is stripped first: the export's timestamps are
// treated as naive local datetimes, not timezone-aware instants. Unlike
// Parse, failure here is an error — the caller is expected to abort the
// load rather than bucket the order into a wrong period.
func ParseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimSuffix(raw, "Z")

	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
