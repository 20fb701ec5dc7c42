package chart

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// BuildReportName expands a report file-name format into a concrete name.
//
// Placeholders:
//   {year}      - the reported year
//   {timestamp} - current timestamp (YYYYMMDD_HHMMSS)
//   {date}      - current date (YYYYMMDD)
//   {uuid}      - a random UUID
//
// An .xlsx extension is appended when the format does not already end in one.
func BuildReportName(format string, year int) string {
	now := time.Now()

	replacements := map[string]string{
		"{year}":      strconv.Itoa(year),
		"{timestamp}": now.Format("20060102_150405"),
		"{date}":      now.Format("20060102"),
		"{uuid}":      uuid.New().String(),
	}

	name := format
	for placeholder, value := range replacements {
		name = strings.ReplaceAll(name, placeholder, value)
	}

	if !strings.HasSuffix(strings.ToLower(name), ".xlsx") {
		name += ".xlsx"
	}
	return name
}
