// Package chart renders monthly net-spend totals, either as a bar chart in
// the terminal or as an XLSX workbook with an embedded column chart.
//
// Both renderers accept the aggregator's contract as given: month keys are a
// subset of 1..12 and values are finite. Months absent from the map are drawn
// as zero so the shape of the year stays readable.
package chart

import (
	"fmt"
	"io"
	"strings"

	"github.com/spendlens/spendlens/internal/report"
)

var monthLabels = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// barWidth is the width of the longest terminal bar in characters.
const barWidth = 50

// RenderBars writes a horizontal bar chart of monthly totals to w. Bars are
// scaled to the largest absolute month value; negative months (refunds
// exceeding purchases) are marked but drawn unscaled at minimum width.
func RenderBars(w io.Writer, monthly map[int]float64, year int, currencySymbol string) {
	fmt.Fprintf(w, "\nNet spend by month — %d\n\n", year)

	max := 0.0
	for _, v := range monthly {
		if abs := absVal(v); abs > max {
			max = abs
		}
	}

	for m := 1; m <= 12; m++ {
		value := monthly[m]

		width := 0
		if max > 0 {
			width = int(absVal(value) / max * barWidth)
		}
		if value != 0 && width == 0 {
			width = 1
		}

		fmt.Fprintf(w, "%s  %-*s %12s\n",
			monthLabels[m-1],
			barWidth, strings.Repeat("█", width),
			report.FormatAmount(currencySymbol, value))
	}
	fmt.Fprintln(w)
}

func absVal(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
