// Package report reduces the in-memory order book into period summaries:
// refund application, yearly net totals, and monthly net totals for a
// selected year. All functions operate on the caller's order map; only
// ApplyRefunds mutates it.
package report

import (
	"log/slog"

	"github.com/spendlens/spendlens/internal/ledger"
)

// ApplyRefunds adds each summed refund amount to the matching order's
// refund accumulator, in place.
//
// Refunds whose order ID has no matching order are dropped; the drop count
// is logged at debug level for operators but carries no other signal.
//
// ApplyRefunds is additive, not idempotent: applying the same refund map
// twice double-counts. Callers must invoke it at most once per refund
// source per order set.
func ApplyRefunds(orders map[string]*ledger.Order, refunds map[string]float64) {
	unmatched := 0
	for orderID, amount := range refunds {
		order, exists := orders[orderID]
		if !exists {
			unmatched++
			continue
		}
		order.Refund += amount
	}

	if unmatched > 0 {
		slog.Debug("dropped refunds with no matching order", "count", unmatched)
	}
}

// YearlyTotals groups orders by the calendar year of their order date and
// sums the net amount per year. Years with no orders are absent from the
// result.
func YearlyTotals(orders map[string]*ledger.Order) map[int]float64 {
	totals := make(map[int]float64)
	for _, order := range orders {
		totals[order.Date.Year()] += order.Net()
	}
	return totals
}

// MonthlyTotalsForYear filters orders to the given year and sums net
// amounts by month (1-12). The result is empty when no order falls in the
// year; callers must treat that as "no data" and skip any visualization.
func MonthlyTotalsForYear(orders map[string]*ledger.Order, year int) map[int]float64 {
	totals := make(map[int]float64)
	for _, order := range orders {
		if order.Date.Year() != year {
			continue
		}
		totals[int(order.Date.Month())] += order.Net()
	}
	return totals
}
