// Package ledger holds the in-memory order book built from retail exports:
// the Order record itself plus the loaders that build the two independently
// keyed record sets (orders by ID, summed refunds by ID).
package ledger

import "time"

// Order is a single purchase transaction keyed by its order ID.
//
// The subtotal and date are fixed at first observation; exports list one row
// per shipment line item, so the same order ID can repeat and only the first
// row counts. Refund starts at zero and only grows as refund records are
// applied.
type Order struct {
	ID       string
	Date     time.Time
	Subtotal float64
	Refund   float64
}

// Net returns the order's subtotal minus accumulated refunds. The result is
// not clamped: over-refunded orders go negative.
func (o *Order) Net() float64 {
	return o.Subtotal - o.Refund
}
