package ledger

import (
	"fmt"

	"github.com/spendlens/spendlens/internal/money"
	"github.com/spendlens/spendlens/internal/tabular"
)

// Column headers in the order-history export.
const (
	colOrderID   = "Order ID"
	colOrderDate = "Order Date"
	colSubtotal  = "Shipment Item Subtotal"
)

// Column headers in the refunds export. Note the differing convention from
// the orders file: no spaces.
const (
	colRefundOrderID = "OrderID"
	colRefundAmount  = "AmountRefunded"
)

// LoadOrders builds the order map from order-history rows.
//
// Policy per row:
//   - order ID already seen: skipped (first-seen-wins; repeated IDs are the
//     normal multi-line-item case, not an error)
//   - subtotal missing or malformed: row skipped entirely, no partial order
//   - date malformed: the whole load fails
func LoadOrders(rows []tabular.Row) (map[string]*Order, error) {
	orders := make(map[string]*Order)

	for _, row := range rows {
		orderID := row[colOrderID]
		if orderID == "" {
			continue
		}
		if _, seen := orders[orderID]; seen {
			continue
		}

		subtotal, ok := money.Parse(row[colSubtotal])
		if !ok {
			continue
		}

		date, err := money.ParseDate(row[colOrderDate])
		if err != nil {
			return nil, fmt.Errorf("order %s has invalid order date %q: %w", orderID, row[colOrderDate], err)
		}

		orders[orderID] = &Order{
			ID:       orderID,
			Date:     date,
			Subtotal: subtotal,
		}
	}

	return orders, nil
}

// LoadOrdersFile reads the orders export at path and builds the order map.
func LoadOrdersFile(path string) (map[string]*Order, error) {
	rows, err := tabular.Read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}
	return LoadOrders(rows)
}

// LoadRefunds builds the per-order refund totals from refund rows.
//
// Refund loading is order-agnostic: amounts are summed by order ID with no
// cross-validation against any order set. Rows with a missing or malformed
// amount are skipped.
func LoadRefunds(rows []tabular.Row) map[string]float64 {
	refunds := make(map[string]float64)

	for _, row := range rows {
		orderID := row[colRefundOrderID]
		if orderID == "" {
			continue
		}

		amount, ok := money.Parse(row[colRefundAmount])
		if !ok {
			continue
		}

		refunds[orderID] = refunds[orderID] + amount
	}

	return refunds
}

// LoadRefundsFile reads the refunds export at path and sums refunds by
// order ID.
func LoadRefundsFile(path string) (map[string]float64, error) {
	rows, err := tabular.Read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load refunds: %w", err)
	}
	return LoadRefunds(rows), nil
}
