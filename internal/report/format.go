package report

import (
	"fmt"
	"sort"
	"strings"
)

// SortedKeys returns the period keys of a totals map in ascending order.
func SortedKeys(totals map[int]float64) []int {
	keys := make([]int, 0, len(totals))
	for k := range totals {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// FormatAmount renders a net amount with a currency symbol, two decimal
// places and comma thousands separators, e.g. "$1,234.56" or "-$20.00".
func FormatAmount(symbol string, amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	s := fmt.Sprintf("%.2f", amount)
	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}

	return sign + symbol + b.String() + "." + fracPart
}
