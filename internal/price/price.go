// Package price formats monetary amounts for display.
package price

import "github.com/shopspring/decimal"

// Format renders an amount as a dollar string with two decimals, e.g. "$12.50".
func Format(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

// FormatFloat renders a float amount the same way. Catalog prices arrive
// as JSON numbers, so most call sites hold a float64.
func FormatFloat(v float64) string {
	return Format(decimal.NewFromFloat(v))
}
