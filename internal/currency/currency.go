// Package currency formats monetary values for display. Stored values
// stay float64; formatting pins them to two decimal places.
package currency

import "github.com/shopspring/decimal"

const symbol = "$"

// Format renders an amount as "$123.45".
func Format(amount float64) string {
	return symbol + decimal.NewFromFloat(amount).StringFixed(2)
}
