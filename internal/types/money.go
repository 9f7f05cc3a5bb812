// README: Common money value object and rounding helpers used across modules.
package types

import (
	"math"
	"strconv"
)

type Money struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// Round rounds v to the given number of decimal places, halves away from zero.
func Round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

// Format renders m with a display symbol and two decimals.
func (m Money) Format(symbol string) string {
	return symbol + strconv.FormatFloat(m.Amount, 'f', 2, 64) + " " + m.Currency
}
