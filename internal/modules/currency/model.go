// README: USD-relative exchange rates and display symbols for supported currencies.
package currency

import "strings"

// Base is the currency every rate is expressed against.
const Base = "USD"

// DefaultRate applies to unknown currency codes.
const DefaultRate = 1.0

// DefaultSymbol is shown for unknown currency codes.
const DefaultSymbol = "$"

type Info struct {
	Code   string  `json:"code"`
	Rate   float64 `json:"rate"`
	Symbol string  `json:"symbol"`
}

func builtinRates() map[string]float64 {
	return map[string]float64{
		"USD": 1.0,
		"EUR": 0.85,
		"GBP": 0.73,
		"JPY": 110.0,
		"CAD": 1.25,
		"AUD": 1.35,
		"CNY": 6.45,
		"INR": 74.5,
	}
}

var symbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"CAD": "C$",
	"AUD": "A$",
	"CNY": "¥",
	"INR": "₹",
}

// Normalize upper-cases and trims a currency code.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Symbol returns the display symbol for code, or DefaultSymbol.
func Symbol(code string) string {
	if s, ok := symbols[Normalize(code)]; ok {
		return s
	}
	return DefaultSymbol
}
