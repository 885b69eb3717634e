// Package currency resolves human-readable country names to ISO 4217
// currency codes using a static lookup table, so conversion behavior stays
// deterministic and testable without an extra upstream dependency.
package currency

import (
	"errors"
	"strings"
)

var ErrUnknown = errors.New("unknown country or currency")

// countryCodes maps lower-cased country names to the ISO code of their
// primary currency. Covers the currencies the rate provider quotes.
var countryCodes = map[string]string{
	"australia":      "AUD",
	"austria":        "EUR",
	"belgium":        "EUR",
	"brazil":         "BRL",
	"bulgaria":       "BGN",
	"canada":         "CAD",
	"china":          "CNY",
	"czech republic": "CZK",
	"czechia":        "CZK",
	"denmark":        "DKK",
	"finland":        "EUR",
	"france":         "EUR",
	"germany":        "EUR",
	"greece":         "EUR",
	"hong kong":      "HKD",
	"hungary":        "HUF",
	"iceland":        "ISK",
	"india":          "INR",
	"indonesia":      "IDR",
	"ireland":        "EUR",
	"israel":         "ILS",
	"italy":          "EUR",
	"japan":          "JPY",
	"malaysia":       "MYR",
	"mexico":         "MXN",
	"netherlands":    "EUR",
	"new zealand":    "NZD",
	"norway":         "NOK",
	"philippines":    "PHP",
	"poland":         "PLN",
	"portugal":       "EUR",
	"romania":        "RON",
	"singapore":      "SGD",
	"south africa":   "ZAR",
	"south korea":    "KRW",
	"spain":          "EUR",
	"sweden":         "SEK",
	"switzerland":    "CHF",
	"thailand":       "THB",
	"turkey":         "TRY",
	"united kingdom": "GBP",
	"united states":  "USD",
}

// Resolve maps a country name to its ISO currency code. A bare 3-letter
// code passes through unchanged (uppercased), so clients may send either
// "Japan" or "JPY". Matching is case-insensitive and ignores surrounding
// whitespace.
func Resolve(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if code, ok := countryCodes[strings.ToLower(trimmed)]; ok {
		return code, nil
	}
	if isCode(trimmed) {
		return strings.ToUpper(trimmed), nil
	}
	return "", ErrUnknown
}

func isCode(s string) bool {
	if len(s) != 3 {
		return false
	}
	for _, c := range s {
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return true
}
