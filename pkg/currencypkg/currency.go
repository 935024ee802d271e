// Package currencypkg provides common currency related functionality for apps.
package currencypkg

// Constants for all supported currencies.
const (
	ARS = "ARS"
	USD = "USD"
	EUR = "EUR"
)

// DefaultCurrency is used when the caller does not specify one.
const DefaultCurrency = ARS

// SupportedCurrencies holds all the supported currencies.
var SupportedCurrencies = []string{
	ARS,
	USD,
	EUR,
}

// IsSupportedCurrency returns true if the currency is supported.
func IsSupportedCurrency(currency string) bool {
	for _, c := range SupportedCurrencies {
		if c == currency {
			return true
		}
	}

	return false
}
