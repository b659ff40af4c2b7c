package domain

// CurrencyCode identifies one of the currencies the application supports.
type CurrencyCode string

const (
	CurrencyUSD CurrencyCode = "USD"
	CurrencyMXN CurrencyCode = "MXN"
	CurrencyCOP CurrencyCode = "COP"
	CurrencyEUR CurrencyCode = "EUR"
	CurrencyGBP CurrencyCode = "GBP"
)

// SupportedCurrencies is the closed set of currencies accounts may use.
var SupportedCurrencies = map[CurrencyCode]bool{
	CurrencyUSD: true,
	CurrencyMXN: true,
	CurrencyCOP: true,
	CurrencyEUR: true,
	CurrencyGBP: true,
}

// IsSupportedCurrency reports whether code belongs to the supported set.
func IsSupportedCurrency(code CurrencyCode) bool {
	return SupportedCurrencies[code]
}
