package staticdata

import "github.com/SscSPs/user_profile_aggregator/internal/core/domain"

// rates is a snapshot of USD and KZT values per unit of each currency.
var rates = map[string]domain.ExchangeQuote{
	"USD": {BaseCurrency: "USD", ToUSD: "1.00", ToKZT: "480.00"},
	"EUR": {BaseCurrency: "EUR", ToUSD: "1.08", ToKZT: "518.40"},
	"GBP": {BaseCurrency: "GBP", ToUSD: "1.27", ToKZT: "609.60"},
	"CHF": {BaseCurrency: "CHF", ToUSD: "1.13", ToKZT: "542.40"},
	"CAD": {BaseCurrency: "CAD", ToUSD: "0.7300", ToKZT: "350.40"},
	"AUD": {BaseCurrency: "AUD", ToUSD: "0.6600", ToKZT: "316.80"},
	"NZD": {BaseCurrency: "NZD", ToUSD: "0.6100", ToKZT: "292.80"},
	"BRL": {BaseCurrency: "BRL", ToUSD: "0.1800", ToKZT: "86.40"},
	"DKK": {BaseCurrency: "DKK", ToUSD: "0.1450", ToKZT: "69.60"},
	"NOK": {BaseCurrency: "NOK", ToUSD: "0.0940", ToKZT: "45.12"},
	"INR": {BaseCurrency: "INR", ToUSD: "0.0120", ToKZT: "5.76"},
	"IRR": {BaseCurrency: "IRR", ToUSD: "0.0000", ToKZT: "0.0114"},
	"MXN": {BaseCurrency: "MXN", ToUSD: "0.0580", ToKZT: "27.84"},
	"RSD": {BaseCurrency: "RSD", ToUSD: "0.0092", ToKZT: "4.42"},
	"TRY": {BaseCurrency: "TRY", ToUSD: "0.0310", ToKZT: "14.88"},
	"UAH": {BaseCurrency: "UAH", ToUSD: "0.0240", ToKZT: "11.52"},
	"JPY": {BaseCurrency: "JPY", ToUSD: "0.0067", ToKZT: "3.22"},
	"CNY": {BaseCurrency: "CNY", ToUSD: "0.1400", ToKZT: "66.24"},
	"RUB": {BaseCurrency: "RUB", ToUSD: "0.0110", ToKZT: "5.28"},
	"KZT": {BaseCurrency: "KZT", ToUSD: "0.0021", ToKZT: "1.00"},
}

// LookupRate returns the static quote for a currency code.
func LookupRate(code string) (domain.ExchangeQuote, bool) {
	q, ok := rates[code]
	return q, ok
}

// RateByCurrency returns the static quote for code, or the USD quote.
func RateByCurrency(code string) domain.ExchangeQuote {
	if q, ok := rates[code]; ok {
		return q
	}
	return rates[domain.DefaultCurrencyCode]
}
