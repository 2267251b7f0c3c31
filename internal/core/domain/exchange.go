package domain

// SecondaryCurrencyCode is the fixed second currency every quote is expressed in.
const SecondaryCurrencyCode = "KZT"

// ExchangeQuote holds the value of one unit of BaseCurrency in USD and in KZT.
// ToUSD and ToKZT are fixed-point decimal strings or NotAvailable, never empty.
type ExchangeQuote struct {
	BaseCurrency string `json:"baseCurrency"`
	ToUSD        string `json:"toUSD"`
	ToKZT        string `json:"toKZT"`
}
