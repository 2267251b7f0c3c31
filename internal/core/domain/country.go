package domain

// DefaultCurrencyCode is used whenever no other currency code can be resolved.
const DefaultCurrencyCode = "USD"

// NotAvailable marks a value that could not be resolved.
const NotAvailable = "N/A"

// CountryInfo describes the country a person lives in.
type CountryInfo struct {
	Name         string `json:"name"`
	Capital      string `json:"capital"`
	Languages    string `json:"languages"` // comma-joined, human readable
	CurrencyCode string `json:"currencyCode" validate:"required,len=3,uppercase"`
	CurrencyName string `json:"currencyName"`
	Flag         string `json:"flag"`
}
