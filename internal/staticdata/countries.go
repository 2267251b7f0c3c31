// Package staticdata holds the read-only reference tables used whenever a live
// upstream lookup cannot be performed.
package staticdata

import "github.com/SscSPs/user_profile_aggregator/internal/core/domain"

// DefaultCountryName is the record returned for names missing from the table.
const DefaultCountryName = "United States"

func flag(alpha2 string) string {
	return "https://flagcdn.com/w80/" + alpha2 + ".png"
}

// countries covers every country the person generator can emit.
var countries = map[string]domain.CountryInfo{
	"Australia":      {Name: "Australia", Capital: "Canberra", Languages: "English", CurrencyCode: "AUD", CurrencyName: "Australian dollar", Flag: flag("au")},
	"Brazil":         {Name: "Brazil", Capital: "Brasília", Languages: "Portuguese", CurrencyCode: "BRL", CurrencyName: "Brazilian real", Flag: flag("br")},
	"Canada":         {Name: "Canada", Capital: "Ottawa", Languages: "English, French", CurrencyCode: "CAD", CurrencyName: "Canadian dollar", Flag: flag("ca")},
	"Switzerland":    {Name: "Switzerland", Capital: "Bern", Languages: "German, French, Italian, Romansh", CurrencyCode: "CHF", CurrencyName: "Swiss franc", Flag: flag("ch")},
	"Germany":        {Name: "Germany", Capital: "Berlin", Languages: "German", CurrencyCode: "EUR", CurrencyName: "Euro", Flag: flag("de")},
	"Denmark":        {Name: "Denmark", Capital: "Copenhagen", Languages: "Danish", CurrencyCode: "DKK", CurrencyName: "Danish krone", Flag: flag("dk")},
	"Spain":          {Name: "Spain", Capital: "Madrid", Languages: "Spanish", CurrencyCode: "EUR", CurrencyName: "Euro", Flag: flag("es")},
	"Finland":        {Name: "Finland", Capital: "Helsinki", Languages: "Finnish, Swedish", CurrencyCode: "EUR", CurrencyName: "Euro", Flag: flag("fi")},
	"France":         {Name: "France", Capital: "Paris", Languages: "French", CurrencyCode: "EUR", CurrencyName: "Euro", Flag: flag("fr")},
	"United Kingdom": {Name: "United Kingdom", Capital: "London", Languages: "English", CurrencyCode: "GBP", CurrencyName: "British pound", Flag: flag("gb")},
	"Ireland":        {Name: "Ireland", Capital: "Dublin", Languages: "Irish, English", CurrencyCode: "EUR", CurrencyName: "Euro", Flag: flag("ie")},
	"India":          {Name: "India", Capital: "New Delhi", Languages: "Hindi, English", CurrencyCode: "INR", CurrencyName: "Indian rupee", Flag: flag("in")},
	"Iran":           {Name: "Iran", Capital: "Tehran", Languages: "Persian", CurrencyCode: "IRR", CurrencyName: "Iranian rial", Flag: flag("ir")},
	"Mexico":         {Name: "Mexico", Capital: "Mexico City", Languages: "Spanish", CurrencyCode: "MXN", CurrencyName: "Mexican peso", Flag: flag("mx")},
	"Netherlands":    {Name: "Netherlands", Capital: "Amsterdam", Languages: "Dutch", CurrencyCode: "EUR", CurrencyName: "Euro", Flag: flag("nl")},
	"Norway":         {Name: "Norway", Capital: "Oslo", Languages: "Norwegian", CurrencyCode: "NOK", CurrencyName: "Norwegian krone", Flag: flag("no")},
	"New Zealand":    {Name: "New Zealand", Capital: "Wellington", Languages: "English, Māori", CurrencyCode: "NZD", CurrencyName: "New Zealand dollar", Flag: flag("nz")},
	"Serbia":         {Name: "Serbia", Capital: "Belgrade", Languages: "Serbian", CurrencyCode: "RSD", CurrencyName: "Serbian dinar", Flag: flag("rs")},
	"Turkey":         {Name: "Turkey", Capital: "Ankara", Languages: "Turkish", CurrencyCode: "TRY", CurrencyName: "Turkish lira", Flag: flag("tr")},
	"Ukraine":        {Name: "Ukraine", Capital: "Kyiv", Languages: "Ukrainian", CurrencyCode: "UAH", CurrencyName: "Ukrainian hryvnia", Flag: flag("ua")},
	"United States":  {Name: "United States", Capital: "Washington, D.C.", Languages: "English", CurrencyCode: "USD", CurrencyName: "United States dollar", Flag: flag("us")},
}

// currencyByAlpha2 maps ISO 3166-1 alpha-2 country codes to ISO 4217 currency codes.
var currencyByAlpha2 = map[string]string{
	"AT": "EUR",
	"AU": "AUD",
	"BE": "EUR",
	"BR": "BRL",
	"CA": "CAD",
	"CH": "CHF",
	"CN": "CNY",
	"DE": "EUR",
	"DK": "DKK",
	"ES": "EUR",
	"FI": "EUR",
	"FR": "EUR",
	"GB": "GBP",
	"IE": "EUR",
	"IN": "INR",
	"IR": "IRR",
	"IT": "EUR",
	"JP": "JPY",
	"KZ": "KZT",
	"MX": "MXN",
	"NL": "EUR",
	"NO": "NOK",
	"NZ": "NZD",
	"RS": "RSD",
	"RU": "RUB",
	"TR": "TRY",
	"UA": "UAH",
	"US": "USD",
}

// LookupCountry returns the static record for an exact country name.
func LookupCountry(name string) (domain.CountryInfo, bool) {
	c, ok := countries[name]
	return c, ok
}

// CountryByName returns the static record for name, or the United States record.
func CountryByName(name string) domain.CountryInfo {
	if c, ok := countries[name]; ok {
		return c
	}
	return countries[DefaultCountryName]
}

// CurrencyForAlpha2 resolves a two-letter country code to its currency code.
func CurrencyForAlpha2(alpha2 string) (string, bool) {
	code, ok := currencyByAlpha2[alpha2]
	return code, ok
}
