package domain

// Profile is everything gathered for one request. It is built fresh each time.
type Profile struct {
	Person   Person
	Country  CountryInfo
	Exchange ExchangeQuote
	News     []NewsItem
}
