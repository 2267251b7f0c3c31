package upstreams

import (
	"context"

	"github.com/SscSPs/user_profile_aggregator/internal/core/domain"
)

// PersonSource generates a random person.
type PersonSource interface {
	FetchPerson(ctx context.Context) (*domain.Person, error)
}

// CountrySource looks a country up by its name.
type CountrySource interface {
	FetchCountry(ctx context.Context, name string) (*domain.CountryInfo, error)
}

// ExchangeSource quotes a base currency in USD and KZT.
type ExchangeSource interface {
	FetchQuote(ctx context.Context, baseCurrency string) (*domain.ExchangeQuote, error)
}

// NewsSource searches for articles mentioning a query.
type NewsSource interface {
	FetchNews(ctx context.Context, query string) ([]domain.NewsItem, error)
}

// UpstreamProvider holds every upstream client needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type UpstreamProvider struct {
	Person   PersonSource
	Country  CountrySource
	Exchange ExchangeSource
	News     NewsSource
}
