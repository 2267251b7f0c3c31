package services

import (
	"context"

	"github.com/SscSPs/user_profile_aggregator/internal/core/domain"
)

// PersonSvc produces the person a profile is built around.
type PersonSvc interface {
	// FetchPerson returns a random person or an error wrapping apperrors.ErrPersonUnavailable.
	FetchPerson(ctx context.Context) (*domain.Person, error)
}

// CountrySvc resolves country metadata, never failing.
type CountrySvc interface {
	// ResolveCountry returns live data when possible and the static record otherwise.
	ResolveCountry(ctx context.Context, name string) domain.CountryInfo
}

// ExchangeSvc resolves exchange quotes, never failing.
type ExchangeSvc interface {
	// QuoteCurrency returns live rates when possible and the static quote otherwise.
	QuoteCurrency(ctx context.Context, currencyCode string) domain.ExchangeQuote
}

// NewsSvc resolves news for a country, never failing.
type NewsSvc interface {
	// LatestNews returns at most domain.MaxNewsItems items and never nil.
	LatestNews(ctx context.Context, country string) []domain.NewsItem
}

// ProfileSvcFacade builds the composite profile served by /api/user.
type ProfileSvcFacade interface {
	BuildProfile(ctx context.Context) (*domain.Profile, error)
}
