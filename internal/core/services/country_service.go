package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/user_profile_aggregator/internal/apperrors"
	"github.com/SscSPs/user_profile_aggregator/internal/core/domain"
	portssvc "github.com/SscSPs/user_profile_aggregator/internal/core/ports/services"
	"github.com/SscSPs/user_profile_aggregator/internal/core/ports/upstreams"
	"github.com/SscSPs/user_profile_aggregator/internal/staticdata"
	"github.com/go-playground/validator/v10"
)

type countryService struct {
	BaseService
	source   upstreams.CountrySource
	validate *validator.Validate
}

// NewCountryService creates the country service. A nil source always uses static data.
func NewCountryService(source upstreams.CountrySource) portssvc.CountrySvc {
	return &countryService{
		source:   source,
		validate: validator.New(),
	}
}

func (s *countryService) ResolveCountry(ctx context.Context, name string) domain.CountryInfo {
	country := withFallback(ctx, &s.BaseService, "country", func(ctx context.Context) (domain.CountryInfo, error) {
		return s.fetchLive(ctx, name)
	}, func() domain.CountryInfo {
		return staticdata.CountryByName(name)
	})

	s.LogDebug(ctx, "Country resolved",
		slog.String("requested", name),
		slog.String("country", country.Name),
		slog.String("currency_code", country.CurrencyCode))
	return country
}

func (s *countryService) fetchLive(ctx context.Context, name string) (domain.CountryInfo, error) {
	if s.source == nil {
		return domain.CountryInfo{}, apperrors.ErrConfigurationGap
	}
	country, err := s.source.FetchCountry(ctx, name)
	if err != nil {
		return domain.CountryInfo{}, err
	}
	if country == nil {
		return domain.CountryInfo{}, fmt.Errorf("%w: empty country record", apperrors.ErrUpstreamUnavailable)
	}
	if err := s.validate.Struct(country); err != nil {
		return domain.CountryInfo{}, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}
	return *country, nil
}
