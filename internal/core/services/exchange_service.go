package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/SscSPs/user_profile_aggregator/internal/apperrors"
	"github.com/SscSPs/user_profile_aggregator/internal/core/domain"
	portssvc "github.com/SscSPs/user_profile_aggregator/internal/core/ports/services"
	"github.com/SscSPs/user_profile_aggregator/internal/core/ports/upstreams"
	"github.com/SscSPs/user_profile_aggregator/internal/staticdata"
)

type exchangeService struct {
	BaseService
	source upstreams.ExchangeSource
}

// NewExchangeService creates the exchange service. A nil source always uses static data.
func NewExchangeService(source upstreams.ExchangeSource) portssvc.ExchangeSvc {
	return &exchangeService{source: source}
}

func (s *exchangeService) QuoteCurrency(ctx context.Context, currencyCode string) domain.ExchangeQuote {
	code := strings.ToUpper(strings.TrimSpace(currencyCode))
	if code == "" {
		code = domain.DefaultCurrencyCode
	}

	return withFallback(ctx, &s.BaseService, "exchange", func(ctx context.Context) (domain.ExchangeQuote, error) {
		if s.source == nil {
			return domain.ExchangeQuote{}, apperrors.ErrConfigurationGap
		}
		quote, err := s.source.FetchQuote(ctx, code)
		if err != nil {
			return domain.ExchangeQuote{}, err
		}
		if quote == nil {
			return domain.ExchangeQuote{}, fmt.Errorf("%w: empty quote", apperrors.ErrUpstreamUnavailable)
		}
		return normalizeQuote(*quote, code), nil
	}, func() domain.ExchangeQuote {
		return staticdata.RateByCurrency(code)
	})
}

// normalizeQuote keeps the numeric fields non-empty.
func normalizeQuote(q domain.ExchangeQuote, code string) domain.ExchangeQuote {
	if q.BaseCurrency == "" {
		q.BaseCurrency = code
	}
	if q.ToUSD == "" {
		q.ToUSD = domain.NotAvailable
	}
	if q.ToKZT == "" {
		q.ToKZT = domain.NotAvailable
	}
	return q
}
