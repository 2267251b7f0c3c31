package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/SscSPs/user_profile_aggregator/internal/apperrors"
	"github.com/SscSPs/user_profile_aggregator/internal/core/domain"
	"github.com/SscSPs/user_profile_aggregator/internal/utils"
	"github.com/shopspring/decimal"
)

const defaultExchangeRateURL = "https://v6.exchangerate-api.com/v6"

type exchangeRateResponse struct {
	Result          string                     `json:"result"`
	ConversionRates map[string]decimal.Decimal `json:"conversion_rates"`
}

// ExchangeRateClient reads the latest rates from exchangerate-api.com.
type ExchangeRateClient struct {
	client  *http.Client
	apiKey  string
	BaseURL string
}

// NewExchangeRateClient creates an exchange-rate client.
func NewExchangeRateClient(client *http.Client, baseURL, apiKey string) *ExchangeRateClient {
	if baseURL == "" {
		baseURL = defaultExchangeRateURL
	}
	return &ExchangeRateClient{
		client:  client,
		apiKey:  apiKey,
		BaseURL: strings.TrimRight(baseURL, "/"),
	}
}

// FetchQuote returns the USD and KZT value of one unit of baseCurrency.
func (c *ExchangeRateClient) FetchQuote(ctx context.Context, baseCurrency string) (*domain.ExchangeQuote, error) {
	if !IsConfiguredKey(c.apiKey) {
		return nil, fmt.Errorf("%w: exchange api key", apperrors.ErrConfigurationGap)
	}

	base := strings.ToUpper(strings.TrimSpace(baseCurrency))
	endpoint := fmt.Sprintf("%s/%s/latest/%s", c.BaseURL, url.PathEscape(c.apiKey), url.PathEscape(base))

	var resp exchangeRateResponse
	if err := getJSON(ctx, c.client, endpoint, &resp); err != nil {
		return nil, err
	}
	if len(resp.ConversionRates) == 0 {
		return nil, fmt.Errorf("%w: response has no conversion rates (result %q)", apperrors.ErrUpstreamUnavailable, resp.Result)
	}

	return &domain.ExchangeQuote{
		BaseCurrency: base,
		ToUSD:        formatRate(resp.ConversionRates, "USD"),
		ToKZT:        formatRate(resp.ConversionRates, domain.SecondaryCurrencyCode),
	}, nil
}

func formatRate(rates map[string]decimal.Decimal, code string) string {
	rate, ok := rates[code]
	if !ok || rate.IsZero() {
		return domain.NotAvailable
	}
	return utils.FormatRate(rate)
}
