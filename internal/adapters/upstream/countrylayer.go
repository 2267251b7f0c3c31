package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"github.com/SscSPs/user_profile_aggregator/internal/apperrors"
	"github.com/SscSPs/user_profile_aggregator/internal/core/domain"
	"github.com/SscSPs/user_profile_aggregator/internal/staticdata"
	"golang.org/x/text/currency"
)

const defaultCountryLayerURL = "https://api.countrylayer.com/v2"

type countryLayerEntry struct {
	Name       string          `json:"name"`
	Capital    string          `json:"capital"`
	Alpha2Code string          `json:"alpha2Code"`
	Languages  json.RawMessage `json:"languages"`
	Currencies json.RawMessage `json:"currencies"`
}

type namedEntry struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// CountryLayerClient looks countries up in the countrylayer registry.
type CountryLayerClient struct {
	client  *http.Client
	apiKey  string
	BaseURL string
}

// NewCountryLayerClient creates a country registry client.
func NewCountryLayerClient(client *http.Client, baseURL, apiKey string) *CountryLayerClient {
	if baseURL == "" {
		baseURL = defaultCountryLayerURL
	}
	return &CountryLayerClient{
		client:  client,
		apiKey:  apiKey,
		BaseURL: strings.TrimRight(baseURL, "/"),
	}
}

// FetchCountry returns the registry entry whose name equals name, ignoring case.
func (c *CountryLayerClient) FetchCountry(ctx context.Context, name string) (*domain.CountryInfo, error) {
	if !IsConfiguredKey(c.apiKey) {
		return nil, fmt.Errorf("%w: country api key", apperrors.ErrConfigurationGap)
	}

	endpoint := fmt.Sprintf("%s/name/%s?%s", c.BaseURL, url.PathEscape(name), url.Values{"access_key": {c.apiKey}}.Encode())

	var raw json.RawMessage
	if err := getJSON(ctx, c.client, endpoint, &raw); err != nil {
		return nil, err
	}

	var entries []countryLayerEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("%w: country response is not a list", apperrors.ErrUpstreamUnavailable)
	}

	for _, e := range entries {
		if strings.EqualFold(strings.TrimSpace(e.Name), strings.TrimSpace(name)) {
			info := mapCountryLayer(e)
			return &info, nil
		}
	}
	return nil, fmt.Errorf("%w: country %q", apperrors.ErrNotFound, name)
}

func mapCountryLayer(e countryLayerEntry) domain.CountryInfo {
	alpha2 := strings.ToUpper(strings.TrimSpace(e.Alpha2Code))

	var first namedEntry
	if currencies := parseNamedList(e.Currencies); len(currencies) > 0 {
		first = currencies[0]
	}

	code := resolveCurrencyCode(first.Code, alpha2)
	currencyName := first.Name
	if currencyName == "" {
		currencyName = code
	}

	capital := e.Capital
	if capital == "" {
		capital = domain.NotAvailable
	}

	flag := ""
	if alpha2 != "" {
		flag = "https://flagcdn.com/w80/" + strings.ToLower(alpha2) + ".png"
	}

	return domain.CountryInfo{
		Name:         e.Name,
		Capital:      capital,
		Languages:    normalizeLanguages(e.Languages),
		CurrencyCode: code,
		CurrencyName: currencyName,
		Flag:         flag,
	}
}

// resolveCurrencyCode prefers the live code, then the alpha-2 table, then USD.
func resolveCurrencyCode(liveCode, alpha2 string) string {
	if liveCode != "" {
		if unit, err := currency.ParseISO(strings.ToUpper(strings.TrimSpace(liveCode))); err == nil {
			return unit.String()
		}
	}
	if code, ok := staticdata.CurrencyForAlpha2(alpha2); ok {
		return code
	}
	return domain.DefaultCurrencyCode
}

// normalizeLanguages accepts either [{"name": ...}] or {"code": "name"}.
func normalizeLanguages(raw json.RawMessage) string {
	var names []string

	if list := parseNamedList(raw); list != nil {
		for _, l := range list {
			if l.Name != "" {
				names = append(names, l.Name)
			}
		}
	} else {
		var byCode map[string]string
		if err := json.Unmarshal(raw, &byCode); err == nil {
			codes := make([]string, 0, len(byCode))
			for code := range byCode {
				codes = append(codes, code)
			}
			sort.Strings(codes)
			for _, code := range codes {
				if byCode[code] != "" {
					names = append(names, byCode[code])
				}
			}
		}
	}

	if len(names) == 0 {
		return domain.NotAvailable
	}
	return strings.Join(names, ", ")
}

func parseNamedList(raw json.RawMessage) []namedEntry {
	if len(raw) == 0 {
		return nil
	}
	var list []namedEntry
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil
	}
	return list
}
