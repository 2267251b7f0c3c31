package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/SscSPs/user_profile_aggregator/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countryServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "secret-key", r.URL.Query().Get("access_key"))
		w.WriteHeader(status)
		fmt.Fprintln(w, body)
	}))
}

func TestFetchCountry_Success(t *testing.T) {
	server := countryServer(t, http.StatusOK, `[
		{"name":"French Guiana","capital":"Cayenne","alpha2Code":"GF","languages":[{"name":"French"}],"currencies":[{"code":"EUR","name":"Euro"}]},
		{"name":"France","capital":"Paris","alpha2Code":"FR","languages":[{"name":"French"},{"name":"Occitan"}],"currencies":[{"code":"EUR","name":"Euro"}]}
	]`)
	defer server.Close()

	client := NewCountryLayerClient(server.Client(), server.URL, "secret-key")
	country, err := client.FetchCountry(context.Background(), "fRANCE")

	require.NoError(t, err)
	assert.Equal(t, "France", country.Name)
	assert.Equal(t, "Paris", country.Capital)
	assert.Equal(t, "French, Occitan", country.Languages)
	assert.Equal(t, "EUR", country.CurrencyCode)
	assert.Equal(t, "Euro", country.CurrencyName)
	assert.Equal(t, "https://flagcdn.com/w80/fr.png", country.Flag)
}

func TestFetchCountry_PathEscapesName(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/name/New Zealand", r.URL.Path)
		fmt.Fprintln(w, `[{"name":"New Zealand","capital":"Wellington","alpha2Code":"NZ"}]`)
	}))
	defer server.Close()

	client := NewCountryLayerClient(server.Client(), server.URL, "secret-key")
	country, err := client.FetchCountry(context.Background(), "New Zealand")

	require.NoError(t, err)
	assert.Equal(t, "NZD", country.CurrencyCode, "alpha2 table should resolve the currency")
	assert.Equal(t, "NZD", country.CurrencyName)
	assert.Equal(t, "N/A", country.Languages)
}

func TestFetchCountry_MissingKeyDoesNotCallUpstream(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer server.Close()

	for _, key := range []string{"", "your_api_key"} {
		client := NewCountryLayerClient(server.Client(), server.URL, key)
		_, err := client.FetchCountry(context.Background(), "France")
		assert.ErrorIs(t, err, apperrors.ErrConfigurationGap)
	}
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
}

func TestFetchCountry_Failures(t *testing.T) {
	testCases := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"non-array response", http.StatusOK, `{"success":false,"error":{"code":101}}`, apperrors.ErrUpstreamUnavailable},
		{"unauthorized", http.StatusUnauthorized, `{}`, apperrors.ErrUpstreamUnavailable},
		{"no exact match", http.StatusOK, `[{"name":"Franconia"}]`, apperrors.ErrNotFound},
		{"empty list", http.StatusOK, `[]`, apperrors.ErrNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := countryServer(t, tc.status, tc.body)
			defer server.Close()

			client := NewCountryLayerClient(server.Client(), server.URL, "secret-key")
			country, err := client.FetchCountry(context.Background(), "France")

			require.Error(t, err)
			assert.Nil(t, country)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestNormalizeLanguages(t *testing.T) {
	testCases := []struct {
		name string
		raw  string
		want string
	}{
		{"array of objects", `[{"iso639_1":"de","name":"German"},{"name":"French"}]`, "German, French"},
		{"object map sorted by code", `{"ita":"Italian","deu":"German","fra":"French"}`, "German, French, Italian"},
		{"empty array", `[]`, "N/A"},
		{"null", `null`, "N/A"},
		{"unexpected shape", `"English"`, "N/A"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, normalizeLanguages(json.RawMessage(tc.raw)))
		})
	}
}

func TestResolveCurrencyCode(t *testing.T) {
	assert.Equal(t, "EUR", resolveCurrencyCode("eur", "DE"))
	assert.Equal(t, "CHF", resolveCurrencyCode("", "CH"))
	assert.Equal(t, "GBP", resolveCurrencyCode("££", "GB"), "invalid live code falls through to the alpha2 table")
	assert.Equal(t, "USD", resolveCurrencyCode("", "ZZ"))
}
