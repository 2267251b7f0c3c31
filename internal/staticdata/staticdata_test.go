package staticdata

import (
	"testing"

	"github.com/SscSPs/user_profile_aggregator/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountryByName_Known(t *testing.T) {
	c := CountryByName("France")
	assert.Equal(t, "France", c.Name)
	assert.Equal(t, "EUR", c.CurrencyCode)
	assert.Equal(t, "Paris", c.Capital)
}

func TestCountryByName_DefaultsToUnitedStates(t *testing.T) {
	c := CountryByName("Atlantis")
	assert.Equal(t, "United States", c.Name)
	assert.Equal(t, "USD", c.CurrencyCode)

	_, ok := LookupCountry("Atlantis")
	assert.False(t, ok)
}

func TestRateByCurrency_DefaultsToUSD(t *testing.T) {
	q := RateByCurrency("XYZ")
	assert.Equal(t, "USD", q.BaseCurrency)
	assert.Equal(t, "1.00", q.ToUSD)
}

func TestTablesAreConsistent(t *testing.T) {
	for name, c := range countries {
		assert.Equal(t, name, c.Name, "key and record name differ")
		require.Len(t, c.CurrencyCode, 3, name)
		_, ok := LookupRate(c.CurrencyCode)
		assert.True(t, ok, "no static rate for %s (%s)", name, c.CurrencyCode)
	}
	for code, q := range rates {
		assert.Equal(t, code, q.BaseCurrency)
		assert.NotEmpty(t, q.ToUSD)
		assert.NotEmpty(t, q.ToKZT)
	}
}

func TestNews_ReturnsCopy(t *testing.T) {
	items := News()
	require.Len(t, items, domain.MaxNewsItems)
	items[0].Title = "changed"
	assert.NotEqual(t, "changed", News()[0].Title)
}
