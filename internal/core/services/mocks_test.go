package services_test

import (
	"context"

	"github.com/SscSPs/user_profile_aggregator/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock upstream sources ---

type MockPersonSource struct {
	mock.Mock
}

func (m *MockPersonSource) FetchPerson(ctx context.Context) (*domain.Person, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Person), args.Error(1)
}

type MockCountrySource struct {
	mock.Mock
}

func (m *MockCountrySource) FetchCountry(ctx context.Context, name string) (*domain.CountryInfo, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CountryInfo), args.Error(1)
}

type MockExchangeSource struct {
	mock.Mock
}

func (m *MockExchangeSource) FetchQuote(ctx context.Context, baseCurrency string) (*domain.ExchangeQuote, error) {
	args := m.Called(ctx, baseCurrency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeQuote), args.Error(1)
}

type MockNewsSource struct {
	mock.Mock
}

func (m *MockNewsSource) FetchNews(ctx context.Context, query string) ([]domain.NewsItem, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.NewsItem), args.Error(1)
}

// --- Mock services ---

type MockPersonSvc struct {
	mock.Mock
}

func (m *MockPersonSvc) FetchPerson(ctx context.Context) (*domain.Person, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Person), args.Error(1)
}

type MockCountrySvc struct {
	mock.Mock
}

func (m *MockCountrySvc) ResolveCountry(ctx context.Context, name string) domain.CountryInfo {
	args := m.Called(ctx, name)
	return args.Get(0).(domain.CountryInfo)
}

type MockExchangeSvc struct {
	mock.Mock
}

func (m *MockExchangeSvc) QuoteCurrency(ctx context.Context, currencyCode string) domain.ExchangeQuote {
	args := m.Called(ctx, currencyCode)
	return args.Get(0).(domain.ExchangeQuote)
}

type MockNewsSvc struct {
	mock.Mock
}

func (m *MockNewsSvc) LatestNews(ctx context.Context, country string) []domain.NewsItem {
	args := m.Called(ctx, country)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.NewsItem)
}
