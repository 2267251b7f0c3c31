package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/user_profile_aggregator/internal/core/domain"
	portssvc "github.com/SscSPs/user_profile_aggregator/internal/core/ports/services"
	"golang.org/x/sync/errgroup"
)

type profileService struct {
	BaseService
	person   portssvc.PersonSvc
	country  portssvc.CountrySvc
	exchange portssvc.ExchangeSvc
	news     portssvc.NewsSvc
	now      func() time.Time
}

// ProfileServiceOption is a functional option for configuring the profile service
type ProfileServiceOption func(*profileService)

// WithClock replaces time.Now as the source of "today" for age calculation.
func WithClock(now func() time.Time) ProfileServiceOption {
	return func(s *profileService) {
		s.now = now
	}
}

// NewProfileService creates the service that assembles a full profile per request.
func NewProfileService(person portssvc.PersonSvc, country portssvc.CountrySvc, exchange portssvc.ExchangeSvc, news portssvc.NewsSvc, options ...ProfileServiceOption) portssvc.ProfileSvcFacade {
	svc := &profileService{
		person:   person,
		country:  country,
		exchange: exchange,
		news:     news,
		now:      time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// BuildProfile runs person -> country -> (exchange, news) and derives the age.
// Only a missing person, or a panic in one of the lookups, fails the whole profile.
func (s *profileService) BuildProfile(ctx context.Context) (*domain.Profile, error) {
	person, err := s.person.FetchPerson(ctx)
	if err != nil {
		return nil, err
	}

	country := s.country.ResolveCountry(ctx, person.Country)

	// Exchange and news depend only on the person and the country.
	var (
		quote domain.ExchangeQuote
		news  []domain.NewsItem
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(recovering("exchange", func() {
		quote = s.exchange.QuoteCurrency(gctx, country.CurrencyCode)
	}))
	g.Go(recovering("news", func() {
		news = s.news.LatestNews(gctx, person.Country)
	}))
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Profile lookup aborted")
		return nil, err
	}

	p := *person
	p.Age = domain.CalculateAge(p.DOB, s.now())

	s.LogInfo(ctx, "Profile assembled",
		slog.String("country", country.Name),
		slog.String("currency_code", country.CurrencyCode),
		slog.Int("news_items", len(news)))

	return &domain.Profile{
		Person:   p,
		Country:  country,
		Exchange: quote,
		News:     news,
	}, nil
}

// recovering adapts fn for an errgroup, turning a panic into an error so a
// failing lookup cannot take the process down from a background goroutine.
func recovering(step string, fn func()) func() error {
	return func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("%s lookup failed: %v", step, r)
			}
		}()
		fn()
		return nil
	}
}
