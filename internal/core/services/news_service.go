package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/user_profile_aggregator/internal/apperrors"
	"github.com/SscSPs/user_profile_aggregator/internal/core/domain"
	portssvc "github.com/SscSPs/user_profile_aggregator/internal/core/ports/services"
	"github.com/SscSPs/user_profile_aggregator/internal/core/ports/upstreams"
	"github.com/SscSPs/user_profile_aggregator/internal/staticdata"
)

type newsService struct {
	BaseService
	source     upstreams.NewsSource
	staticOnly bool
}

// NewNewsService creates the news service. With staticOnly set the live source
// is never called and the fixed news list is served instead.
func NewNewsService(source upstreams.NewsSource, staticOnly bool) portssvc.NewsSvc {
	return &newsService{source: source, staticOnly: staticOnly}
}

func (s *newsService) LatestNews(ctx context.Context, country string) []domain.NewsItem {
	if s.staticOnly {
		return capNews(staticdata.News())
	}
	if s.source == nil {
		return []domain.NewsItem{}
	}

	items, err := s.source.FetchNews(ctx, country)
	if err != nil {
		if !errors.Is(err, apperrors.ErrConfigurationGap) {
			s.LogWarn(ctx, "News lookup failed, returning no news",
				slog.String("country", country),
				slog.String("error", err.Error()))
		}
		return []domain.NewsItem{}
	}
	return capNews(items)
}

func capNews(items []domain.NewsItem) []domain.NewsItem {
	if items == nil {
		return []domain.NewsItem{}
	}
	if len(items) > domain.MaxNewsItems {
		return items[:domain.MaxNewsItems]
	}
	return items
}
