package staticdata

import "github.com/SscSPs/user_profile_aggregator/internal/core/domain"

var news = []domain.NewsItem{
	{
		Title:       "Central banks hold rates steady as inflation cools",
		Description: "Policy makers across major economies kept borrowing costs unchanged this quarter.",
		Image:       "https://images.unsplash.com/photo-1611974789855-9c2a0a7236a3?w=640",
		URL:         "https://www.reuters.com/markets/",
		Source:      "Reuters",
		PublishedAt: "2025-01-15T08:00:00Z",
	},
	{
		Title:       "Travel demand reaches new high ahead of summer season",
		Description: "Airlines report record bookings on international routes.",
		Image:       "https://images.unsplash.com/photo-1436491865332-7a61a109cc05?w=640",
		URL:         "https://www.bbc.com/travel",
		Source:      "BBC",
		PublishedAt: "2025-01-14T10:30:00Z",
	},
	{
		Title:       "Renewable energy overtakes coal in global power mix",
		Description: "Solar and wind generated more electricity than coal for the first time last year.",
		Image:       "https://images.unsplash.com/photo-1509391366360-2e959784a276?w=640",
		URL:         "https://www.theguardian.com/environment",
		Source:      "The Guardian",
		PublishedAt: "2025-01-13T12:15:00Z",
	},
	{
		Title:       "Tech companies expand remote work programs",
		Description: "More employers offer cross-border remote positions to attract talent.",
		Image:       "https://images.unsplash.com/photo-1522202176988-66273c2fd55f?w=640",
		URL:         "https://www.wired.com/category/business/",
		Source:      "Wired",
		PublishedAt: "2025-01-12T09:45:00Z",
	},
	{
		Title:       "World football federation announces new tournament format",
		Description: "The expanded competition will feature more national teams from every continent.",
		Image:       "https://images.unsplash.com/photo-1574629810360-7efbbe195018?w=640",
		URL:         "https://www.espn.com/soccer/",
		Source:      "ESPN",
		PublishedAt: "2025-01-11T18:00:00Z",
	},
}

// News returns a copy of the fixed news list.
func News() []domain.NewsItem {
	out := make([]domain.NewsItem, len(news))
	copy(out, news)
	return out
}
