package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/SscSPs/user_profile_aggregator/internal/apperrors"
	"github.com/SscSPs/user_profile_aggregator/internal/core/domain"
	"golang.org/x/text/language"
)

const defaultNewsAPIURL = "https://newsapi.org/v2"

type newsAPIResponse struct {
	Status   string           `json:"status"`
	Articles []newsAPIArticle `json:"articles"`
}

type newsAPIArticle struct {
	Source struct {
		Name string `json:"name"`
	} `json:"source"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	URLToImage  string `json:"urlToImage"`
	PublishedAt string `json:"publishedAt"`
}

// NewsAPIClient searches newsapi.org for English articles.
type NewsAPIClient struct {
	client  *http.Client
	apiKey  string
	BaseURL string
}

// NewNewsAPIClient creates a news search client.
func NewNewsAPIClient(client *http.Client, baseURL, apiKey string) *NewsAPIClient {
	if baseURL == "" {
		baseURL = defaultNewsAPIURL
	}
	return &NewsAPIClient{
		client:  client,
		apiKey:  apiKey,
		BaseURL: strings.TrimRight(baseURL, "/"),
	}
}

// FetchNews returns up to domain.MaxNewsItems articles mentioning query.
// A response without an articles array yields an empty list.
func (c *NewsAPIClient) FetchNews(ctx context.Context, query string) ([]domain.NewsItem, error) {
	if !IsConfiguredKey(c.apiKey) {
		return nil, fmt.Errorf("%w: news api key", apperrors.ErrConfigurationGap)
	}

	params := url.Values{
		"q":        {query},
		"language": {language.English.String()},
		"pageSize": {strconv.Itoa(domain.MaxNewsItems)},
		"apiKey":   {c.apiKey},
	}
	endpoint := c.BaseURL + "/everything?" + params.Encode()

	var resp newsAPIResponse
	if err := getJSON(ctx, c.client, endpoint, &resp); err != nil {
		return nil, err
	}

	items := make([]domain.NewsItem, 0, domain.MaxNewsItems)
	for _, a := range resp.Articles {
		if len(items) == domain.MaxNewsItems {
			break
		}
		items = append(items, domain.NewsItem{
			Title:       a.Title,
			Description: a.Description,
			Image:       a.URLToImage,
			URL:         a.URL,
			Source:      a.Source.Name,
			PublishedAt: a.PublishedAt,
		})
	}
	return items, nil
}
