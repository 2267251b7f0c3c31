package domain

// MaxNewsItems bounds the number of articles attached to a response.
const MaxNewsItems = 5

// NewsItem is a single article mentioning a person's country.
type NewsItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	URL         string `json:"url"`
	Source      string `json:"source"`
	PublishedAt string `json:"publishedAt"`
}
