package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// News sourcing modes.
const (
	NewsSourceLive   = "live"
	NewsSourceStatic = "static"
)

// Config holds application configuration.
type Config struct {
	Port         int
	IsProduction bool
	PublicDir    string

	// Upstream API keys. Empty or placeholder values switch the matching
	// adapter to its static fallback.
	CountryAPIKey  string
	ExchangeAPIKey string
	NewsAPIKey     string
	NewsSource     string

	RandomUserURL   string
	CountryAPIURL   string
	ExchangeAPIURL  string
	NewsAPIURL      string
	UpstreamTimeout time.Duration

	CORSAllowOrigins []string
	RateLimit        string // ulule/limiter formatted rate, e.g. "120-M"

	PosthogAPIKey   string `mapstructure:"POSTHOG_API_KEY"`
	PosthogEndpoint string `mapstructure:"POSTHOG_ENDPOINT"`
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", 3000)
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("PUBLIC_DIR", "public")
	viper.SetDefault("COUNTRY_API_KEY", "")
	viper.SetDefault("EXCHANGE_API_KEY", "")
	viper.SetDefault("NEWS_API_KEY", "")
	viper.SetDefault("NEWS_SOURCE", NewsSourceLive)
	viper.SetDefault("RANDOM_USER_URL", "https://randomuser.me/api/")
	viper.SetDefault("COUNTRY_API_URL", "https://api.countrylayer.com/v2")
	viper.SetDefault("EXCHANGE_API_URL", "https://v6.exchangerate-api.com/v6")
	viper.SetDefault("NEWS_API_URL", "https://newsapi.org/v2")
	viper.SetDefault("UPSTREAM_TIMEOUT", "10s")
	viper.SetDefault("CORS_ALLOW_ORIGINS", "")
	viper.SetDefault("RATE_LIMIT", "120-M")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("POSTHOG_ENDPOINT", "https://eu.i.posthog.com")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetInt("PORT")
	if cfg.Port <= 0 {
		cfg.Port = 3000
		log.Printf("Warning: invalid PORT value ('%s'). Defaulting to %d\n", viper.GetString("PORT"), cfg.Port)
	}

	timeoutStr := viper.GetString("UPSTREAM_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil || timeout <= 0 {
		timeout = 10 * time.Second
		log.Printf("Warning: Invalid value for UPSTREAM_TIMEOUT ('%s'). Defaulting to %s.\n", timeoutStr, timeout.String())
	}

	newsSource := strings.ToLower(strings.TrimSpace(viper.GetString("NEWS_SOURCE")))
	if newsSource != NewsSourceLive && newsSource != NewsSourceStatic {
		log.Printf("Warning: Invalid value for NEWS_SOURCE ('%s'). Defaulting to %s.\n", newsSource, NewsSourceLive)
		newsSource = NewsSourceLive
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.PublicDir = viper.GetString("PUBLIC_DIR")
	cfg.CountryAPIKey = strings.TrimSpace(viper.GetString("COUNTRY_API_KEY"))
	cfg.ExchangeAPIKey = strings.TrimSpace(viper.GetString("EXCHANGE_API_KEY"))
	cfg.NewsAPIKey = strings.TrimSpace(viper.GetString("NEWS_API_KEY"))
	cfg.NewsSource = newsSource
	cfg.RandomUserURL = viper.GetString("RANDOM_USER_URL")
	cfg.CountryAPIURL = strings.TrimRight(viper.GetString("COUNTRY_API_URL"), "/")
	cfg.ExchangeAPIURL = strings.TrimRight(viper.GetString("EXCHANGE_API_URL"), "/")
	cfg.NewsAPIURL = strings.TrimRight(viper.GetString("NEWS_API_URL"), "/")
	cfg.UpstreamTimeout = timeout
	cfg.CORSAllowOrigins = splitList(viper.GetString("CORS_ALLOW_ORIGINS"))
	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")
	cfg.PosthogEndpoint = viper.GetString("POSTHOG_ENDPOINT")

	if cfg.CountryAPIKey == "" {
		log.Println("Warning: COUNTRY_API_KEY not set. Country data will come from static tables.")
	}
	if cfg.ExchangeAPIKey == "" {
		log.Println("Warning: EXCHANGE_API_KEY not set. Exchange rates will come from static tables.")
	}
	if cfg.NewsAPIKey == "" && cfg.NewsSource == NewsSourceLive {
		log.Println("Warning: NEWS_API_KEY not set. News will be empty.")
	}

	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}
