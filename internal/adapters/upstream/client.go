package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/SscSPs/user_profile_aggregator/internal/apperrors"
)

// DefaultTimeout bounds every outbound call when no timeout is configured.
const DefaultTimeout = 10 * time.Second

// placeholderKeys are values left behind by .env templates.
var placeholderKeys = map[string]bool{
	"changeme":        true,
	"change_me":       true,
	"none":            true,
	"null":            true,
	"api_key":         true,
	"apikey":          true,
	"your_api_key":    true,
	"your-api-key":    true,
	"insert_key_here": true,
}

// IsConfiguredKey reports whether key looks like a real API key.
func IsConfiguredKey(key string) bool {
	k := strings.ToLower(strings.TrimSpace(key))
	switch {
	case k == "":
		return false
	case placeholderKeys[k]:
		return false
	case strings.HasPrefix(k, "your_") || strings.HasPrefix(k, "your-"):
		return false
	case strings.HasSuffix(k, "_here") || strings.HasSuffix(k, "-here"):
		return false
	case strings.HasPrefix(k, "<") && strings.HasSuffix(k, ">"):
		return false
	case strings.Trim(k, "x") == "":
		return false
	}
	return true
}

// NewHTTPClient returns the client shared by every upstream adapter.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

// getJSON issues a GET to url and decodes a 2xx JSON body into out.
// Every failure wraps apperrors.ErrUpstreamUnavailable.
func getJSON(ctx context.Context, client *http.Client, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %w", apperrors.ErrUpstreamUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %w", apperrors.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("%w: received non-2xx status code: %d", apperrors.ErrUpstreamUnavailable, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %w", apperrors.ErrUpstreamUnavailable, err)
	}
	return nil
}
