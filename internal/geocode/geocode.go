// Package geocode resolves a ZIP code to a human-readable place name via a
// Nominatim-style API. Used only to enrich the search query; failures
// degrade to ZIP-only searching.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/AnthonyP05/WizardsOfWaverlyHacks/internal/config"
)

const defaultBaseURL = "https://nominatim.openstreetmap.org/search"

type Client struct {
	baseURL   string
	userAgent string
	http      *http.Client
}

func NewClient(cfg config.GeocodeConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = "wizards-recycling-assistant/1.0"
	}
	return &Client{
		baseURL:   baseURL,
		userAgent: userAgent,
		http:      &http.Client{Timeout: 10 * time.Second},
	}
}

type place struct {
	DisplayName string `json:"display_name"`
}

// PlaceName returns a display name for the ZIP code, or an error when the
// lookup finds nothing.
func (c *Client) PlaceName(ctx context.Context, zip string) (string, error) {
	q := url.Values{}
	q.Set("postalcode", zip)
	q.Set("country", "us")
	q.Set("format", "json")
	q.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to build geocode request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("geocode request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("geocode provider returned status %d", resp.StatusCode)
	}

	var places []place
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		return "", fmt.Errorf("failed to decode geocode response: %w", err)
	}
	if len(places) == 0 || places[0].DisplayName == "" {
		return "", fmt.Errorf("no place found for ZIP %s", zip)
	}
	return places[0].DisplayName, nil
}
