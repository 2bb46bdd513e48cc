// Package search wraps the external web-search provider. The core never
// performs searches itself; it only consumes the {title, url, snippet}
// records this client returns.
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/AnthonyP05/WizardsOfWaverlyHacks/internal/config"
	"github.com/AnthonyP05/WizardsOfWaverlyHacks/internal/core/model"
)

const defaultBaseURL = "https://google.serper.dev/search"

type Client interface {
	Search(ctx context.Context, query string) ([]model.SearchResult, error)
}

// HTTPClient talks to a Serper-style JSON search API.
type HTTPClient struct {
	apiKey     string
	baseURL    string
	maxResults int
	http       *http.Client
}

func NewHTTPClient(cfg config.SearchConfig) *HTTPClient {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 8
	}
	return &HTTPClient{
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		maxResults: maxResults,
		http:       &http.Client{Timeout: 15 * time.Second},
	}
}

type searchRequest struct {
	Query string `json:"q"`
	Num   int    `json:"num"`
}

type searchResponse struct {
	Organic []struct {
		Title   string `json:"title"`
		Link    string `json:"link"`
		Snippet string `json:"snippet"`
	} `json:"organic"`
}

func (c *HTTPClient) Search(ctx context.Context, query string) ([]model.SearchResult, error) {
	body, err := json.Marshal(searchRequest{Query: query, Num: c.maxResults})
	if err != nil {
		return nil, fmt.Errorf("failed to encode search request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, strings.NewReader(string(body)))
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}
	req.Header.Set("X-API-KEY", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search provider returned status %d", resp.StatusCode)
	}

	var parsed searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	// An empty organic list is a valid outcome, not an error.
	results := make([]model.SearchResult, 0, len(parsed.Organic))
	for _, r := range parsed.Organic {
		results = append(results, model.SearchResult{
			Title:   r.Title,
			URL:     r.Link,
			Snippet: r.Snippet,
		})
	}
	return results, nil
}
