package search

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnthonyP05/WizardsOfWaverlyHacks/internal/config"
	"github.com/AnthonyP05/WizardsOfWaverlyHacks/internal/core/model"
)

func TestSearch(t *testing.T) {
	var gotKey string
	var gotBody searchRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-API-KEY")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"organic": [
			{"title": "Recycling | Beverly Hills, CA", "link": "https://www.beverlyhills.gov/recycling", "snippet": "rinse plastic bottles"},
			{"title": "Guide", "link": "https://guide.example.com", "snippet": "aluminum cans accepted"}
		]}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(config.SearchConfig{APIKey: "test-key", BaseURL: srv.URL, MaxResults: 5})

	results, err := c.Search(context.Background(), "90210 recycling rules")

	require.NoError(t, err)
	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, searchRequest{Query: "90210 recycling rules", Num: 5}, gotBody)
	require.Len(t, results, 2)
	assert.Equal(t, model.SearchResult{
		Title:   "Recycling | Beverly Hills, CA",
		URL:     "https://www.beverlyhills.gov/recycling",
		Snippet: "rinse plastic bottles",
	}, results[0])
}

func TestSearchEmptyOrganic(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(config.SearchConfig{BaseURL: srv.URL})

	results, err := c.Search(context.Background(), "query")

	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestSearchErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewHTTPClient(config.SearchConfig{BaseURL: srv.URL})

	_, err := c.Search(context.Background(), "query")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestNewHTTPClientDefaults(t *testing.T) {
	c := NewHTTPClient(config.SearchConfig{})
	assert.Equal(t, defaultBaseURL, c.baseURL)
	assert.Equal(t, 8, c.maxResults)
}
