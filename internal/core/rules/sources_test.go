package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnthonyP05/WizardsOfWaverlyHacks/internal/core/model"
)

func TestDedupeSourcesByHostname(t *testing.T) {
	results := []model.SearchResult{
		{Title: "Page one", URL: "https://city.org/recycling"},
		{Title: "Page two", URL: "https://city.org/faq"},
		{Title: "Other site", URL: "https://other.org/rules"},
	}

	sources := dedupeSources(results)

	require.Len(t, sources, 2)
	assert.Equal(t, "Page one", sources[0].Title)
	assert.Equal(t, "https://city.org/recycling", sources[0].URL)
	assert.Equal(t, "https://other.org/rules", sources[1].URL)
}

// Unparseable or host-less URLs are kept as citations rather than dropped.
func TestDedupeSourcesKeepsBadURLs(t *testing.T) {
	results := []model.SearchResult{
		{Title: "Broken", URL: "://missing-scheme"},
		{Title: "Relative", URL: "just-a-path"},
	}

	sources := dedupeSources(results)

	require.Len(t, sources, 2)
	assert.Equal(t, "://missing-scheme", sources[0].URL)
	assert.Equal(t, "just-a-path", sources[1].URL)
}
