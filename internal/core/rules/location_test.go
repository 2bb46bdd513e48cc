package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AnthonyP05/WizardsOfWaverlyHacks/internal/core/model"
)

func TestResolveLocationTitleCityState(t *testing.T) {
	results := []model.SearchResult{
		{Title: "Recycling Rules | Beverly Hills, CA", URL: "https://example.com/a"},
	}
	assert.Equal(t, "Beverly Hills, CA", resolveLocation("90210", results))
}

func TestResolveLocationTitleSuffix(t *testing.T) {
	results := []model.SearchResult{
		{Title: "Los Angeles County Recycling Guide", URL: "https://example.com/a"},
	}
	assert.Equal(t, "Los Angeles County", resolveLocation("90001", results))
}

func TestResolveLocationGovHost(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://www.beverlyhills.gov/recycling", "Beverly Hills"},
		{"https://santamonicacity.org/trash", "Santa Monica"},
		{"https://www.cityofsandiego.gov/recycling", "San Diego"},
		{"https://greenville.org/solid-waste", "Greenville"},
	}
	for _, tt := range tests {
		results := []model.SearchResult{{Title: "Trash and Recycling", URL: tt.url}}
		assert.Equal(t, tt.want, resolveLocation("00000", results), tt.url)
	}
}

func TestResolveLocationFallback(t *testing.T) {
	results := []model.SearchResult{
		{Title: "Where does your trash go?", URL: "https://example.com/article"},
	}
	assert.Equal(t, "ZIP 90210", resolveLocation("90210", results))
	assert.Equal(t, "ZIP 90210", resolveLocation("90210", nil))
}

func TestResolveLocationFirstMatchWins(t *testing.T) {
	results := []model.SearchResult{
		{Title: "Blog post", URL: "https://example.com/a"},
		{Title: "Guide | Santa Monica, CA", URL: "https://www.beverlyhills.gov/b"},
		{Title: "Other | Long Beach, CA", URL: "https://example.com/c"},
	}
	assert.Equal(t, "Santa Monica, CA", resolveLocation("90401", results))
}
