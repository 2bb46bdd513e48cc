package core

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnthonyP05/WizardsOfWaverlyHacks/internal/config"
	"github.com/AnthonyP05/WizardsOfWaverlyHacks/internal/core/detect"
	"github.com/AnthonyP05/WizardsOfWaverlyHacks/internal/core/model"
	"github.com/AnthonyP05/WizardsOfWaverlyHacks/internal/driver"
)

var searchFixture = []model.SearchResult{
	{
		Title:   "Curbside Recycling | Beverly Hills, CA",
		URL:     "https://www.beverlyhills.gov/recycling",
		Snippet: "please rinse plastic bottles before recycling; plastic bags are not accepted",
	},
	{
		Title:   "Recycling guide",
		URL:     "https://guide.example.com/recycling",
		Snippet: "aluminum cans and plastic bottles are accepted curbside",
	},
}

func makeRecord(keys []string, values []interface{}) *neo4j.Record {
	return &neo4j.Record{Keys: keys, Values: values}
}

func TestGetRulesBuildsFromSearch(t *testing.T) {
	searchClient := &MockSearchClient{Results: searchFixture}
	a := NewAssistant(nil, searchClient, nil, nil, nil, &config.Config{})

	r := a.GetRules(context.Background(), "90210")

	assert.Empty(t, r.Error)
	assert.Equal(t, "Beverly Hills, CA", r.Location)
	assert.NotEmpty(t, r.Accepted)
	assert.Equal(t, 2, r.Meta.SourcesAnalyzed)

	require.Len(t, searchClient.Queries, 1)
	assert.Equal(t, "recycling rules accepted materials ZIP 90210", searchClient.Queries[0])
}

func TestGetRulesSearchError(t *testing.T) {
	searchClient := &MockSearchClient{Err: errors.New("search unavailable")}
	a := NewAssistant(nil, searchClient, nil, nil, nil, &config.Config{})

	r := a.GetRules(context.Background(), "90210")

	assert.NotEmpty(t, r.Error)
	assert.Equal(t, "ZIP 90210", r.Location)
	assert.Empty(t, r.Accepted)
}

func TestGetRulesCachesOnSuccess(t *testing.T) {
	d := &MockGraphDriver{}
	searchClient := &MockSearchClient{Results: searchFixture}
	a := NewAssistant(d, searchClient, nil, nil, nil, &config.Config{})

	a.GetRules(context.Background(), "90210")

	assert.True(t, d.Executed(driver.SaveLocationQuery))
	assert.True(t, d.Executed(driver.ClearLocationRulesQuery))
	assert.True(t, d.Executed(driver.SaveAcceptedEdgeQuery))
	assert.True(t, d.Executed(driver.SaveRejectedEdgeQuery))
	assert.True(t, d.Executed(driver.SaveCitedSourceQuery))
}

func TestGetRulesSkipsCacheOnDegradedBuild(t *testing.T) {
	d := &MockGraphDriver{}
	searchClient := &MockSearchClient{}
	a := NewAssistant(d, searchClient, nil, nil, nil, &config.Config{})

	r := a.GetRules(context.Background(), "90210")

	assert.NotEmpty(t, r.Error)
	assert.False(t, d.Executed(driver.SaveLocationQuery))
}

func cachedFixture(updatedAt time.Time) map[string]neo4j.EagerResult {
	locKeys := []string{"display_name", "tips", "sources_analyzed", "materials_found", "updated_at"}
	entryKeys := []string{"name", "notes", "confidence", "source_count"}
	return map[string]neo4j.EagerResult{
		driver.GetLocationQuery: {
			Keys: locKeys,
			Records: []*neo4j.Record{makeRecord(locKeys, []interface{}{
				"Beverly Hills, CA",
				[]interface{}{"Rinse containers before recycling"},
				int64(2),
				int64(2),
				updatedAt,
			})},
		},
		driver.GetAcceptedQuery: {
			Keys: entryKeys,
			Records: []*neo4j.Record{makeRecord(entryKeys, []interface{}{
				"Plastic Bottles", "Rinse before recycling", model.ConfidenceHigh, int64(2),
			})},
		},
		driver.GetRejectedQuery: {
			Keys: entryKeys,
			Records: []*neo4j.Record{makeRecord(entryKeys, []interface{}{
				"Plastic Bags", "Check local guidelines for disposal", model.ConfidenceMedium, int64(1),
			})},
		},
		driver.GetCitedSourcesQuery: {
			Keys: []string{"title", "url"},
			Records: []*neo4j.Record{makeRecord([]string{"title", "url"}, []interface{}{
				"Curbside Recycling | Beverly Hills, CA", "https://www.beverlyhills.gov/recycling",
			})},
		},
	}
}

func TestGetRulesCacheHit(t *testing.T) {
	d := &MockGraphDriver{Results: cachedFixture(time.Now().UTC())}
	searchClient := &MockSearchClient{Results: searchFixture}
	a := NewAssistant(d, searchClient, nil, nil, nil, &config.Config{})

	r := a.GetRules(context.Background(), "90210")

	assert.Empty(t, searchClient.Queries, "cache hit must not trigger a search")
	assert.Equal(t, "Beverly Hills, CA", r.Location)
	require.Len(t, r.Accepted, 1)
	assert.Equal(t, model.MaterialEntry{
		Material:    "Plastic Bottles",
		Notes:       "Rinse before recycling",
		Confidence:  model.ConfidenceHigh,
		SourceCount: 2,
	}, r.Accepted[0])
	require.Len(t, r.NotAccepted, 1)
	assert.Equal(t, "Plastic Bags", r.NotAccepted[0].Material)
	assert.Equal(t, []string{"Rinse containers before recycling"}, r.Tips)
	require.Len(t, r.Sources, 1)
	assert.Equal(t, "https://www.beverlyhills.gov/recycling", r.Sources[0].URL)
	assert.Equal(t, 2, r.Meta.SourcesAnalyzed)
}

func TestGetRulesStaleCacheRebuilds(t *testing.T) {
	stale := time.Now().UTC().Add(-8 * 24 * time.Hour)
	d := &MockGraphDriver{Results: cachedFixture(stale)}
	searchClient := &MockSearchClient{Results: searchFixture}
	a := NewAssistant(d, searchClient, nil, nil, nil, &config.Config{})

	r := a.GetRules(context.Background(), "90210")

	assert.Len(t, searchClient.Queries, 1)
	assert.Empty(t, r.Error)
}

func TestGetRulesCacheErrorFallsThrough(t *testing.T) {
	d := &MockGraphDriver{Err: errors.New("connection refused")}
	searchClient := &MockSearchClient{Results: searchFixture}
	a := NewAssistant(d, searchClient, nil, nil, nil, &config.Config{})

	r := a.GetRules(context.Background(), "90210")

	assert.Len(t, searchClient.Queries, 1)
	assert.Equal(t, "Beverly Hills, CA", r.Location)
}

func TestCompareItems(t *testing.T) {
	searchClient := &MockSearchClient{Results: searchFixture}
	a := NewAssistant(nil, searchClient, nil, nil, nil, &config.Config{})

	items := []model.DetectedItem{
		{Name: "plastic bottle", Materials: []string{"plastic"}},
		{Name: "grocery bag", Materials: []string{"plastic film"}},
	}

	c := a.CompareItems(context.Background(), "90210", items)

	assert.Equal(t, "Beverly Hills, CA", c.Location)
	require.Len(t, c.Items, 2)
	assert.Equal(t, model.StatusRecyclable, c.Items[0].OverallStatus)
	assert.Equal(t, model.StatusNotRecyclable, c.Items[1].OverallStatus)
	assert.Equal(t, model.ComparisonSummary{Recyclable: 1, NotRecyclable: 1, Total: 2}, c.Summary)
}

func TestScanImage(t *testing.T) {
	searchClient := &MockSearchClient{Results: searchFixture}
	vision := &detect.MockVisionClient{
		Response: `{"items": [{"name": "water bottle", "materials": ["plastic"], "confidence": "high", "preparation": "rinse and empty"}]}`,
	}
	a := NewAssistant(nil, searchClient, nil, vision, nil, &config.Config{})

	c, items, err := a.ScanImage(context.Background(), "90210", "aGVsbG8=", "image/jpeg")

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "water bottle", items[0].Name)
	require.Len(t, c.Items, 1)
	assert.Equal(t, model.StatusRecyclable, c.Items[0].OverallStatus)
}

func TestScanImageNoVisionProvider(t *testing.T) {
	a := NewAssistant(nil, &MockSearchClient{}, nil, nil, nil, &config.Config{})

	_, _, err := a.ScanImage(context.Background(), "90210", "aGVsbG8=", "")

	assert.Error(t, err)
}

func TestScanImageDetectionError(t *testing.T) {
	vision := &detect.MockVisionClient{Err: errors.New("provider unavailable")}
	a := NewAssistant(nil, &MockSearchClient{}, nil, vision, nil, &config.Config{})

	_, _, err := a.ScanImage(context.Background(), "90210", "aGVsbG8=", "")

	assert.Error(t, err)
}

func TestGuidance(t *testing.T) {
	llmClient := &MockLLMClient{Response: "Recycle bottles and cans. Skip bags."}
	a := NewAssistant(nil, &MockSearchClient{Results: searchFixture}, llmClient, nil, nil, &config.Config{})

	text := a.Guidance(context.Background(), a.GetRules(context.Background(), "90210"))

	assert.Equal(t, "Recycle bottles and cans. Skip bags.", text)
	require.Len(t, llmClient.Prompts, 1)
	assert.Contains(t, llmClient.Prompts[0], "Beverly Hills, CA")
}

func TestGuidanceNoLLM(t *testing.T) {
	a := NewAssistant(nil, &MockSearchClient{}, nil, nil, nil, &config.Config{})
	assert.Empty(t, a.Guidance(context.Background(), model.Rules{}))
}

func TestGetRulesReranks(t *testing.T) {
	llmClient := &MockLLMClient{Response: "1, 0"}
	searchClient := &MockSearchClient{Results: searchFixture}
	cfg := &config.Config{}
	cfg.Search.Rerank = true
	a := NewAssistant(nil, searchClient, llmClient, nil, nil, cfg)

	r := a.GetRules(context.Background(), "90210")

	// After reranking the guide result leads; location resolution falls
	// through its title and URL before reaching the city page.
	assert.Equal(t, "Beverly Hills, CA", r.Location)
	require.Len(t, llmClient.Prompts, 1)
	assert.Contains(t, llmClient.Prompts[0], "search relevance")
}

func TestBuildIndicesNilDriver(t *testing.T) {
	a := NewAssistant(nil, &MockSearchClient{}, nil, nil, nil, &config.Config{})
	assert.NoError(t, a.BuildIndices(context.Background()))
}
