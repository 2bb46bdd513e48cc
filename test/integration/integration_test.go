//go:build integration

package integration

import (
	"context"
	"os"
	"testing"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnthonyP05/WizardsOfWaverlyHacks/internal/config"
	"github.com/AnthonyP05/WizardsOfWaverlyHacks/internal/core"
	"github.com/AnthonyP05/WizardsOfWaverlyHacks/internal/core/model"
	"github.com/AnthonyP05/WizardsOfWaverlyHacks/internal/driver"
)

// stubSearch replays canned results and counts calls, so the test can tell a
// cache hit from a fresh build.
type stubSearch struct {
	calls int
}

func (s *stubSearch) Search(ctx context.Context, query string) ([]model.SearchResult, error) {
	s.calls++
	return []model.SearchResult{
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
	}, nil
}

func newTestAssistant(t *testing.T) (*core.Assistant, *stubSearch) {
	t.Helper()
	_ = godotenv.Load("../../.env")

	uri := os.Getenv("MEMGRAPH_URI")
	if uri == "" {
		t.Skip("MEMGRAPH_URI not set, skipping integration test")
	}

	d, err := driver.NewMemgraphDriver(uri, os.Getenv("MEMGRAPH_USER"), os.Getenv("MEMGRAPH_PASSWORD"))
	require.NoError(t, err)
	t.Cleanup(func() { d.Close(context.Background()) })

	searchClient := &stubSearch{}
	a := core.NewAssistant(d, searchClient, nil, nil, nil, &config.Config{})
	require.NoError(t, a.BuildIndices(context.Background()))
	return a, searchClient
}

func TestRulesCacheRoundTrip(t *testing.T) {
	a, searchClient := newTestAssistant(t)
	ctx := context.Background()

	// Use a ZIP unlikely to collide with real data and clear any leftovers.
	const zip = "99990"
	_, err := a.Driver.ExecuteQuery(ctx, `MATCH (l:Location {zip: $zip}) DETACH DELETE l`, map[string]interface{}{"zip": zip})
	require.NoError(t, err)

	first := a.GetRules(ctx, zip)
	require.Empty(t, first.Error)
	assert.Equal(t, 1, searchClient.calls)
	assert.Equal(t, "Beverly Hills, CA", first.Location)
	assert.NotEmpty(t, first.Accepted)
	assert.NotEmpty(t, first.NotAccepted)

	second := a.GetRules(ctx, zip)
	assert.Equal(t, 1, searchClient.calls, "second lookup must come from the cache")
	assert.Equal(t, first.Location, second.Location)
	assert.Equal(t, len(first.Accepted), len(second.Accepted))
	assert.Equal(t, len(first.NotAccepted), len(second.NotAccepted))
	assert.ElementsMatch(t, first.Tips, second.Tips)
}

func TestCompareAgainstCachedRules(t *testing.T) {
	a, _ := newTestAssistant(t)
	ctx := context.Background()

	items := []model.DetectedItem{
		{Name: "plastic bottle", Materials: []string{"plastic"}, Confidence: "high"},
		{Name: "grocery bag", Materials: []string{"plastic film"}, Confidence: "medium"},
	}

	c := a.CompareItems(ctx, "99990", items)

	require.Len(t, c.Items, 2)
	assert.Equal(t, model.StatusRecyclable, c.Items[0].OverallStatus)
	assert.Equal(t, model.StatusNotRecyclable, c.Items[1].OverallStatus)
	assert.Equal(t, 2, c.Summary.Total)
}
