package core

import (
	"context"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/AnthonyP05/WizardsOfWaverlyHacks/internal/core/model"
)

// MockGraphDriver records every executed query and replays canned results
// keyed by query text.
type MockGraphDriver struct {
	Queries []string
	Params  []map[string]interface{}
	Results map[string]neo4j.EagerResult
	Err     error
}

func (m *MockGraphDriver) ExecuteQuery(ctx context.Context, query string, params map[string]interface{}) (neo4j.EagerResult, error) {
	m.Queries = append(m.Queries, query)
	m.Params = append(m.Params, params)
	if m.Err != nil {
		return neo4j.EagerResult{}, m.Err
	}
	if m.Results != nil {
		if res, ok := m.Results[query]; ok {
			return res, nil
		}
	}
	return neo4j.EagerResult{}, nil
}

func (m *MockGraphDriver) BuildIndices(ctx context.Context) error { return m.Err }

func (m *MockGraphDriver) Close(ctx context.Context) error { return nil }

// Executed reports whether a query was run at least once.
func (m *MockGraphDriver) Executed(query string) bool {
	for _, q := range m.Queries {
		if q == query {
			return true
		}
	}
	return false
}

type MockSearchClient struct {
	Results []model.SearchResult
	Queries []string
	Err     error
}

func (m *MockSearchClient) Search(ctx context.Context, query string) ([]model.SearchResult, error) {
	m.Queries = append(m.Queries, query)
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Results, nil
}

type MockLLMClient struct {
	Response string
	Prompts  []string
	Err      error
}

func (m *MockLLMClient) Generate(ctx context.Context, prompt string) (string, error) {
	m.Prompts = append(m.Prompts, prompt)
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}
