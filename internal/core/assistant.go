// Package core wires the external collaborators (search, geocoding, vision,
// the rules cache) around the pure rule-extraction and comparison logic.
package core

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/AnthonyP05/WizardsOfWaverlyHacks/internal/config"
	"github.com/AnthonyP05/WizardsOfWaverlyHacks/internal/core/compare"
	"github.com/AnthonyP05/WizardsOfWaverlyHacks/internal/core/detect"
	"github.com/AnthonyP05/WizardsOfWaverlyHacks/internal/core/guidance"
	"github.com/AnthonyP05/WizardsOfWaverlyHacks/internal/core/model"
	"github.com/AnthonyP05/WizardsOfWaverlyHacks/internal/core/rules"
	"github.com/AnthonyP05/WizardsOfWaverlyHacks/internal/driver"
	"github.com/AnthonyP05/WizardsOfWaverlyHacks/internal/geocode"
	"github.com/AnthonyP05/WizardsOfWaverlyHacks/internal/llm"
	"github.com/AnthonyP05/WizardsOfWaverlyHacks/internal/search"
)

type Assistant struct {
	Driver     driver.GraphDriver
	Search     search.Client
	LLM        llm.LLMClient
	Geocoder   *geocode.Client
	Reranker   llm.RerankerClient
	Detector   *detect.Detector
	Summarizer *guidance.Summarizer

	CacheTTL time.Duration
}

func NewAssistant(d driver.GraphDriver, searchClient search.Client, llmClient llm.LLMClient, visionClient llm.VisionClient, geocoder *geocode.Client, cfg *config.Config) *Assistant {
	a := &Assistant{
		Driver:   d,
		Search:   searchClient,
		LLM:      llmClient,
		Geocoder: geocoder,
		CacheTTL: 7 * 24 * time.Hour,
	}
	if visionClient != nil {
		a.Detector = detect.NewDetector(visionClient, cfg.Prompts.Detection)
	}
	if llmClient != nil {
		a.Summarizer = guidance.NewSummarizer(llmClient, cfg.Prompts.Guidance)
		if cfg.Search.Rerank {
			a.Reranker = llm.NewSimpleLLMReranker(llmClient)
		}
	}
	return a
}

func (a *Assistant) BuildIndices(ctx context.Context) error {
	if a.Driver == nil {
		return nil
	}
	return a.Driver.BuildIndices(ctx)
}

// GetRules returns the recycling rules for a ZIP code: from the cache when a
// fresh entry exists, otherwise from a new search-and-extract pass. Degraded
// upstream calls surface in the record's Error field, never as a Go error.
func (a *Assistant) GetRules(ctx context.Context, zip string) model.Rules {
	if cached := a.loadCachedRules(ctx, zip); cached != nil {
		return *cached
	}

	query := a.buildQuery(ctx, zip)

	var results []model.SearchResult
	if a.Search != nil {
		var err error
		results, err = a.Search.Search(ctx, query)
		if err != nil {
			log.Printf("Search failed for ZIP %s: %v", zip, err)
			results = nil
		}
	}

	if a.Reranker != nil && len(results) > 1 {
		results = a.rerank(ctx, query, results)
	}

	r := rules.Build(zip, results)

	if r.Error == "" {
		a.saveCachedRules(ctx, zip, r)
	}
	return r
}

// ScanImage runs the vision detector on a photo and compares the detected
// items against the location's rules.
func (a *Assistant) ScanImage(ctx context.Context, zip string, imageB64 string, mimeType string) (model.Comparison, []model.DetectedItem, error) {
	if a.Detector == nil {
		return model.Comparison{}, nil, fmt.Errorf("no vision provider configured")
	}

	items, err := a.Detector.DetectItems(ctx, imageB64, mimeType)
	if err != nil {
		return model.Comparison{}, nil, err
	}

	r := a.GetRules(ctx, zip)
	return compare.Compare(items, r), items, nil
}

// CompareItems classifies caller-supplied detected items against the
// location's rules.
func (a *Assistant) CompareItems(ctx context.Context, zip string, items []model.DetectedItem) model.Comparison {
	r := a.GetRules(ctx, zip)
	return compare.Compare(items, r)
}

// Guidance renders a short natural-language summary of a rule set, or ""
// when no chat provider is configured or the call fails.
func (a *Assistant) Guidance(ctx context.Context, r model.Rules) string {
	if a.Summarizer == nil {
		return ""
	}
	text, err := a.Summarizer.Summarize(ctx, r)
	if err != nil {
		log.Printf("Failed to generate guidance: %v", err)
		return ""
	}
	return text
}

func (a *Assistant) buildQuery(ctx context.Context, zip string) string {
	if a.Geocoder != nil {
		place, err := a.Geocoder.PlaceName(ctx, zip)
		if err == nil {
			return fmt.Sprintf("%s recycling rules accepted materials %s", place, zip)
		}
		log.Printf("Geocoding failed for ZIP %s: %v", zip, err)
	}
	return fmt.Sprintf("recycling rules accepted materials ZIP %s", zip)
}

func (a *Assistant) rerank(ctx context.Context, query string, results []model.SearchResult) []model.SearchResult {
	docs := make([]string, len(results))
	for i, r := range results {
		docs[i] = r.Title + " " + r.Snippet
	}

	indices, err := a.Reranker.Rank(ctx, query, docs)
	if err != nil || len(indices) != len(results) {
		return results
	}

	ordered := make([]model.SearchResult, 0, len(results))
	for _, idx := range indices {
		ordered = append(ordered, results[idx])
	}
	return ordered
}
