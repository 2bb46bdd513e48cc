package core

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/AnthonyP05/WizardsOfWaverlyHacks/internal/core/model"
	"github.com/AnthonyP05/WizardsOfWaverlyHacks/internal/driver"
)

// loadCachedRules returns a fresh cached rule set for the ZIP, or nil on
// miss, staleness, or any storage error (all treated as a cache miss).
func (a *Assistant) loadCachedRules(ctx context.Context, zip string) *model.Rules {
	if a.Driver == nil {
		return nil
	}

	params := map[string]interface{}{"zip": zip}

	locRes, err := a.Driver.ExecuteQuery(ctx, driver.GetLocationQuery, params)
	if err != nil {
		log.Printf("Rules cache lookup failed for ZIP %s: %v", zip, err)
		return nil
	}
	if len(locRes.Records) == 0 {
		return nil
	}

	rec := locRes.Records[0]
	updatedAt, ok := recordTime(rec, "updated_at")
	if !ok || time.Since(updatedAt) > a.CacheTTL {
		return nil
	}

	r := model.Rules{
		Location:    recordString(rec, "display_name"),
		Accepted:    []model.MaterialEntry{},
		NotAccepted: []model.MaterialEntry{},
		Tips:        recordStrings(rec, "tips"),
		Sources:     []model.Source{},
		Meta: model.RulesMeta{
			SourcesAnalyzed: recordInt(rec, "sources_analyzed"),
			MaterialsFound:  recordInt(rec, "materials_found"),
		},
	}

	accRes, err := a.Driver.ExecuteQuery(ctx, driver.GetAcceptedQuery, params)
	if err != nil {
		return nil
	}
	for _, entry := range accRes.Records {
		r.Accepted = append(r.Accepted, recordEntry(entry))
	}

	rejRes, err := a.Driver.ExecuteQuery(ctx, driver.GetRejectedQuery, params)
	if err != nil {
		return nil
	}
	for _, entry := range rejRes.Records {
		r.NotAccepted = append(r.NotAccepted, recordEntry(entry))
	}

	srcRes, err := a.Driver.ExecuteQuery(ctx, driver.GetCitedSourcesQuery, params)
	if err != nil {
		return nil
	}
	for _, src := range srcRes.Records {
		r.Sources = append(r.Sources, model.Source{
			Title: recordString(src, "title"),
			URL:   recordString(src, "url"),
		})
	}

	if len(r.Accepted) == 0 && len(r.NotAccepted) == 0 {
		return nil
	}
	return &r
}

// saveCachedRules persists a successful build. Storage failures only log:
// the freshly built record is already in hand.
func (a *Assistant) saveCachedRules(ctx context.Context, zip string, r model.Rules) {
	if a.Driver == nil {
		return
	}

	locParams := map[string]interface{}{
		"zip":              zip,
		"display_name":     r.Location,
		"tips":             r.Tips,
		"sources_analyzed": r.Meta.SourcesAnalyzed,
		"materials_found":  r.Meta.MaterialsFound,
		"updated_at":       time.Now().UTC(),
	}
	if _, err := a.Driver.ExecuteQuery(ctx, driver.SaveLocationQuery, locParams); err != nil {
		log.Printf("Failed to cache rules for ZIP %s: %v", zip, err)
		return
	}

	if _, err := a.Driver.ExecuteQuery(ctx, driver.ClearLocationRulesQuery, map[string]interface{}{"zip": zip}); err != nil {
		log.Printf("Failed to clear stale rules for ZIP %s: %v", zip, err)
		return
	}

	saveEdges := func(query string, entries []model.MaterialEntry) {
		for _, e := range entries {
			params := map[string]interface{}{
				"zip":          zip,
				"uuid":         uuid.New().String(),
				"name":         e.Material,
				"notes":        e.Notes,
				"confidence":   e.Confidence,
				"source_count": e.SourceCount,
			}
			if _, err := a.Driver.ExecuteQuery(ctx, query, params); err != nil {
				log.Printf("Failed to cache material '%s' for ZIP %s: %v", e.Material, zip, err)
			}
		}
	}
	saveEdges(driver.SaveAcceptedEdgeQuery, r.Accepted)
	saveEdges(driver.SaveRejectedEdgeQuery, r.NotAccepted)

	for _, s := range r.Sources {
		params := map[string]interface{}{
			"zip":   zip,
			"uuid":  uuid.New().String(),
			"url":   s.URL,
			"title": s.Title,
		}
		if _, err := a.Driver.ExecuteQuery(ctx, driver.SaveCitedSourceQuery, params); err != nil {
			log.Printf("Failed to cache source '%s' for ZIP %s: %v", s.URL, zip, err)
		}
	}
}

func recordString(rec *neo4j.Record, key string) string {
	if v, ok := rec.Get(key); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func recordInt(rec *neo4j.Record, key string) int {
	if v, ok := rec.Get(key); ok {
		if n, ok := v.(int64); ok {
			return int(n)
		}
	}
	return 0
}

func recordStrings(rec *neo4j.Record, key string) []string {
	out := []string{}
	if v, ok := rec.Get(key); ok {
		if list, ok := v.([]interface{}); ok {
			for _, item := range list {
				if s, ok := item.(string); ok {
					out = append(out, s)
				}
			}
		}
	}
	return out
}

func recordTime(rec *neo4j.Record, key string) (time.Time, bool) {
	if v, ok := rec.Get(key); ok {
		if t, ok := v.(time.Time); ok {
			return t, true
		}
	}
	return time.Time{}, false
}

func recordEntry(rec *neo4j.Record) model.MaterialEntry {
	return model.MaterialEntry{
		Material:    recordString(rec, "name"),
		Notes:       recordString(rec, "notes"),
		Confidence:  recordString(rec, "confidence"),
		SourceCount: recordInt(rec, "source_count"),
	}
}
