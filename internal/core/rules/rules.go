// Package rules extracts structured, location-specific recycling rules from
// unstructured web-search snippets: which materials a program accepts or
// rejects, how confident each rule is, care notes, preparation tips, and
// source citations.
package rules

import (
	"github.com/AnthonyP05/WizardsOfWaverlyHacks/internal/core/model"
)

const errNoResults = "no search results to analyze - try a different ZIP code"

// Build scans a batch of search results into a Rules record for the given
// ZIP code. It never returns a Go error: degraded states, including an empty
// batch, are represented in the output itself.
func Build(zip string, results []model.SearchResult) model.Rules {
	if len(results) == 0 {
		return model.Rules{
			Location:    "ZIP " + zip,
			Accepted:    []model.MaterialEntry{},
			NotAccepted: []model.MaterialEntry{},
			Tips:        []string{},
			Sources:     []model.Source{},
			Error:       errNoResults,
		}
	}

	acceptedAcc := newAccumulator()
	notAcceptedAcc := newAccumulator()
	for _, r := range results {
		scanResult(r, acceptedAcc, notAcceptedAcc)
	}

	accepted := dedupeEntries(buildAccepted(acceptedAcc))
	notAccepted := dedupeEntries(buildNotAccepted(notAcceptedAcc))

	// A material cannot sit on both sides of the same rule set; the
	// restriction wins.
	rejected := make(map[string]bool, len(notAccepted))
	for _, e := range notAccepted {
		rejected[e.Material] = true
	}
	filtered := make([]model.MaterialEntry, 0, len(accepted))
	for _, e := range accepted {
		if !rejected[e.Material] {
			filtered = append(filtered, e)
		}
	}
	accepted = filtered

	applyDefaultNotes(accepted, true)
	applyDefaultNotes(notAccepted, false)

	materialsFound := len(accepted) + len(notAccepted)
	if len(accepted) == 0 {
		accepted = []model.MaterialEntry{{
			Material:   "See sources below",
			Notes:      "Could not extract specific materials",
			Confidence: model.ConfidenceLow,
		}}
	}
	if notAccepted == nil {
		notAccepted = []model.MaterialEntry{}
	}

	return model.Rules{
		Location:    resolveLocation(zip, results),
		Accepted:    accepted,
		NotAccepted: notAccepted,
		Tips:        extractTips(results),
		Sources:     dedupeSources(results),
		Meta: model.RulesMeta{
			SourcesAnalyzed: len(results),
			MaterialsFound:  materialsFound,
		},
	}
}
