package rules

import (
	"strings"

	"github.com/AnthonyP05/WizardsOfWaverlyHacks/internal/core/model"
	"github.com/AnthonyP05/WizardsOfWaverlyHacks/internal/core/taxonomy"
)

// accumulator tracks, for one rule-building pass, which source URLs mentioned
// each canonical material and the first care note discovered for it. Keys
// keep first-seen order so aggregation stays deterministic.
type accumulator struct {
	order   []string
	sources map[string]map[string]bool
	notes   map[string]string
}

func newAccumulator() *accumulator {
	return &accumulator{
		sources: make(map[string]map[string]bool),
		notes:   make(map[string]string),
	}
}

func (a *accumulator) addSource(material, url string) {
	set, ok := a.sources[material]
	if !ok {
		set = make(map[string]bool)
		a.sources[material] = set
		a.order = append(a.order, material)
	}
	set[url] = true
}

// setNoteOnce records a note for a material only the first time one is found
// across the batch. Later results never overwrite it.
func (a *accumulator) setNoteOnce(material, note string) {
	if note == "" {
		return
	}
	if _, ok := a.notes[material]; !ok {
		a.notes[material] = note
	}
}

// scanResult matches one search result's snippet against both taxonomy
// categories, recording source attribution and care notes into the batch
// accumulators.
func scanResult(result model.SearchResult, accepted, notAccepted *accumulator) {
	snippet := strings.ToLower(result.Snippet)
	if snippet == "" {
		return
	}

	// First synonym hit wins per material per result. Additional synonyms of
	// the same material in the same snippet add no information.
	for _, mat := range taxonomy.Accepted {
		for _, syn := range mat.Synonyms {
			idx := strings.Index(snippet, syn)
			if idx < 0 {
				continue
			}
			accepted.addSource(mat.Name, result.URL)
			accepted.setNoteOnce(mat.Name, extractNote(snippet, idx))
			break
		}
	}

	rejecting := taxonomy.HasRejectionContext(snippet)
	for _, mat := range taxonomy.NotAccepted {
		for _, syn := range mat.Synonyms {
			idx := strings.Index(snippet, syn)
			if idx < 0 {
				continue
			}
			// A bare mention is not a restriction: require negating language
			// in the snippet unless the material is universally excluded.
			if !rejecting && !taxonomy.AlwaysExcluded(syn) {
				break
			}
			notAccepted.addSource(mat.Name, result.URL)
			notAccepted.setNoteOnce(mat.Name, extractNote(snippet, idx))
			break
		}
	}
}
