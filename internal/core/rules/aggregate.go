package rules

import (
	"sort"
	"strings"

	"github.com/AnthonyP05/WizardsOfWaverlyHacks/internal/core/model"
)

// Default notes applied when no care instruction was extracted.
const (
	noteMultiSource   = "Confirmed by multiple sources"
	noteSingleSource  = "Verify with local guidelines"
	noteVerify        = "Verify with source"
	noteCheckDisposal = "Check local guidelines for disposal"
)

func confidenceFor(count int) string {
	if count >= 2 {
		return model.ConfidenceHigh
	}
	return model.ConfidenceMedium
}

// buildAccepted turns the accepted accumulator into an ordered entry list:
// multi-source materials first (source count descending, then name), then
// single-source materials alphabetically.
func buildAccepted(acc *accumulator) []model.MaterialEntry {
	var multi, single []model.MaterialEntry
	for _, name := range acc.order {
		count := len(acc.sources[name])
		entry := model.MaterialEntry{
			Material:    name,
			Notes:       acc.notes[name],
			Confidence:  confidenceFor(count),
			SourceCount: count,
		}
		if count >= 2 {
			multi = append(multi, entry)
			continue
		}
		if entry.Notes == "" {
			entry.Notes = noteSingleSource
		}
		single = append(single, entry)
	}

	sort.SliceStable(multi, func(i, j int) bool {
		if multi[i].SourceCount != multi[j].SourceCount {
			return multi[i].SourceCount > multi[j].SourceCount
		}
		return multi[i].Material < multi[j].Material
	})
	sort.SliceStable(single, func(i, j int) bool {
		return single[i].Material < single[j].Material
	})

	return append(multi, single...)
}

// buildNotAccepted orders restricted materials by source count descending,
// then name. No multi/single split on this side.
func buildNotAccepted(acc *accumulator) []model.MaterialEntry {
	var entries []model.MaterialEntry
	for _, name := range acc.order {
		count := len(acc.sources[name])
		entries = append(entries, model.MaterialEntry{
			Material:    name,
			Notes:       acc.notes[name],
			Confidence:  confidenceFor(count),
			SourceCount: count,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].SourceCount != entries[j].SourceCount {
			return entries[i].SourceCount > entries[j].SourceCount
		}
		return entries[i].Material < entries[j].Material
	})

	return entries
}

// dedupeEntries collapses overlapping canonical names, keeping the more
// specific one ("Glass" folds into "Glass Bottles"). Candidates are walked
// longest name first; a candidate is dropped when any of its words longer
// than three characters already appears inside a retained name. Survivors
// are re-sorted by source count for final output order.
func dedupeEntries(entries []model.MaterialEntry) []model.MaterialEntry {
	if len(entries) < 2 {
		return entries
	}

	candidates := make([]model.MaterialEntry, len(entries))
	copy(candidates, entries)
	sort.SliceStable(candidates, func(i, j int) bool {
		return len(candidates[i].Material) > len(candidates[j].Material)
	})

	var kept []model.MaterialEntry
	var seen []string
	for _, cand := range candidates {
		dup := false
		for _, word := range strings.Fields(strings.ToLower(cand.Material)) {
			if len(word) <= 3 {
				continue
			}
			for _, name := range seen {
				if strings.Contains(name, word) {
					dup = true
					break
				}
			}
			if dup {
				break
			}
		}
		if dup {
			continue
		}
		kept = append(kept, cand)
		seen = append(seen, strings.ToLower(cand.Material))
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].SourceCount > kept[j].SourceCount
	})

	return kept
}

// applyDefaultNotes fills category-appropriate notes so no entry ships blank.
func applyDefaultNotes(entries []model.MaterialEntry, accepted bool) {
	for i := range entries {
		if entries[i].Notes != "" {
			continue
		}
		switch {
		case !accepted:
			entries[i].Notes = noteCheckDisposal
		case entries[i].Confidence == model.ConfidenceHigh:
			entries[i].Notes = noteMultiSource
		default:
			entries[i].Notes = noteVerify
		}
	}
}
