// Package compare reconciles vision-detected items against a location's
// recycling rules and the global material taxonomy, producing per-item and
// aggregate recyclability verdicts.
package compare

import (
	"strings"

	"github.com/AnthonyP05/WizardsOfWaverlyHacks/internal/core/model"
	"github.com/AnthonyP05/WizardsOfWaverlyHacks/internal/core/taxonomy"
)

const (
	reasonNotAccepted = "Not accepted in curbside recycling"
	reasonUnknown     = "Material not recognized - check local guidelines"
)

// vocabulary is an ordered lower-cased term list. Order fixes the winner when
// several candidates share the same specificity.
type vocabulary struct {
	terms []string
	seen  map[string]bool
}

func newVocabulary() *vocabulary {
	return &vocabulary{seen: make(map[string]bool)}
}

func (v *vocabulary) add(term string) {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" || v.seen[term] {
		return
	}
	v.seen[term] = true
	v.terms = append(v.terms, term)
}

// buildVocabularies unions the global taxonomy (names and synonyms) with the
// location's extracted rule names, per category.
func buildVocabularies(rules model.Rules) (accepted, notAccepted *vocabulary) {
	accepted = newVocabulary()
	for _, mat := range taxonomy.Accepted {
		accepted.add(mat.Name)
		for _, syn := range mat.Synonyms {
			accepted.add(syn)
		}
	}
	for _, e := range rules.Accepted {
		accepted.add(e.Material)
	}

	notAccepted = newVocabulary()
	for _, mat := range taxonomy.NotAccepted {
		notAccepted.add(mat.Name)
		for _, syn := range mat.Synonyms {
			notAccepted.add(syn)
		}
	}
	for _, e := range rules.NotAccepted {
		notAccepted.add(e.Material)
	}
	return accepted, notAccepted
}

type match struct {
	found       bool
	specificity int
	candidate   string
}

// bestMatch finds the vocabulary candidate with the highest specificity over
// all term/candidate pairs where either string contains the other.
// Specificity is the length of the shorter string; strict improvement keeps
// the earliest candidate on ties.
func bestMatch(terms []string, vocab *vocabulary) match {
	var best match
	for _, cand := range vocab.terms {
		for _, term := range terms {
			if term == "" {
				continue
			}
			if !strings.Contains(term, cand) && !strings.Contains(cand, term) {
				continue
			}
			spec := len(term)
			if len(cand) < spec {
				spec = len(cand)
			}
			if spec > best.specificity {
				best = match{found: true, specificity: spec, candidate: cand}
			}
		}
	}
	return best
}

// ruleNote returns the note of the first rule entry whose material name
// overlaps the winning candidate, if any.
func ruleNote(entries []model.MaterialEntry, candidate string) string {
	for _, e := range entries {
		name := strings.ToLower(e.Material)
		if strings.Contains(name, candidate) || strings.Contains(candidate, name) {
			return e.Notes
		}
	}
	return ""
}

// Compare classifies every detected item's declared materials against the
// accepted and not-accepted vocabularies and rolls the verdicts up per item
// and per batch. Identical inputs always yield identical output.
func Compare(items []model.DetectedItem, rules model.Rules) model.Comparison {
	acceptedVocab, notAcceptedVocab := buildVocabularies(rules)

	comparisons := []model.ItemComparison{}
	var summary model.ComparisonSummary

	for _, item := range items {
		ic := model.ItemComparison{
			Name:        item.Name,
			Confidence:  item.Confidence,
			Preparation: item.Preparation,
			Materials:   []model.MaterialComparison{},
		}

		var hasNotRecyclable, hasRecyclable, hasUnknown bool

		for _, material := range item.Materials {
			terms := []string{strings.ToLower(item.Name), strings.ToLower(material)}
			acc := bestMatch(terms, acceptedVocab)
			rej := bestMatch(terms, notAcceptedVocab)

			// Both sides matched: higher specificity wins, ties favor
			// accepted. The losing classification is discarded.
			if acc.found && rej.found {
				if acc.specificity >= rej.specificity {
					rej.found = false
				} else {
					acc.found = false
				}
			}

			mc := model.MaterialComparison{Material: material}
			switch {
			case rej.found:
				mc.Status = model.StatusNotRecyclable
				mc.Recyclable = false
				mc.Reason = ruleNote(rules.NotAccepted, rej.candidate)
				if mc.Reason == "" {
					mc.Reason = reasonNotAccepted
				}
				hasNotRecyclable = true
			case acc.found:
				mc.Status = model.StatusRecyclable
				mc.Recyclable = true
				mc.Notes = ruleNote(rules.Accepted, acc.candidate)
				hasRecyclable = true
			default:
				mc.Status = model.StatusUnknown
				mc.Recyclable = "unknown"
				mc.Reason = reasonUnknown
				hasUnknown = true
			}
			ic.Materials = append(ic.Materials, mc)
		}

		switch {
		case hasNotRecyclable:
			ic.OverallStatus = model.StatusNotRecyclable
			summary.NotRecyclable++
		case hasRecyclable:
			ic.OverallStatus = model.StatusRecyclable
			summary.Recyclable++
		case hasUnknown:
			ic.OverallStatus = model.StatusCheckLocally
			summary.Unknown++
		default:
			// Items declaring no materials at all default to recyclable.
			ic.OverallStatus = model.StatusRecyclable
			summary.Recyclable++
		}
		summary.Total++

		comparisons = append(comparisons, ic)
	}

	tips := rules.Tips
	if tips == nil {
		tips = []string{}
	}

	return model.Comparison{
		Items:    comparisons,
		Location: rules.Location,
		Summary:  summary,
		Tips:     tips,
	}
}
