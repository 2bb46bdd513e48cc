package rules

import (
	"strings"

	"github.com/AnthonyP05/WizardsOfWaverlyHacks/internal/core/common"
)

// noteChecks are tested in fixed priority order against the text window
// around a material match. Every hit is collected, not just the first.
var noteChecks = []struct {
	keywords []string
	note     string
}{
	{[]string{"rinse"}, "rinse before recycling"},
	{[]string{"flatten"}, "flatten to save space"},
	{[]string{"empty"}, "empty completely"},
	{[]string{"clean"}, "must be clean"},
	{[]string{"dry"}, "must be dry"},
	{[]string{"remove", "cap"}, "remove caps"},
	{[]string{"remove", "lid"}, "remove lids"},
	{[]string{"label"}, "labels are ok to leave on"},
}

const noteWindow = 50

// extractNote inspects a +-50 character window around a match offset for
// actionable care instructions. The text is expected to be lower-cased.
func extractNote(text string, offset int) string {
	start := offset - noteWindow
	if start < 0 {
		start = 0
	}
	end := offset + noteWindow
	if end > len(text) {
		end = len(text)
	}
	window := text[start:end]

	var hits []string
	for _, check := range noteChecks {
		all := true
		for _, kw := range check.keywords {
			if !strings.Contains(window, kw) {
				all = false
				break
			}
		}
		if all {
			hits = append(hits, check.note)
		}
	}
	if len(hits) == 0 {
		return ""
	}
	return common.Capitalize(strings.Join(hits, ", "))
}
