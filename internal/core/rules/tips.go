package rules

import (
	"regexp"

	"github.com/AnthonyP05/WizardsOfWaverlyHacks/internal/core/model"
)

// tipPatterns pair a snippet pattern with the generic preparation tip it
// implies. Order here fixes discovery order in the output.
var tipPatterns = []struct {
	pattern *regexp.Regexp
	tip     string
}{
	{regexp.MustCompile(`(?i)rinse`), "Rinse containers before recycling"},
	{regexp.MustCompile(`(?i)flatten.{0,30}(cardboard|box)`), "Flatten cardboard boxes to save space"},
	{regexp.MustCompile(`(?i)empt(y|ied)`), "Empty all containers completely"},
	{regexp.MustCompile(`(?i)clean\s+and\s+dry`), "Keep recyclables clean and dry"},
	{regexp.MustCompile(`(?i)remove\s+(the\s+)?(cap|lid)`), "Remove caps and lids before recycling"},
	{regexp.MustCompile(`(?i)(no|never|don'?t)\s+bag`), "Never bag recyclables - keep them loose in the bin"},
	{regexp.MustCompile(`(?i)labels?\s+(are\s+)?(ok|okay|fine|can\s+stay)`), "Labels are fine to leave on"},
}

// extractTips pattern-matches generic preparation guidance across all
// snippets. Duplicates collapse; order is first-discovered.
func extractTips(results []model.SearchResult) []string {
	tips := []string{}
	seen := make(map[string]bool)
	for _, r := range results {
		for _, tp := range tipPatterns {
			if seen[tp.tip] || !tp.pattern.MatchString(r.Snippet) {
				continue
			}
			seen[tp.tip] = true
			tips = append(tips, tp.tip)
		}
	}
	return tips
}
