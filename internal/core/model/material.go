package model

// Confidence tiers for extracted material rules.
const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
)

// MaterialEntry is one accepted or not-accepted material rule for a location.
// Confidence is derived from SourceCount (>= 2 distinct URLs means high),
// never set directly by callers.
type MaterialEntry struct {
	Material    string `json:"material"`
	Notes       string `json:"notes,omitempty"`
	Confidence  string `json:"confidence"`
	SourceCount int    `json:"source_count"`
}

// Source is a deduplicated citation, one per domain.
type Source struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

type RulesMeta struct {
	SourcesAnalyzed int `json:"sources_analyzed"`
	MaterialsFound  int `json:"materials_found"`
}

// Rules is the structured recycling guidance extracted for one location.
// Built fresh per request; plain nested data with no embedded formatting.
type Rules struct {
	Location    string          `json:"location"`
	Accepted    []MaterialEntry `json:"accepted"`
	NotAccepted []MaterialEntry `json:"not_accepted"`
	Tips        []string        `json:"tips"`
	Sources     []Source        `json:"sources"`
	Meta        RulesMeta       `json:"meta"`
	Error       string          `json:"error,omitempty"`
}
