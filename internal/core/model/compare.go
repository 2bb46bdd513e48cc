package model

// Per-material and per-item recyclability statuses.
const (
	StatusRecyclable    = "recyclable"
	StatusNotRecyclable = "not_recyclable"
	StatusUnknown       = "unknown"
	StatusCheckLocally  = "check_locally"
)

// MaterialComparison is the verdict for a single declared material.
// Recyclable is true, false, or the string "unknown" on the wire.
type MaterialComparison struct {
	Material   string `json:"material"`
	Status     string `json:"status"`
	Recyclable any    `json:"recyclable"`
	Notes      string `json:"notes,omitempty"`
	Reason     string `json:"reason,omitempty"`
}

type ItemComparison struct {
	Name          string               `json:"name"`
	Confidence    string               `json:"confidence,omitempty"`
	Preparation   string               `json:"preparation,omitempty"`
	OverallStatus string               `json:"overall_status"`
	Materials     []MaterialComparison `json:"materials"`
}

type ComparisonSummary struct {
	Recyclable    int `json:"recyclable"`
	NotRecyclable int `json:"not_recyclable"`
	Unknown       int `json:"unknown"`
	Total         int `json:"total"`
}

// Comparison is the aggregate verdict for one scanned batch of items.
type Comparison struct {
	Items    []ItemComparison  `json:"items"`
	Location string            `json:"location"`
	Summary  ComparisonSummary `json:"summary"`
	Tips     []string          `json:"tips"`
}
