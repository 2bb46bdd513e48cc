package model

// DetectedItem is one physical item identified by the vision provider.
// Everything in it is untrusted free text.
type DetectedItem struct {
	Name        string   `json:"name"`
	Materials   []string `json:"materials"`
	Confidence  string   `json:"confidence,omitempty"`
	Preparation string   `json:"preparation,omitempty"`
}

// DetectedItems matches the JSON envelope the detection prompt asks the
// vision model to produce.
type DetectedItems struct {
	Items []DetectedItem `json:"items"`
}
