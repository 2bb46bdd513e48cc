// Package detect turns a photo into a list of detected items via the vision
// provider. Parsing stops at the provider's JSON; reconciling items against
// recycling rules lives in the compare package.
package detect

import (
	"context"
	"fmt"

	"github.com/AnthonyP05/WizardsOfWaverlyHacks/internal/core/common"
	"github.com/AnthonyP05/WizardsOfWaverlyHacks/internal/core/model"
	"github.com/AnthonyP05/WizardsOfWaverlyHacks/internal/llm"
)

const defaultPrompt = `You are a recycling assistant. Identify every distinct physical item in this image.
Return a JSON object with key "items", a list of objects with:
- "name": short item name
- "materials": list of materials the item is made of (e.g. "plastic", "aluminum", "cardboard")
- "confidence": "high", "medium" or "low"
- "preparation": one short preparation instruction, or ""
Example:
{"items": [{"name": "water bottle", "materials": ["plastic"], "confidence": "high", "preparation": "rinse and empty"}]}
Return ONLY the JSON object.`

type Detector struct {
	Vision llm.VisionClient
	Prompt string
}

func NewDetector(visionClient llm.VisionClient, prompt string) *Detector {
	if prompt == "" {
		prompt = defaultPrompt
	}
	return &Detector{
		Vision: visionClient,
		Prompt: prompt,
	}
}

// DetectItems sends the image to the vision provider and parses the response
// into detected items. The result is untrusted free text for downstream use.
func (d *Detector) DetectItems(ctx context.Context, imageB64 string, mimeType string) ([]model.DetectedItem, error) {
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	response, err := d.Vision.GenerateVision(ctx, d.Prompt, imageB64, mimeType)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze image: %w", err)
	}

	result, err := common.ParseJSON[model.DetectedItems](response)
	if err != nil {
		return nil, fmt.Errorf("failed to parse detected items: %w", err)
	}

	return result.Items, nil
}
