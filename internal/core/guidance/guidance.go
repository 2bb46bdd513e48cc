// Package guidance renders a Rules record into a short natural-language
// summary for chat surfaces. Purely presentational; the structured record
// stays the source of truth.
package guidance

import (
	"context"
	"fmt"
	"strings"

	"github.com/AnthonyP05/WizardsOfWaverlyHacks/internal/core/model"
	"github.com/AnthonyP05/WizardsOfWaverlyHacks/internal/llm"
)

const defaultPrompt = `Summarize the following curbside recycling rules for a resident in at most 3 short sentences.
Mention the most commonly accepted materials, the most important restrictions, and one preparation tip.

Location: %s
Accepted: %s
Not accepted: %s
Tips: %s

Respond with plain text only.`

type Summarizer struct {
	LLM    llm.LLMClient
	Prompt string
}

func NewSummarizer(llmClient llm.LLMClient, prompt string) *Summarizer {
	if prompt == "" {
		prompt = defaultPrompt
	}
	return &Summarizer{
		LLM:    llmClient,
		Prompt: prompt,
	}
}

// Summarize produces resident-facing guidance for a rule set. A nil client
// yields an empty summary rather than an error.
func (s *Summarizer) Summarize(ctx context.Context, r model.Rules) (string, error) {
	if s.LLM == nil {
		return "", nil
	}

	prompt := fmt.Sprintf(s.Prompt,
		r.Location,
		materialList(r.Accepted),
		materialList(r.NotAccepted),
		strings.Join(r.Tips, "; "),
	)

	response, err := s.LLM.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("failed to generate guidance: %w", err)
	}

	return strings.TrimSpace(response), nil
}

func materialList(entries []model.MaterialEntry) string {
	if len(entries) == 0 {
		return "none found"
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Material
	}
	return strings.Join(names, ", ")
}
