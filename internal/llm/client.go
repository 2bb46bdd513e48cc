package llm

import (
	"context"
)

type LLMClient interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// VisionClient generates a completion from a prompt plus one base64-encoded
// image. Implemented by providers with multimodal models.
type VisionClient interface {
	GenerateVision(ctx context.Context, prompt string, imageB64 string, mimeType string) (string, error)
}

type RerankerClient interface {
	Rank(ctx context.Context, query string, documents []string) ([]int, error)
}
