package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/AnthonyP05/WizardsOfWaverlyHacks/internal/config"
)

// NewClient builds the chat and vision clients for the configured provider.
// Every supported provider serves both roles through the same client.
func NewClient(ctx context.Context, cfg config.LLMConfig) (LLMClient, VisionClient, error) {
	provider := strings.ToLower(cfg.Provider)

	switch provider {
	case "openai":
		c := NewOpenAIClient(cfg.APIKey, cfg.Model, cfg.BaseURL)
		return c, c, nil

	case "gemini":
		c, err := NewGeminiClient(ctx, cfg.APIKey, cfg.Model)
		if err != nil {
			return nil, nil, err
		}
		return c, c, nil

	case "claude":
		c := NewClaudeClient(cfg.APIKey, cfg.Model, cfg.BaseURL)
		return c, c, nil

	case "ollama":
		// Route Ollama through the OpenAI-compatible API. Vision works when
		// the configured model is multimodal (e.g. llava).
		baseURL := cfg.BaseURL
		if !strings.HasSuffix(baseURL, "/v1") {
			baseURL = fmt.Sprintf("%s/v1", strings.TrimRight(baseURL, "/"))
		}

		// Ollama ignores the API key but the client config requires one.
		apiKey := cfg.APIKey
		if apiKey == "" {
			apiKey = "ollama"
		}

		c := NewOpenAIClient(apiKey, cfg.Model, baseURL)
		return c, c, nil

	default:
		return nil, nil, fmt.Errorf("unsupported llm provider: %s", provider)
	}
}
