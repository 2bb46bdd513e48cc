package detect

import (
	"context"
)

type MockVisionClient struct {
	Response string
	Prompt   string
	Err      error
}

func (m *MockVisionClient) GenerateVision(ctx context.Context, prompt string, imageB64 string, mimeType string) (string, error) {
	m.Prompt = prompt
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}
