package detect

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnthonyP05/WizardsOfWaverlyHacks/internal/core/model"
)

func TestDetectItems(t *testing.T) {
	mock := &MockVisionClient{
		Response: "```json\n{\"items\": [{\"name\": \"water bottle\", \"materials\": [\"plastic\"], \"confidence\": \"high\", \"preparation\": \"rinse and empty\"}]}\n```",
	}
	d := NewDetector(mock, "")

	items, err := d.DetectItems(context.Background(), "aGVsbG8=", "")

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, model.DetectedItem{
		Name:        "water bottle",
		Materials:   []string{"plastic"},
		Confidence:  "high",
		Preparation: "rinse and empty",
	}, items[0])
	assert.Equal(t, defaultPrompt, mock.Prompt)
}

func TestDetectItemsCustomPrompt(t *testing.T) {
	mock := &MockVisionClient{Response: `{"items": []}`}
	d := NewDetector(mock, "custom prompt")

	items, err := d.DetectItems(context.Background(), "aGVsbG8=", "image/png")

	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Equal(t, "custom prompt", mock.Prompt)
}

func TestDetectItemsVisionError(t *testing.T) {
	mock := &MockVisionClient{Err: errors.New("provider unavailable")}
	d := NewDetector(mock, "")

	_, err := d.DetectItems(context.Background(), "aGVsbG8=", "")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to analyze image")
}

func TestDetectItemsBadJSON(t *testing.T) {
	mock := &MockVisionClient{Response: "I see a bottle and a can."}
	d := NewDetector(mock, "")

	_, err := d.DetectItems(context.Background(), "aGVsbG8=", "")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse detected items")
}
