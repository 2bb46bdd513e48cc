package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnthonyP05/WizardsOfWaverlyHacks/internal/config"
)

func TestPlaceName(t *testing.T) {
	var gotAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		assert.Equal(t, "90210", r.URL.Query().Get("postalcode"))
		assert.Equal(t, "us", r.URL.Query().Get("country"))
		w.Write([]byte(`[{"display_name": "Beverly Hills, Los Angeles County, California, United States"}]`))
	}))
	defer srv.Close()

	c := NewClient(config.GeocodeConfig{BaseURL: srv.URL, UserAgent: "test-agent/1.0"})

	name, err := c.PlaceName(context.Background(), "90210")

	require.NoError(t, err)
	assert.Equal(t, "Beverly Hills, Los Angeles County, California, United States", name)
	assert.Equal(t, "test-agent/1.0", gotAgent)
}

func TestPlaceNameNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewClient(config.GeocodeConfig{BaseURL: srv.URL})

	_, err := c.PlaceName(context.Background(), "00000")

	assert.Error(t, err)
}

func TestPlaceNameErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient(config.GeocodeConfig{BaseURL: srv.URL})

	_, err := c.PlaceName(context.Background(), "90210")

	assert.Error(t, err)
}
