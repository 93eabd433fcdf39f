package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"aquarium-storefront/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineClientPostsToRelay(t *testing.T) {
	var got map[string]string
	relay := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer relay.Close()

	c := NewLineClient(&config.Line{RelayURL: relay.URL})
	require.NoError(t, c.Open(context.Background(), "https://line.me/R/ti/p/@shop?hi"))

	assert.Equal(t, "https://line.me/R/ti/p/@shop?hi", got["link"])
}

func TestLineClientRelayError(t *testing.T) {
	relay := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	defer relay.Close()

	c := NewLineClient(&config.Line{RelayURL: relay.URL})
	err := c.Open(context.Background(), "https://line.me/R/ti/p/@shop?hi")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestLineClientWithoutRelay(t *testing.T) {
	c := NewLineClient(&config.Line{})
	assert.NoError(t, c.Open(context.Background(), "https://line.me/R/ti/p/@shop?hi"))
}
