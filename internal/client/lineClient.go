package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"aquarium-storefront/internal/config"
)

// LineClient hands a LINE deep link to whatever opens it for the shop owner.
type LineClient interface {
	Open(ctx context.Context, link string) error
}

type lineClientImpl struct {
	httpClient *http.Client
	relayURL   string
}

// NewLineClient posts links to the configured relay. Without a relay the link
// is only logged; the rendering layer still receives it in the order response.
func NewLineClient(cfg *config.Line) LineClient {
	return &lineClientImpl{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		relayURL: cfg.RelayURL,
	}
}

func (c *lineClientImpl) Open(ctx context.Context, link string) error {
	if c.relayURL == "" {
		slog.InfoContext(ctx, "line hand-off", "link", link)
		return nil
	}

	body, err := json.Marshal(map[string]string{"link": link})
	if err != nil {
		return fmt.Errorf("marshal relay payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.relayURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("http new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("line relay error %d: %s", resp.StatusCode, string(b))
	}

	return nil
}
