package vision

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client calls the external image-generation API. The call is opaque:
// it either returns an image URL or a recoverable error. Failures never
// touch goal or habit state; the board falls back to emoji tiles.
type Client struct {
	url    string
	apiKey string
	http   *http.Client
}

// NewClient creates an image client. An empty url disables generation.
func NewClient(url, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		url:    url,
		apiKey: apiKey,
		http:   &http.Client{Timeout: timeout},
	}
}

// Enabled reports whether an image API is configured.
func (c *Client) Enabled() bool {
	return c.url != ""
}

// GenerateImage requests one image for a goal title.
func (c *Client) GenerateImage(ctx context.Context, goalTitle string) (string, error) {
	if !c.Enabled() {
		return "", fmt.Errorf("image generation not configured")
	}

	body, _ := json.Marshal(map[string]interface{}{
		"prompt": fmt.Sprintf("A motivational vision board image representing the goal: %s", goalTitle),
	})
	req, err := http.NewRequestWithContext(ctx, "POST", c.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build image request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("image generation failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("image API returned status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read image response: %w", err)
	}
	var parsed struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil || parsed.URL == "" {
		return "", fmt.Errorf("image API returned an unexpected response")
	}
	return parsed.URL, nil
}
