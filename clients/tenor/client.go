package tenor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"sanctyr/clients"
	"sanctyr/core"
)

var tenorAPIBase = "https://tenor.googleapis.com/v2"

// TenorClient implements the clients.TenorClient interface against the
// Tenor v2 posts API.
type TenorClient struct {
	httpClient *http.Client
	apiKey     string
}

// NewTenorClient creates a new Tenor client. Without an API key, lookups
// short-circuit with core.ErrNotConfigured and callers fall back to
// stripping the link.
func NewTenorClient(httpClient *http.Client, apiKey string) clients.TenorClient {
	return &TenorClient{
		httpClient: httpClient,
		apiKey:     apiKey,
	}
}

// ResolveGifURL resolves a Tenor post ID to a directly renderable GIF URL.
func (c *TenorClient) ResolveGifURL(ctx context.Context, postID string) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("tenor API: %w", core.ErrNotConfigured)
	}

	query := url.Values{}
	query.Set("ids", postID)
	query.Set("key", c.apiKey)
	query.Set("media_filter", "gif")

	req, err := http.NewRequestWithContext(ctx, "GET", tenorAPIBase+"/posts?"+query.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to create tenor request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch tenor post: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("tenor request failed with status %d: %w", resp.StatusCode, core.ErrUpstream)
	}

	var body struct {
		Results []struct {
			MediaFormats map[string]struct {
				URL string `json:"url"`
			} `json:"media_formats"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("failed to decode tenor response: %w", err)
	}

	if len(body.Results) == 0 {
		return "", fmt.Errorf("tenor post %s: %w", postID, core.ErrNotFound)
	}
	gif, ok := body.Results[0].MediaFormats["gif"]
	if !ok || gif.URL == "" {
		return "", fmt.Errorf("tenor post %s has no gif format: %w", postID, core.ErrNotFound)
	}

	return gif.URL, nil
}
