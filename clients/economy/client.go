package economy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"sanctyr/clients"
	"sanctyr/core"
	"sanctyr/models"
)

// EconomyClient implements the clients.EconomyClient interface. It talks to
// the bot-operated economy microservice, a failure domain entirely separate
// from the chat platform: its own base URL, its own shared secret, its own
// error taxonomy.
type EconomyClient struct {
	httpClient *http.Client
	baseURL    string
	apiSecret  string
}

// NewEconomyClient creates a new economy service client. Empty credentials
// are allowed: calls then short-circuit with core.ErrNotConfigured.
func NewEconomyClient(httpClient *http.Client, baseURL, apiSecret string) clients.EconomyClient {
	return &EconomyClient{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiSecret:  apiSecret,
	}
}

// GetProfile fetches a user's wallet/bank/inventory state. Callers can
// branch on the error:
//   - core.ErrNotConfigured: credentials missing, render a configuration notice
//   - core.ErrNotFound: HTTP 404, the user has no profile yet
//   - core.ErrUpstream: any other non-2xx, render a retry prompt
//   - anything else: network or decode failure
func (c *EconomyClient) GetProfile(ctx context.Context, userID string) (*models.EconomyProfile, error) {
	if c.baseURL == "" || c.apiSecret == "" {
		return nil, fmt.Errorf("economy API: %w", core.ErrNotConfigured)
	}
	if userID == "" {
		return nil, fmt.Errorf("user ID not provided")
	}

	req, err := http.NewRequestWithContext(ctx, "GET", fmt.Sprintf("%s/api/profile/%s", c.baseURL, userID), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create profile request: %w", err)
	}
	req.Header.Set("X-API-Secret", c.apiSecret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch economy profile: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("economy profile for user %s: %w", userID, core.ErrNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("economy profile request failed with status %d: %s: %w",
			resp.StatusCode, string(body), core.ErrUpstream)
	}

	var profile models.EconomyProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("failed to decode economy profile: %w", err)
	}

	return &profile, nil
}

// ExecuteAction proxies a delegated economy command. Validation and
// execution happen entirely on the economy service side.
func (c *EconomyClient) ExecuteAction(
	ctx context.Context,
	command, userID string,
	args []string,
) (*models.EconomyActionResult, error) {
	if c.baseURL == "" || c.apiSecret == "" {
		return nil, fmt.Errorf("economy API: %w", core.ErrNotConfigured)
	}

	reqBody := models.EconomyActionRequest{
		Command: command,
		UserID:  userID,
		Args:    args,
	}
	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal action request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/api/actions", bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create action request: %w", err)
	}
	req.Header.Set("X-API-Secret", c.apiSecret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute economy action: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("economy action failed with status %d: %s: %w",
			resp.StatusCode, string(body), core.ErrUpstream)
	}

	var result models.EconomyActionResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode action result: %w", err)
	}

	return &result, nil
}
