package anthropic

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"sanctyr/clients"
	"sanctyr/core"
)

// guideSystemPrompt frames the model as the site's Sanctuary Guide. The
// model is asked for markdown; the guide service is responsible for
// rendering and sanitizing it before anything reaches a browser.
const guideSystemPrompt = `You are an AI-powered guide for the D'Last Sanctuary (DLS) website. Your name is the "Sanctuary Guide".

Your purpose is to answer user questions about the site, guide users to relevant sections, and provide snippets of lore. You have extensive knowledge about D'Last Sanctuary.

Please provide a helpful and informative response.
- Keep the response concise and to the point.
- Address the prompt completely.
- Format the response using markdown for readability.`

// AnthropicClient implements the clients.GuideClient interface
type AnthropicClient struct {
	sdkClient anthropic.Client
	apiKey    string
	model     anthropic.Model
}

// NewAnthropicClient creates a new guide client. An empty API key is
// allowed: Ask then short-circuits with core.ErrNotConfigured.
func NewAnthropicClient(apiKey, model string) clients.GuideClient {
	return &AnthropicClient{
		sdkClient: anthropic.NewClient(option.WithAPIKey(apiKey)),
		apiKey:    apiKey,
		model:     anthropic.Model(model),
	}
}

// Ask dispatches the user's free-text query and returns the model's
// markdown answer.
func (c *AnthropicClient) Ask(ctx context.Context, query string) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("anthropic: %w", core.ErrNotConfigured)
	}

	message, err := c.sdkClient.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: 1024,
		System: []anthropic.TextBlockParam{
			{Text: guideSystemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(query)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to query model: %w", err)
	}

	var sb strings.Builder
	for _, block := range message.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("model returned no text content")
	}

	return sb.String(), nil
}
