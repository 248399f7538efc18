// Package anthropic binds a stored configuration to the Anthropic
// messages API via the official SDK, which authenticates with the
// x-api-key and anthropic-version headers.
package anthropic

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const defaultModel = "claude-3-haiku-20240307"

type Client struct {
	cli   anthropic.Client
	model string
}

// New creates a client for the given key. baseURL overrides the API
// endpoint; a stored ".../v1" suffix is stripped because the SDK
// appends the version segment itself.
func New(apiKey, baseURL, model string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("anthropic: api key is required")
	}
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(strings.TrimSuffix(baseURL, "/v1")))
	}
	if model == "" {
		model = defaultModel
	}
	return &Client{
		cli:   anthropic.NewClient(opts...),
		model: model,
	}, nil
}

// Generate sends one user message. Anthropic has a system field, but the
// system prompt is concatenated into the user content so every provider
// sees the identical final prompt.
func (c *Client) Generate(ctx context.Context, prompt, systemPrompt string, temperature float64, maxTokens int) (string, error) {
	if systemPrompt != "" {
		prompt = systemPrompt + "\n\n" + prompt
	}

	message, err := c.cli.Messages.New(ctx, anthropic.MessageNewParams{
		MaxTokens: int64(maxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
		Model:       anthropic.Model(c.model),
		Temperature: anthropic.Float(temperature),
	})
	if err != nil {
		return "", fmt.Errorf("failed to create message: %w", err)
	}

	if len(message.Content) == 0 {
		return "", fmt.Errorf("no content returned from message")
	}

	return message.Content[0].Text, nil
}
