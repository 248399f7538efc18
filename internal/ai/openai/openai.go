// Package openai binds a stored configuration to the OpenAI chat
// completions API via the official SDK, which authenticates with an
// Authorization bearer header.
package openai

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const defaultModel = "gpt-3.5-turbo"

type Client struct {
	cli   *openai.Client
	model string
}

// New creates a client for the given key. baseURL overrides the API
// endpoint and should include the version path, e.g. ".../v1".
func New(apiKey, baseURL, model string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai: api key is required")
	}
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	if model == "" {
		model = defaultModel
	}
	cli := openai.NewClient(opts...)
	return &Client{cli: &cli, model: model}, nil
}

// Generate sends the prompt as a user message, with the system prompt as
// a leading system message when present.
func (c *Client) Generate(ctx context.Context, prompt, systemPrompt string, temperature float64, maxTokens int) (string, error) {
	var messages []openai.ChatCompletionMessageParamUnion
	if systemPrompt != "" {
		messages = append(messages, openai.SystemMessage(systemPrompt))
	}
	messages = append(messages, openai.UserMessage(prompt))

	completion, err := c.cli.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages:    messages,
		Model:       openai.ChatModel(c.model),
		Temperature: openai.Float(temperature),
		MaxTokens:   openai.Int(int64(maxTokens)),
	})
	if err != nil {
		return "", fmt.Errorf("failed to create completion: %w", err)
	}

	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("no content returned from completion")
	}

	return completion.Choices[0].Message.Content, nil
}
