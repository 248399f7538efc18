// Package gemini binds a stored configuration to the Gemini API through
// the google genai SDK.
package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const defaultModel = "gemini-1.5-flash"

type Client struct {
	cli   *genai.Client
	model string
}

// New creates a client for the given key. baseURL is normally empty;
// when set it redirects the SDK at an alternate endpoint.
func New(ctx context.Context, apiKey, baseURL, model string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini: api key is required")
	}
	cc := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}
	cli, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	if model == "" {
		model = defaultModel
	}
	return &Client{cli: cli, model: model}, nil
}

// Generate sends one prompt. Gemini has no system role; the system
// prompt is concatenated ahead of the user content.
func (c *Client) Generate(ctx context.Context, prompt, systemPrompt string, temperature float64, maxTokens int) (string, error) {
	if systemPrompt != "" {
		prompt = systemPrompt + "\n\n" + prompt
	}

	result, err := c.cli.Models.GenerateContent(ctx, c.model, genai.Text(prompt),
		&genai.GenerateContentConfig{
			Temperature:     genai.Ptr(float32(temperature)),
			MaxOutputTokens: int32(maxTokens),
		})
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	text := result.Text()
	if text == "" {
		return "", fmt.Errorf("no content returned from model")
	}
	return text, nil
}
