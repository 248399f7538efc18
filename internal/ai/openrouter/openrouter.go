// Package openrouter binds a stored configuration to the OpenRouter
// chat completions API.
package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultBaseURL = "https://openrouter.ai/api/v1"
	defaultModel   = "openai/gpt-3.5-turbo"
	defaultReferer = "http://localhost:5173"
	defaultTitle   = "Linux Package Hub"
)

// extraConfig carries the OpenRouter attribution extras from the opaque
// per-config JSON blob.
type extraConfig struct {
	HTTPReferer string `json:"httpReferer"`
	AppName     string `json:"appName"`
}

// Client is an OpenRouter API client.
type Client struct {
	client  *http.Client
	apiKey  string
	baseURL string
	model   string
	referer string
	title   string
}

// chatMessage represents a single message in the conversation.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatRequest is the payload sent to the chat completions endpoint.
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

// chatResponse represents the chat completions response.
type chatResponse struct {
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
}

// errorResponse is the error envelope OpenAI-shaped APIs return.
type errorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// New creates an OpenRouter client. extra is the stored opaque config
// JSON; unparsable extras are ignored.
func New(apiKey, baseURL, model, extra string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openrouter: api key is required")
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if model == "" {
		model = defaultModel
	}

	ec := extraConfig{HTTPReferer: defaultReferer, AppName: defaultTitle}
	if extra != "" {
		var parsed extraConfig
		if err := json.Unmarshal([]byte(extra), &parsed); err == nil {
			if parsed.HTTPReferer != "" {
				ec.HTTPReferer = parsed.HTTPReferer
			}
			if parsed.AppName != "" {
				ec.AppName = parsed.AppName
			}
		}
	}

	return &Client{
		client:  &http.Client{Timeout: 300 * time.Second},
		apiKey:  apiKey,
		baseURL: baseURL,
		model:   model,
		referer: ec.HTTPReferer,
		title:   ec.AppName,
	}, nil
}

// Generate sends one chat completion request and returns the reply text.
func (c *Client) Generate(ctx context.Context, prompt, systemPrompt string, temperature float64, maxTokens int) (string, error) {
	var messages []chatMessage
	if systemPrompt != "" {
		messages = append(messages, chatMessage{Role: "system", Content: systemPrompt})
	}
	messages = append(messages, chatMessage{Role: "user", Content: prompt})

	data, err := json.Marshal(chatRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/chat/completions", bytes.NewBuffer(data))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	c.setRequestHeaders(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		var apiErr errorResponse
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error.Message != "" {
			return "", errors.New(apiErr.Error.Message)
		}
		return "", fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	var response chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(response.Choices) == 0 {
		return "", fmt.Errorf("no response choices returned")
	}

	return response.Choices[0].Message.Content, nil
}

func (c *Client) setRequestHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("HTTP-Referer", c.referer)
	req.Header.Set("X-Title", c.title)
}
