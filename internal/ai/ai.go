// Package ai adapts the five supported chat providers behind one
// generation interface and hosts the dashboard's AI feature functions.
package ai

import (
	"context"
	"fmt"

	"github.com/DanZai233/LPH/api/types"
	"github.com/DanZai233/LPH/internal/ai/anthropic"
	"github.com/DanZai233/LPH/internal/ai/gemini"
	"github.com/DanZai233/LPH/internal/ai/openai"
	"github.com/DanZai233/LPH/internal/ai/openrouter"
	"github.com/DanZai233/LPH/internal/ai/utils"
	"github.com/DanZai233/LPH/internal/ai/volcengine"
)

const (
	defaultTemperature = 0.7
	defaultMaxTokens   = 2048
)

// Provider is one chat backend bound to a stored configuration.
type Provider interface {
	// Generate sends a single-turn prompt and returns the reply text.
	Generate(ctx context.Context, prompt, systemPrompt string, temperature float64, maxTokens int) (string, error)
}

// Options tunes one generation request. Zero values fall back to the
// adapter defaults.
type Options struct {
	Temperature  float64
	MaxTokens    int
	SystemPrompt string
}

// Response is the normalized outcome of one provider call. Exactly one
// of Text and Error is meaningful.
type Response struct {
	Text  string `json:"text"`
	Error string `json:"error,omitempty"`
}

// Adapter wraps a Provider with defaulting and error normalization.
type Adapter struct {
	provider Provider
}

// NewAdapter wraps an already-constructed provider.
func NewAdapter(p Provider) *Adapter {
	return &Adapter{provider: p}
}

// New builds the adapter for the provider named by cfg.
func New(ctx context.Context, cfg *types.AIConfig) (*Adapter, error) {
	var p Provider
	var err error

	switch cfg.Provider {
	case types.Gemini:
		p, err = gemini.New(ctx, cfg.APIKey, cfg.BaseURL, cfg.Model)
	case types.OpenAI:
		p, err = openai.New(cfg.APIKey, cfg.BaseURL, cfg.Model)
	case types.OpenRouter:
		p, err = openrouter.New(cfg.APIKey, cfg.BaseURL, cfg.Model, cfg.Config)
	case types.VolcEngine:
		p, err = volcengine.New(cfg.APIKey, cfg.BaseURL, cfg.Model)
	case types.Anthropic:
		p, err = anthropic.New(cfg.APIKey, cfg.BaseURL, cfg.Model)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create %s provider: %w", cfg.Provider, err)
	}

	return NewAdapter(p), nil
}

// GenerateText runs one generation request. Failures of any kind come
// back in Response.Error; the zero Text accompanies them.
func (a *Adapter) GenerateText(ctx context.Context, prompt string, opts Options) Response {
	if opts.Temperature == 0 {
		opts.Temperature = defaultTemperature
	}
	if opts.MaxTokens == 0 {
		opts.MaxTokens = defaultMaxTokens
	}

	text, err := a.provider.Generate(ctx, prompt, opts.SystemPrompt, opts.Temperature, opts.MaxTokens)
	if err != nil {
		return Response{Error: err.Error()}
	}
	return Response{Text: text}
}

// GenerateJSON asks for a raw-JSON reply and unmarshals it into v. The
// schema argument documents the expected shape for the prompt author
// and is not enforced. A generation error or an unparsable reply
// returns false with v untouched.
func (a *Adapter) GenerateJSON(ctx context.Context, prompt, schema string, opts Options, v any) bool {
	resp := a.GenerateText(ctx, prompt+"\n\nPlease respond with valid JSON only, no markdown formatting.", opts)
	if resp.Error != "" {
		return false
	}
	return utils.ExtractJSON(resp.Text, v) == nil
}
