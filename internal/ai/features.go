package ai

import (
	"context"
	"errors"
	"fmt"

	"github.com/DanZai233/LPH/api/types"
	"github.com/apex/log"
)

// ErrNoActiveProvider is returned when no enabled config is active.
var ErrNoActiveProvider = errors.New("no active AI provider configured")

// ActiveConfigSource yields the provider configuration currently
// selected to serve AI requests.
type ActiveConfigSource interface {
	GetActive() (*types.AIConfig, error)
}

// Service implements the dashboard's AI features on top of whichever
// provider is active. Error behavior differs deliberately per feature:
// ExplainPackage propagates provider failures, SearchCommands and
// SuggestAlias degrade to empty results.
type Service struct {
	configs ActiveConfigSource
	adapter func(ctx context.Context, cfg *types.AIConfig) (*Adapter, error)
}

// NewService returns a Service resolving its provider from configs.
func NewService(configs ActiveConfigSource) *Service {
	return &Service{configs: configs, adapter: New}
}

func (s *Service) active(ctx context.Context) (*Adapter, error) {
	cfg, err := s.configs.GetActive()
	if err != nil {
		return nil, ErrNoActiveProvider
	}
	adapter, err := s.adapter(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to bind provider %s: %w", cfg.Provider, err)
	}
	return adapter, nil
}

// ExplainPackage asks the active provider to explain a package.
func (s *Service) ExplainPackage(ctx context.Context, name string) (string, error) {
	adapter, err := s.active(ctx)
	if err != nil {
		return "", err
	}

	prompt := fmt.Sprintf("Explain what the Linux package %q is, its primary use cases, and give 3 common command examples. Format in clear sections.", name)

	resp := adapter.GenerateText(ctx, prompt, Options{})
	if resp.Error != "" {
		return "", errors.New(resp.Error)
	}
	return resp.Text, nil
}

// SearchCommands asks the active provider for three command suggestions
// matching the query. Provider failures and malformed replies yield an
// empty list, never an error; only a missing active provider fails.
func (s *Service) SearchCommands(ctx context.Context, query string) ([]types.CommandSearchResult, error) {
	adapter, err := s.active(ctx)
	if err != nil {
		if errors.Is(err, ErrNoActiveProvider) {
			return nil, err
		}
		log.Errorf("search commands: %v", err)
		return []types.CommandSearchResult{}, nil
	}

	prompt := fmt.Sprintf(`The user is looking for a Linux command or tool to do: %q. Suggest 3 relevant packages/commands, describe them briefly, and provide the command syntax. Return ONLY a valid JSON array with this exact structure:
[
  {
    "command": "command_name",
    "package": "package_name",
    "description": "brief description",
    "usage": "example usage command"
  }
]`, query)

	var results []types.CommandSearchResult
	if !adapter.GenerateJSON(ctx, prompt, "array of {command, package, description, usage}", Options{}, &results) {
		return []types.CommandSearchResult{}, nil
	}
	if results == nil {
		results = []types.CommandSearchResult{}
	}
	return results, nil
}

// SuggestAlias asks the active provider to name an alias for a command.
// Any failure past provider resolution yields the empty suggestion.
func (s *Service) SuggestAlias(ctx context.Context, command string) (types.AliasSuggestion, error) {
	adapter, err := s.active(ctx)
	if err != nil {
		if errors.Is(err, ErrNoActiveProvider) {
			return types.AliasSuggestion{}, err
		}
		log.Errorf("suggest alias: %v", err)
		return types.AliasSuggestion{}, nil
	}

	prompt := fmt.Sprintf(`Suggest a short, intuitive terminal alias name and a brief description for this complex command: %q. Return ONLY a valid JSON object with this exact structure:
{
  "alias": "short_alias_name",
  "description": "brief description of what it does"
}`, command)

	var suggestion types.AliasSuggestion
	if !adapter.GenerateJSON(ctx, prompt, "{alias, description}", Options{}, &suggestion) {
		return types.AliasSuggestion{}, nil
	}
	return suggestion, nil
}
