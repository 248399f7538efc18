package ai

import (
	"strings"

	"github.com/DanZai233/LPH/api/types"
)

type providerDefaults struct {
	baseURL string
	model   string
}

// defaults is the static per-provider metadata advertised to the
// frontend. Gemini has no base URL because its SDK owns the endpoint.
var defaults = map[types.AIProvider]providerDefaults{
	types.Gemini:     {baseURL: "", model: "gemini-1.5-flash"},
	types.OpenAI:     {baseURL: "https://api.openai.com/v1", model: "gpt-3.5-turbo"},
	types.OpenRouter: {baseURL: "https://openrouter.ai/api/v1", model: "openai/gpt-3.5-turbo"},
	types.VolcEngine: {baseURL: "https://ark.cn-beijing.volces.com/api/v3", model: "ep-xxx"},
	types.Anthropic:  {baseURL: "https://api.anthropic.com/v1", model: "claude-3-haiku-20240307"},
}

// Providers returns the static metadata for every supported provider.
func Providers() []types.ProviderInfo {
	infos := make([]types.ProviderInfo, 0, len(types.AIProviders))
	for _, provider := range types.AIProviders {
		d := defaults[provider]
		infos = append(infos, types.ProviderInfo{
			Value:          provider,
			Label:          strings.ToUpper(string(provider)[:1]) + string(provider)[1:],
			DefaultBaseURL: d.baseURL,
			DefaultModel:   d.model,
		})
	}
	return infos
}
