// Package types contains the wire types shared by the server and its clients.
package types

var (
	BuildVersion string
	BuildTime    string
)

// GenericError is the error envelope every non-2xx response carries.
//
// swagger:response genericError
type GenericError struct {
	Error string `json:"error"`
}

// PackageManager is a package-management subsystem we know how to query.
type PackageManager string

const (
	APT     PackageManager = "APT"
	YUM     PackageManager = "YUM"
	PACMAN  PackageManager = "PACMAN"
	SNAP    PackageManager = "SNAP"
	FLATPAK PackageManager = "FLATPAK"
	BREW    PackageManager = "BREW"
)

// PackageManagers lists every manager in detection order.
var PackageManagers = []PackageManager{APT, YUM, PACMAN, SNAP, FLATPAK, BREW}

// Package is one installed package as reported by its manager. Records are
// recomputed per collection pass; ID is only stable within one pass.
type Package struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Version     string         `json:"version"`
	Description string         `json:"description"`
	Manager     PackageManager `json:"manager"`
	InstallDate string         `json:"installDate,omitempty"`
	Size        string         `json:"size,omitempty"`
	Usage       []string       `json:"usage,omitempty"`
}

// Alias is a saved shell alias.
type Alias struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Command     string `json:"command"`
	Description string `json:"description"`
}

// SystemInfo describes the host the daemon is running on.
type SystemInfo struct {
	OS       string           `json:"os"`
	Kernel   string           `json:"kernel"`
	Shell    string           `json:"shell"`
	Uptime   string           `json:"uptime"`
	Managers []PackageManager `json:"managers"`
}

// PackageManagerStatus reports whether one manager binary is usable.
type PackageManagerStatus struct {
	Name      PackageManager `json:"name"`
	Available bool           `json:"available"`
	Version   string         `json:"version,omitempty"`
}

// SystemStats is the dashboard summary payload.
type SystemStats struct {
	TotalPackages   int                    `json:"totalPackages"`
	PackageCounts   map[PackageManager]int `json:"packageCounts"`
	PackageManagers int                    `json:"packageManagers"`
	DiskUsage       string                 `json:"diskUsage"`
	SystemInfo      SystemInfo             `json:"systemInfo"`
}

// AIProvider identifies one of the supported chat providers.
type AIProvider string

const (
	Gemini     AIProvider = "gemini"
	OpenAI     AIProvider = "openai"
	OpenRouter AIProvider = "openrouter"
	VolcEngine AIProvider = "volcengine"
	Anthropic  AIProvider = "anthropic"
)

// AIProviders lists every supported provider.
var AIProviders = []AIProvider{Gemini, OpenAI, OpenRouter, VolcEngine, Anthropic}

// Valid reports whether p is one of the supported providers.
func (p AIProvider) Valid() bool {
	for _, known := range AIProviders {
		if p == known {
			return true
		}
	}
	return false
}

// AIConfig is one stored provider configuration. At most one record has
// IsActive set; only an enabled record can serve requests.
type AIConfig struct {
	ID        string     `json:"id"`
	Provider  AIProvider `json:"provider"`
	Name      string     `json:"name"`
	APIKey    string     `json:"apiKey"`
	BaseURL   string     `json:"baseUrl,omitempty"`
	Model     string     `json:"model,omitempty"`
	IsActive  bool       `json:"isActive"`
	Enabled   bool       `json:"enabled"`
	Config    string     `json:"config,omitempty"` // opaque JSON blob for provider extras
	CreatedAt string     `json:"createdAt,omitempty"`
	UpdatedAt string     `json:"updatedAt,omitempty"`
}

// CommandSearchResult is one AI command suggestion.
type CommandSearchResult struct {
	Command     string `json:"command"`
	Package     string `json:"package"`
	Description string `json:"description"`
	Usage       string `json:"usage"`
}

// AliasSuggestion is the AI suggested alias for a command.
type AliasSuggestion struct {
	Alias       string `json:"alias"`
	Description string `json:"description"`
}

// ProviderInfo is the static metadata advertised for one provider.
type ProviderInfo struct {
	Value          AIProvider `json:"value"`
	Label          string     `json:"label"`
	DefaultBaseURL string     `json:"defaultBaseUrl"`
	DefaultModel   string     `json:"defaultModel"`
}
