package store

import (
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/DanZai233/LPH/api/types"
)

const configIDPrefix = "ai-config"

type configDocument struct {
	Configs []types.AIConfig `json:"configs"`
}

// ConfigStore persists AI provider configurations in a single JSON
// document and maintains the at-most-one-active invariant across writes.
type ConfigStore struct {
	path string
	mu   sync.Mutex
}

// NewConfigStore returns a store backed by <dir>/ai_configs.json.
func NewConfigStore(dir string) *ConfigStore {
	return &ConfigStore{path: filepath.Join(dir, "ai_configs.json")}
}

// ConfigUpdate is a partial update; nil fields keep their stored value.
type ConfigUpdate struct {
	Provider *types.AIProvider
	Name     *string
	APIKey   *string
	BaseURL  *string
	Model    *string
	IsActive *bool
	Enabled  *bool
	Config   *string
}

// List returns every config ordered by creation time, most recent first.
func (s *ConfigStore) List() ([]types.AIConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var doc configDocument
	if err := load(s.path, &doc); err != nil {
		return nil, err
	}
	sort.SliceStable(doc.Configs, func(i, j int) bool {
		return orderKey(doc.Configs[i]) > orderKey(doc.Configs[j])
	})
	return doc.Configs, nil
}

// GetByID returns the config with the given id, or ErrNotFound.
func (s *ConfigStore) GetByID(id string) (*types.AIConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var doc configDocument
	if err := load(s.path, &doc); err != nil {
		return nil, err
	}
	for i := range doc.Configs {
		if doc.Configs[i].ID == id {
			cfg := doc.Configs[i]
			return &cfg, nil
		}
	}
	return nil, ErrNotFound
}

// GetActive returns the config currently serving AI requests: the one
// record that is both active and enabled, or ErrNotFound if there is none.
func (s *ConfigStore) GetActive() (*types.AIConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var doc configDocument
	if err := load(s.path, &doc); err != nil {
		return nil, err
	}
	for i := range doc.Configs {
		if doc.Configs[i].IsActive && doc.Configs[i].Enabled {
			cfg := doc.Configs[i]
			return &cfg, nil
		}
	}
	return nil, ErrNotFound
}

// Create appends a new config, assigning its id and timestamps. If the
// new record is active, every other active record is deactivated in the
// same write.
func (s *ConfigStore) Create(cfg types.AIConfig) (*types.AIConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var doc configDocument
	if err := load(s.path, &doc); err != nil {
		return nil, err
	}

	now := timestamp()
	if cfg.IsActive {
		deactivateAll(doc.Configs, "", now)
	}

	cfg.ID = newID(configIDPrefix)
	cfg.CreatedAt = now
	cfg.UpdatedAt = now
	doc.Configs = append(doc.Configs, cfg)

	if err := save(s.path, &doc); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Update merges the given fields into the stored record and bumps its
// updatedAt. Setting IsActive deactivates every other record first.
func (s *ConfigStore) Update(id string, upd ConfigUpdate) (*types.AIConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var doc configDocument
	if err := load(s.path, &doc); err != nil {
		return nil, err
	}

	idx := -1
	for i := range doc.Configs {
		if doc.Configs[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrNotFound
	}

	now := timestamp()
	if upd.IsActive != nil && *upd.IsActive {
		deactivateAll(doc.Configs, id, now)
	}

	cfg := &doc.Configs[idx]
	if upd.Provider != nil {
		cfg.Provider = *upd.Provider
	}
	if upd.Name != nil {
		cfg.Name = *upd.Name
	}
	if upd.APIKey != nil {
		cfg.APIKey = *upd.APIKey
	}
	if upd.BaseURL != nil {
		cfg.BaseURL = *upd.BaseURL
	}
	if upd.Model != nil {
		cfg.Model = *upd.Model
	}
	if upd.IsActive != nil {
		cfg.IsActive = *upd.IsActive
	}
	if upd.Enabled != nil {
		cfg.Enabled = *upd.Enabled
	}
	if upd.Config != nil {
		cfg.Config = *upd.Config
	}
	cfg.UpdatedAt = now

	if err := save(s.path, &doc); err != nil {
		return nil, err
	}
	out := *cfg
	return &out, nil
}

// Delete removes the config with the given id.
func (s *ConfigStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var doc configDocument
	if err := load(s.path, &doc); err != nil {
		return err
	}

	kept := doc.Configs[:0]
	for _, cfg := range doc.Configs {
		if cfg.ID != id {
			kept = append(kept, cfg)
		}
	}
	if len(kept) == len(doc.Configs) {
		return ErrNotFound
	}
	doc.Configs = kept

	return save(s.path, &doc)
}

// SetActive makes the given config the sole active one. A disabled
// record cannot become active.
func (s *ConfigStore) SetActive(id string) (*types.AIConfig, error) {
	existing, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !existing.Enabled {
		return nil, ErrDisabled
	}
	active := true
	return s.Update(id, ConfigUpdate{IsActive: &active})
}

func deactivateAll(configs []types.AIConfig, except, now string) {
	for i := range configs {
		if configs[i].IsActive && configs[i].ID != except {
			configs[i].IsActive = false
			configs[i].UpdatedAt = now
		}
	}
}

// orderKey derives a creation-order key in unix millis, falling back to
// the timestamp embedded in the id for records without createdAt.
func orderKey(cfg types.AIConfig) int64 {
	if cfg.CreatedAt != "" {
		if t, err := time.Parse(time.RFC3339, cfg.CreatedAt); err == nil {
			return t.UnixMilli()
		}
	}
	parts := strings.Split(cfg.ID, "-")
	if len(parts) > 2 {
		if ms, err := strconv.ParseInt(parts[2], 10, 64); err == nil {
			return ms
		}
	}
	return 0
}
