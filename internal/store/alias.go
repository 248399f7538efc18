package store

import (
	"path/filepath"
	"sort"
	"sync"

	"github.com/DanZai233/LPH/api/types"
)

const aliasIDPrefix = "alias"

type aliasDocument struct {
	Aliases []types.Alias `json:"aliases"`
}

// AliasStore persists shell aliases in a single JSON document. Alias
// names are unique; the check happens under the document mutex so two
// overlapping creates cannot both claim a name.
type AliasStore struct {
	path string
	mu   sync.Mutex
}

// NewAliasStore returns a store backed by <dir>/aliases.json.
func NewAliasStore(dir string) *AliasStore {
	return &AliasStore{path: filepath.Join(dir, "aliases.json")}
}

// AliasUpdate is a partial update; nil fields keep their stored value.
type AliasUpdate struct {
	Name        *string
	Command     *string
	Description *string
}

// List returns every alias, newest id first.
func (s *AliasStore) List() ([]types.Alias, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var doc aliasDocument
	if err := load(s.path, &doc); err != nil {
		return nil, err
	}
	sort.SliceStable(doc.Aliases, func(i, j int) bool {
		return doc.Aliases[i].ID > doc.Aliases[j].ID
	})
	return doc.Aliases, nil
}

// GetByID returns the alias with the given id, or ErrNotFound.
func (s *AliasStore) GetByID(id string) (*types.Alias, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var doc aliasDocument
	if err := load(s.path, &doc); err != nil {
		return nil, err
	}
	for i := range doc.Aliases {
		if doc.Aliases[i].ID == id {
			alias := doc.Aliases[i]
			return &alias, nil
		}
	}
	return nil, ErrNotFound
}

// Create appends a new alias, assigning its id. The name must not be in
// use by any existing alias.
func (s *AliasStore) Create(name, command, description string) (*types.Alias, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var doc aliasDocument
	if err := load(s.path, &doc); err != nil {
		return nil, err
	}
	for _, alias := range doc.Aliases {
		if alias.Name == name {
			return nil, ErrDuplicateName
		}
	}

	alias := types.Alias{
		ID:          newID(aliasIDPrefix),
		Name:        name,
		Command:     command,
		Description: description,
	}
	doc.Aliases = append(doc.Aliases, alias)

	if err := save(s.path, &doc); err != nil {
		return nil, err
	}
	return &alias, nil
}

// Update merges the given fields into the stored alias. Renaming to a
// name held by a different alias is rejected.
func (s *AliasStore) Update(id string, upd AliasUpdate) (*types.Alias, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var doc aliasDocument
	if err := load(s.path, &doc); err != nil {
		return nil, err
	}

	idx := -1
	for i := range doc.Aliases {
		if doc.Aliases[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrNotFound
	}

	if upd.Name != nil {
		for _, alias := range doc.Aliases {
			if alias.Name == *upd.Name && alias.ID != id {
				return nil, ErrDuplicateName
			}
		}
	}

	alias := &doc.Aliases[idx]
	if upd.Name != nil {
		alias.Name = *upd.Name
	}
	if upd.Command != nil {
		alias.Command = *upd.Command
	}
	if upd.Description != nil {
		alias.Description = *upd.Description
	}

	if err := save(s.path, &doc); err != nil {
		return nil, err
	}
	out := *alias
	return &out, nil
}

// Delete removes the alias with the given id.
func (s *AliasStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var doc aliasDocument
	if err := load(s.path, &doc); err != nil {
		return err
	}

	kept := doc.Aliases[:0]
	for _, alias := range doc.Aliases {
		if alias.ID != id {
			kept = append(kept, alias)
		}
	}
	if len(kept) == len(doc.Aliases) {
		return ErrNotFound
	}
	doc.Aliases = kept

	return save(s.path, &doc)
}
