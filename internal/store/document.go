// Package store persists dashboard state as JSON documents on disk.
//
// Each store owns one document and serializes every read-modify-rewrite
// cycle behind its own mutex, so overlapping requests inside one process
// cannot interleave partial writes. Cross-process writers are not guarded.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/google/renameio"
	"github.com/google/uuid"
)

// load reads the JSON document at path into v. A missing file is the
// expected first-run state and leaves v at its zero value; a file that
// exists but cannot be read or parsed is surfaced as an error so that a
// corrupted document is never silently replaced by an empty one.
func load(path string, v any) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("store: failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("store: %s is not valid JSON: %w", path, err)
	}
	return nil
}

// save atomically replaces the document at path with v.
func save(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("store: failed to create data directory: %w", err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("store: failed to marshal %s: %w", path, err)
	}
	if err := renameio.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("store: failed to write %s: %w", path, err)
	}
	return nil
}

// newID builds a time-ordered unique token like "alias-1756700000000-1a2b3c4d".
// The embedded millisecond timestamp doubles as a creation-order key.
func newID(prefix string) string {
	return fmt.Sprintf("%s-%d-%s", prefix, time.Now().UnixMilli(), uuid.NewString()[:8])
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
