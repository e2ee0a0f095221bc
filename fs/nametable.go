// Package fs persists the per-language name table as a JSON document.
package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"scriptura"
)

// Ensure NameTableStore implements scriptura.NameTableStore at compile time.
var _ scriptura.NameTableStore = (*NameTableStore)(nil)

// NameTableStore reads and writes a name table JSON file of the shape
// {"<lang>": {"<slug>": "<Localized Title>", "chapter": "<word>"}}.
type NameTableStore struct {
	path string
}

// NewNameTableStore creates a store backed by the file at path.
func NewNameTableStore(path string) *NameTableStore {
	return &NameTableStore{path: path}
}

// Load reads the table from disk. A missing or corrupt file yields an empty
// table: the service must start even when the precomputed names are gone.
func (s *NameTableStore) Load(ctx context.Context) (scriptura.NameTable, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return scriptura.NameTable{}, nil
	}
	var table scriptura.NameTable
	if err := json.Unmarshal(data, &table); err != nil || table == nil {
		return scriptura.NameTable{}, nil
	}
	return table, nil
}

// Save writes the table through a temp file and rename, so readers see
// either the old file or the new one, never a partial write.
func (s *NameTableStore) Save(ctx context.Context, table scriptura.NameTable) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(table); err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
