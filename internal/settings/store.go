// Package settings owns the dashboard configuration document: a single
// JSON file holding the search criteria edited through the dashboard and
// the GoHighLevel integration settings read by the import pipeline.
//
// The store is the only component allowed to write the file. Every mutator
// runs an independent load-modify-save cycle against it; there is no
// in-memory cache and no locking, so two concurrent writers race
// last-writer-wins. The dashboard is a single-operator tool and this
// trade-off is deliberate — callers that need multi-writer safety must
// serialize access themselves.
//
// The store performs no logging and no retries; every failure surfaces to
// the caller.
package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// DefaultFilePath is where the configuration document lives unless the
// caller picks another location. It is resolved relative to the process
// working directory, i.e. the application root.
const DefaultFilePath = "dashboard_config.json"

// Store reads and persists the configuration document at a fixed
// filesystem path resolved once at construction.
type Store struct {
	path string
}

// NewStore binds a store to the configuration file at path. An empty path
// selects [DefaultFilePath].
func NewStore(path string) *Store {
	if path == "" {
		path = DefaultFilePath
	}
	return &Store{path: path}
}

// Path returns the resolved configuration file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads and parses the configuration document.
//
// A missing file is not an error: [DefaultDocument] is returned and
// nothing is created on disk. A file that exists but holds malformed JSON
// yields a *ParseError — never a silent fallback to defaults.
func (s *Store) Load() (Document, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultDocument(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading configuration file %s: %w", s.path, err)
	}

	doc, err := decodeDocument(data)
	if err != nil {
		return nil, &ParseError{Path: s.path, Err: err}
	}
	return doc, nil
}

// Save serializes doc as pretty-printed JSON (2-space indentation) and
// overwrites the file at the store's path. Any failure is reported as a
// *WriteError wrapping the cause.
func (s *Store) Save(doc Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return &WriteError{Path: s.path, Err: err}
	}

	if err := os.WriteFile(s.path, append(data, '\n'), 0o644); err != nil {
		return &WriteError{Path: s.path, Err: err}
	}
	return nil
}
