// Package settings persists the watchlist and display preferences.
//
// All settings live in a single JSON object file, read once when the Store is
// opened and written back on every change.
package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Store is a persisted key-value store. It is safe for concurrent use.
type Store struct {
	path string

	mu     sync.Mutex
	values map[string]json.RawMessage
}

// DefaultPath returns the settings file in the user configuration directory.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "fina", "settings.json")
}

// Open loads the store from path. A missing file is an empty store.
func Open(path string) (*Store, error) {
	s := &Store{path: path, values: map[string]json.RawMessage{}}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return nil, err
	}
	if err := json.Unmarshal(b, &s.values); err != nil {
		return nil, fmt.Errorf("format error %q: %w", path, err)
	}
	if s.values == nil {
		s.values = map[string]json.RawMessage{}
	}
	return s, nil
}

// Path returns the file the store is persisted to.
func (s *Store) Path() string { return s.path }

// Get decodes the value of key into v. It reports false if key is not set.
func (s *Store) Get(key string, v any) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, ok := s.values[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return true, fmt.Errorf("invalid value for %q in %q: %w", key, s.path, err)
	}
	return true, nil
}

// Set stores v under key and saves the store.
func (s *Store) Set(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = raw
	return s.save()
}

// Delete removes key and saves the store.
func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.values[key]; !ok {
		return nil
	}
	delete(s.values, key)
	return s.save()
}

// save writes the store to its file. Callers hold s.mu.
func (s *Store) save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
