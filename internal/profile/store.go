// Package profile holds database connection profiles and the JSON file
// they are persisted in. The whole file is read once by Load and rewritten
// in full on every Add; there is no locking between processes.
package profile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// DefaultPath is the store location used when nothing else is configured.
const DefaultPath = "config.json"

// Store maps profile names to profiles and mirrors them to a file on disk.
type Store struct {
	path     string
	profiles map[string]Profile
}

// Load reads the store at path. A missing file yields an empty store.
func Load(path string) (*Store, error) {
	if path == "" {
		path = DefaultPath
	}
	s := &Store{path: path}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.profiles = make(map[string]Profile)

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read profile store %s: %w", s.path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, &s.profiles); err != nil {
		return fmt.Errorf("parse profile store %s: %w", s.path, err)
	}
	if s.profiles == nil {
		s.profiles = make(map[string]Profile)
	}
	return nil
}

// Path returns the file backing the store.
func (s *Store) Path() string {
	return s.path
}

// Add inserts or overwrites the profile under name and persists the store.
func (s *Store) Add(name string, p Profile) error {
	if s.profiles == nil {
		s.profiles = make(map[string]Profile)
	}
	s.profiles[name] = p
	return s.save()
}

// Get returns the profile stored under name.
func (s *Store) Get(name string) (Profile, bool) {
	p, ok := s.profiles[name]
	return p, ok
}

// Names returns all profile names in sorted order.
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.profiles))
	for name := range s.profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len reports the number of stored profiles.
func (s *Store) Len() int {
	return len(s.profiles)
}

func (s *Store) save() error {
	data, err := json.MarshalIndent(s.profiles, "", "    ")
	if err != nil {
		return fmt.Errorf("encode profile store: %w", err)
	}
	data = append(data, '\n')

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create profile store dir: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write profile store %s: %w", s.path, err)
	}
	return nil
}
