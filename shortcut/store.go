package shortcut

import (
	"encoding/json"
	"fmt"
	"strings"

	"shortcuts/kv"
)

const recentSuffix = ".recent"

// Store serializes a Collection as a JSON array of {name, content} records
// under a single key.
type Store struct {
	kv  kv.Store
	key string
}

func NewStore(s kv.Store, key string) *Store {
	return &Store{kv: s, key: key}
}

// Key returns the storage key the collection is written under.
func (s *Store) Key() string { return s.key }

// Load returns the persisted collection. A missing key yields an empty
// collection and no error. Unreadable or malformed data yields an empty
// collection together with a *ReadError.
func (s *Store) Load() (Collection, error) {
	data, found, err := s.kv.Get(s.key)
	if err != nil {
		return Collection{}, &ReadError{Key: s.key, Err: err}
	}
	if !found {
		return Collection{}, nil
	}

	var c Collection
	if err := json.Unmarshal(data, &c); err != nil {
		return Collection{}, &ReadError{Key: s.key, Err: err}
	}
	if err := check(c); err != nil {
		return Collection{}, &ReadError{Key: s.key, Err: err}
	}
	if c == nil {
		c = Collection{}
	}
	return c, nil
}

// Save writes the full collection. Failures are returned as *WriteError.
func (s *Store) Save(c Collection) error {
	if c == nil {
		c = Collection{}
	}
	data, err := json.Marshal(c)
	if err != nil {
		return &WriteError{Key: s.key, Err: err}
	}
	if err := s.kv.Set(s.key, data); err != nil {
		return &WriteError{Key: s.key, Err: err}
	}
	return nil
}

// LoadRecent returns the most-recently-used name list, most recent first.
func (s *Store) LoadRecent() ([]string, error) {
	key := s.key + recentSuffix
	data, found, err := s.kv.Get(key)
	if err != nil {
		return []string{}, &ReadError{Key: key, Err: err}
	}
	if !found {
		return []string{}, nil
	}
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return []string{}, &ReadError{Key: key, Err: err}
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}

func (s *Store) SaveRecent(names []string) error {
	key := s.key + recentSuffix
	if names == nil {
		names = []string{}
	}
	data, err := json.Marshal(names)
	if err != nil {
		return &WriteError{Key: key, Err: err}
	}
	if err := s.kv.Set(key, data); err != nil {
		return &WriteError{Key: key, Err: err}
	}
	return nil
}

// check rejects decoded data that breaks the collection invariants instead of
// silently repairing it.
func check(c Collection) error {
	seen := make(map[string]bool, len(c))
	for i, sc := range c {
		name := strings.TrimSpace(sc.Name)
		if name == "" || name != sc.Name {
			return fmt.Errorf("entry %d: invalid name %q", i, sc.Name)
		}
		if seen[name] {
			return fmt.Errorf("entry %d: duplicate name %q", i, sc.Name)
		}
		seen[name] = true
	}
	return nil
}
