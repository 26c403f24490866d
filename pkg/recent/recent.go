// Package recent keeps a bounded, most-recent-first list of opened files.
package recent

import (
	"fmt"
	"slices"
	"sync"
)

// DefaultMax is the number of paths kept when no capacity is configured.
const DefaultMax = 5

// Record is the persisted form of a store.
type Record struct {
	Name  string   `yaml:"name"`
	Max   int      `yaml:"max"`
	Paths []string `yaml:"paths"`
}

// Backend loads and saves records by store name.
type Backend interface {
	// Load returns the record saved under name, or an empty record if there
	// is none yet.
	Load(name string) (Record, error)
	Save(rec Record) error
}

// Store is a recent-files list. Index 0 is the most recent path.
type Store struct {
	mu      sync.Mutex
	name    string
	max     int
	paths   []string
	backend Backend
}

// New returns a store named name holding at most max paths, restored from
// backend. A max below one selects DefaultMax. A nil backend keeps the list
// in memory only.
func New(name string, max int, backend Backend) (*Store, error) {
	if max < 1 {
		max = DefaultMax
	}
	if backend == nil {
		backend = NewMemoryBackend()
	}
	s := &Store{name: name, max: max, backend: backend}

	rec, err := backend.Load(name)
	if err != nil {
		return nil, fmt.Errorf("recent: load %q: %w", name, err)
	}
	for _, p := range rec.Paths {
		if p == "" || slices.Contains(s.paths, p) {
			continue
		}
		s.paths = append(s.paths, p)
	}
	s.trim()
	return s, nil
}

// Name returns the store name.
func (s *Store) Name() string { return s.name }

// Max returns the capacity.
func (s *Store) Max() int { return s.max }

// Add puts path at the front. An existing occurrence is moved rather than
// duplicated; the oldest path is dropped once the list is full.
func (s *Store) Add(path string) {
	if path == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.paths = slices.DeleteFunc(s.paths, func(p string) bool { return p == path })
	s.paths = slices.Insert(s.paths, 0, path)
	s.trim()
}

// Remove deletes path from the list. Removing an absent path is a no-op.
func (s *Store) Remove(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paths = slices.DeleteFunc(s.paths, func(p string) bool { return p == path })
}

// List returns a copy of the paths, most recent first.
func (s *Store) List() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.paths)
}

// Len returns the number of paths.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.paths)
}

// Save writes the list through the backend.
func (s *Store) Save() error {
	s.mu.Lock()
	rec := Record{Name: s.name, Max: s.max, Paths: slices.Clone(s.paths)}
	s.mu.Unlock()

	if err := s.backend.Save(rec); err != nil {
		return fmt.Errorf("recent: save %q: %w", s.name, err)
	}
	return nil
}

func (s *Store) trim() {
	if len(s.paths) > s.max {
		s.paths = s.paths[:s.max]
	}
}
