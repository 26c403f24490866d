package recent

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// FileBackend stores each record as YAML in Dir/<name>.yaml. Characters that
// are unsafe in file names are replaced with '_'.
type FileBackend struct {
	Dir string
}

// Path returns the file a record named name is stored in.
func (b FileBackend) Path(name string) string {
	return filepath.Join(b.Dir, sanitize(name)+".yaml")
}

// Load implements Backend. A missing file is an empty record.
func (b FileBackend) Load(name string) (Record, error) {
	data, err := os.ReadFile(b.Path(name))
	if errors.Is(err, os.ErrNotExist) {
		return Record{Name: name}, nil
	}
	if err != nil {
		return Record{}, err
	}

	var rec Record
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return Record{}, fmt.Errorf("parse %s: %w", b.Path(name), err)
	}
	rec.Name = name
	return rec, nil
}

// Save implements Backend. The file is replaced atomically.
func (b FileBackend) Save(rec Record) error {
	if err := os.MkdirAll(b.Dir, 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(rec)
	if err != nil {
		return err
	}

	path := b.Path(rec.Name)
	tmp, err := os.CreateTemp(b.Dir, ".recent-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func sanitize(name string) string {
	if name == "" {
		return "recent"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '.':
			return r
		default:
			return '_'
		}
	}, name)
}

// MemoryBackend keeps records in memory.
type MemoryBackend struct {
	mu      sync.Mutex
	records map[string]Record
}

// NewMemoryBackend returns an empty MemoryBackend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{records: make(map[string]Record)}
}

// Load implements Backend.
func (b *MemoryBackend) Load(name string) (Record, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	rec, ok := b.records[name]
	if !ok {
		return Record{Name: name}, nil
	}
	rec.Paths = slices.Clone(rec.Paths)
	return rec, nil
}

// Save implements Backend.
func (b *MemoryBackend) Save(rec Record) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	rec.Paths = slices.Clone(rec.Paths)
	b.records[rec.Name] = rec
	return nil
}
