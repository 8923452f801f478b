package catalog

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Store provides read access to the presets and extras used by callers of
// the calculator.
type Store interface {
	ListPresets() ([]Preset, error)
	GetPreset(name string) (Preset, error)
	Catalog() (Catalog, error)
}

// MemoryStore keeps the catalog in memory and guards access with a RWMutex.
type MemoryStore struct {
	mu      sync.RWMutex
	catalog Catalog
}

// NewMemoryStore initialises a store with a copy of the default catalog.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		catalog: Default(),
	}
}

// ListPresets returns copies of all presets sorted by name.
func (s *MemoryStore) ListPresets() ([]Preset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Preset, 0, len(s.catalog.Presets))
	for _, p := range s.catalog.Presets {
		out = append(out, p.clone())
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out, nil
}

// GetPreset looks a preset up by name, ignoring case.
func (s *MemoryStore) GetPreset(name string) (Preset, error) {
	name = strings.TrimSpace(name)

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.catalog.Presets {
		if strings.EqualFold(p.Name, name) {
			return p.clone(), nil
		}
	}
	return Preset{}, fmt.Errorf("%w: %q", ErrPresetNotFound, name)
}

// Catalog returns a copy of the whole catalog.
func (s *MemoryStore) Catalog() (Catalog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.catalog.clone(), nil
}

// SetCatalog validates and stores a copy of c.
func (s *MemoryStore) SetCatalog(c Catalog) error {
	if err := Validate(c); err != nil {
		return err
	}
	cloned := c.clone()

	s.mu.Lock()
	s.catalog = cloned
	s.mu.Unlock()

	return nil
}

// OpenStore returns a store holding the built-in catalog, or the YAML catalog
// at path merged over it when path is set.
func OpenStore(path string) (*MemoryStore, error) {
	store := NewMemoryStore()
	if path == "" {
		return store, nil
	}

	cat, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	if err := store.SetCatalog(cat); err != nil {
		return nil, err
	}
	return store, nil
}
