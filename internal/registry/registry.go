// Package registry provides a global registry of loader variants.
// Variants register themselves in init() functions, allowing the hosts to
// discover and build them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/liquid-cat/internal/config"
)

// Variant is a named animation snapshot ready to run.
type Variant struct {
	ID          string
	Title       string
	Description string
	Config      config.LoaderConfig
}

// VariantInfo contains metadata about a registered variant.
type VariantInfo struct {
	ID          string
	Title       string
	Description string
}

// Factory builds the configuration of a variant. customPath is an optional
// YAML file layered over the variant's defaults.
type Factory func(customPath string) (config.LoaderConfig, error)

type entry struct {
	info    VariantInfo
	factory Factory
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a variant.
// Typically called from an init() function.
// Panics if a variant with the same ID is already registered.
func Register(info VariantInfo, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[info.ID]; exists {
		panic(fmt.Sprintf("registry: variant %q already registered", info.ID))
	}
	entries[info.ID] = entry{info: info, factory: f}
}

// List returns information about all registered variants, sorted by ID.
func List() []VariantInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]VariantInfo, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create builds a variant by its ID.
// Returns an error if the ID is not registered or its config fails to load.
func Create(id, customPath string) (Variant, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return Variant{}, fmt.Errorf("registry: unknown variant %q", id)
	}

	cfg, err := e.factory(customPath)
	if err != nil {
		return Variant{}, fmt.Errorf("registry: variant %q: %w", id, err)
	}
	return Variant{
		ID:          e.info.ID,
		Title:       e.info.Title,
		Description: e.info.Description,
		Config:      cfg,
	}, nil
}

// Exists checks if a variant with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
