// Package registry provides a global registry of world definitions.
// Worlds register themselves in init() functions, allowing the platform
// to discover and build maps without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-overworld/internal/world"
)

// WorldInfo contains metadata about a registered world.
type WorldInfo struct {
	ID    string
	Title string
}

var (
	definitions = make(map[string]world.Definition)
	mu          sync.RWMutex
)

// Register adds a world definition to the registry.
// Typically called from an init() function.
// Panics if a world with the same ID is already registered.
func Register(d world.Definition) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := definitions[d.ID]; exists {
		panic(fmt.Sprintf("registry: world %q already registered", d.ID))
	}

	definitions[d.ID] = d
}

// List returns information about all registered worlds, sorted by ID.
func List() []WorldInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]WorldInfo, 0, len(definitions))
	for id, d := range definitions {
		result = append(result, WorldInfo{
			ID:    id,
			Title: d.Name,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Lookup returns the definition registered under id.
// Returns an error if the world ID is not registered.
func Lookup(id string) (world.Definition, error) {
	mu.RLock()
	defer mu.RUnlock()

	d, ok := definitions[id]
	if !ok {
		return world.Definition{}, fmt.Errorf("registry: unknown world %q", id)
	}
	return d, nil
}

// Create builds a fresh map for the world registered under id.
func Create(id string) (*world.Map, error) {
	d, err := Lookup(id)
	if err != nil {
		return nil, err
	}
	return d.Build()
}

// Exists checks if a world with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := definitions[id]
	return ok
}
