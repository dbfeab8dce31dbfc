package adapters

import (
	"fmt"
	"sort"
	"sync"

	"github.com/jpp0ca/storybook-media/internal/ports"
)

// StorageRegistry maps backend names to their ObjectStorage implementations.
// It is safe for concurrent use.
type StorageRegistry struct {
	mu       sync.RWMutex
	backends map[string]ports.ObjectStorage
}

// NewStorageRegistry creates an empty registry.
func NewStorageRegistry() *StorageRegistry {
	return &StorageRegistry{
		backends: make(map[string]ports.ObjectStorage),
	}
}

// Register adds a backend to the registry, keyed by its Name().
func (r *StorageRegistry) Register(backend ports.ObjectStorage) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.backends[backend.Name()] = backend
}

// Get returns the backend for the given name, or an error if not found.
func (r *StorageRegistry) Get(name string) (ports.ObjectStorage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	backend, ok := r.backends[name]
	if !ok {
		return nil, fmt.Errorf("unknown storage backend: %s", name)
	}
	return backend, nil
}

// Available returns the names of all registered backends, sorted.
func (r *StorageRegistry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.backends))
	for name := range r.backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
