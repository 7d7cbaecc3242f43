package builder

import "sync"

// Registry manages builder instances by kind.
type Registry struct {
	builders map[Kind]Builder
	mu       sync.RWMutex
}

// NewRegistry creates a new builder registry.
func NewRegistry() *Registry {
	return &Registry{
		builders: make(map[Kind]Builder),
	}
}

// Register adds a builder to the registry, replacing any builder of
// the same kind.
func (r *Registry) Register(b Builder) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.builders[b.Kind()] = b
}

// Get retrieves a builder by kind.
func (r *Registry) Get(kind Kind) (Builder, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.builders[kind]
	return b, ok
}

// Close closes all registered builders.
func (r *Registry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, b := range r.builders {
		if err := b.Close(); err != nil {
			return err
		}
	}

	return nil
}
