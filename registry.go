package wirebox

import (
	"iter"
	"sync"
)

// Registry maps bean ids to Definitions. Registration order is kept for
// deterministic diagnostics and resolver tie-breaking.
type Registry struct {
	mu    sync.RWMutex
	defs  map[string]Definition
	order []string
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		defs: make(map[string]Definition, 16),
	}
}

// Register adds a Definition. Empty Scope and Strategy are defaulted to
// ScopeSingleton and StrategyConstructor. Returns
// DuplicateDefinitionError when the id is already present, or
// InvalidDefinitionError when the Definition's shape is malformed.
func (r *Registry) Register(def Definition) error {
	def = def.withDefaults()
	if err := def.validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.defs[def.ID]; exists {
		return &DuplicateDefinitionError{ID: def.ID}
	}
	r.defs[def.ID] = def
	r.order = append(r.order, def.ID)
	return nil
}

// Get returns the Definition for id, or UnknownDefinitionError.
func (r *Registry) Get(id string) (Definition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	def, ok := r.defs[id]
	if !ok {
		return Definition{}, &UnknownDefinitionError{ID: id}
	}
	return def, nil
}

// Has reports whether id is registered.
func (r *Registry) Has(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.defs[id]
	return ok
}

// Len returns the number of registered Definitions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.defs)
}

// All returns a restartable sequence of all Definitions in registration
// order.
func (r *Registry) All() iter.Seq[Definition] {
	return func(yield func(Definition) bool) {
		for _, def := range r.snapshot() {
			if !yield(def) {
				return
			}
		}
	}
}

// snapshot copies the Definitions in registration order so callers can
// iterate without holding the lock.
func (r *Registry) snapshot() []Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Definition, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.defs[id])
	}
	return out
}
