package wirebox

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
)

// TypeDescriptor describes one constructible type known to a
// TypeRegistry.
type TypeDescriptor struct {
	// Type is the concrete type used for zero-argument construction.
	// Nil for factory-only entries.
	Type reflect.Type

	// Factory is a function with the signature func(deps...) T or
	// func(deps...) (T, error), used for constructor injection. The
	// zero Value when absent.
	Factory reflect.Value
}

// TypeRegistry resolves type references from Definitions to
// constructible type descriptors. It is the dynamic type-by-name
// mechanism; implementations must be safe for concurrent lookups.
type TypeRegistry interface {
	Lookup(typeRef string) (TypeDescriptor, error)
}

// Types is the map-backed TypeRegistry. A name may carry a concrete
// type, a factory, or both; registering either kind twice for the same
// name fails with DuplicateTypeError.
type Types struct {
	mu      sync.RWMutex
	entries map[string]TypeDescriptor
}

// NewTypes creates an empty type registry.
func NewTypes() *Types {
	return &Types{
		entries: make(map[string]TypeDescriptor, 16),
	}
}

// RegisterType registers the concrete type of prototype under name.
// Pointer prototypes register their element type; interface prototypes
// are rejected because they cannot be constructed.
func (t *Types) RegisterType(name string, prototype any) error {
	if name == "" {
		return errors.New("type name cannot be empty")
	}
	if prototype == nil {
		return fmt.Errorf("nil prototype for type %s", name)
	}

	typ := reflect.TypeOf(prototype)
	if typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}
	if typ.Kind() == reflect.Interface {
		return fmt.Errorf("prototype for %s is an interface, not a constructible type", name)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	entry := t.entries[name]
	if entry.Type != nil {
		return &DuplicateTypeError{TypeRef: name}
	}
	entry.Type = typ
	t.entries[name] = entry
	return nil
}

// RegisterFactory registers a constructor function under name. The
// factory must return (T) or (T, error).
func (t *Types) RegisterFactory(name string, factory any) error {
	if name == "" {
		return errors.New("type name cannot be empty")
	}

	val := reflect.ValueOf(factory)
	typ := val.Type()
	if typ.Kind() != reflect.Func {
		return fmt.Errorf("factory for %s must be a function", name)
	}
	if typ.NumOut() == 0 || typ.NumOut() > 2 {
		return fmt.Errorf("factory for %s must return (T) or (T, error)", name)
	}
	if typ.NumOut() == 2 {
		errType := reflect.TypeOf((*error)(nil)).Elem()
		if !typ.Out(1).Implements(errType) {
			return fmt.Errorf("factory for %s: second return value must implement error", name)
		}
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	entry := t.entries[name]
	if entry.Factory.IsValid() {
		return &DuplicateTypeError{TypeRef: name}
	}
	entry.Factory = val
	t.entries[name] = entry
	return nil
}

// Lookup returns the descriptor registered under typeRef, or
// UnknownTypeError.
func (t *Types) Lookup(typeRef string) (TypeDescriptor, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	entry, ok := t.entries[typeRef]
	if !ok {
		return TypeDescriptor{}, &UnknownTypeError{TypeRef: typeRef}
	}
	return entry, nil
}
