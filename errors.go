package wirebox

import (
	"fmt"
	"strings"
)

// DuplicateDefinitionError represents a second registration for an id.
type DuplicateDefinitionError struct {
	ID string
}

func (e *DuplicateDefinitionError) Error() string {
	return fmt.Sprintf("duplicate definition for id: %s", e.ID)
}

// UnknownDefinitionError represents a lookup for an unregistered id.
type UnknownDefinitionError struct {
	ID string
}

func (e *UnknownDefinitionError) Error() string {
	return fmt.Sprintf("no definition found for id: %s", e.ID)
}

// InvalidDefinitionError represents a Definition with a malformed shape.
type InvalidDefinitionError struct {
	ID     string
	Reason string
}

func (e *InvalidDefinitionError) Error() string {
	return fmt.Sprintf("invalid definition %q: %s", e.ID, e.Reason)
}

// UnresolvedDependencyError represents a dependency reference pointing
// at an id that is not registered.
type UnresolvedDependencyError struct {
	From    string
	Missing string
}

func (e *UnresolvedDependencyError) Error() string {
	return fmt.Sprintf("definition %q references unknown id: %s", e.From, e.Missing)
}

// CircularDependencyError represents a reference cycle in the graph.
// Path holds the full cycle, first id repeated last (e.g. [a b a]).
type CircularDependencyError struct {
	Path []string
}

func (e *CircularDependencyError) Error() string {
	return fmt.Sprintf("circular dependency detected: %s", strings.Join(e.Path, " -> "))
}

// DuplicateTypeError represents a second type registration for a name.
type DuplicateTypeError struct {
	TypeRef string
}

func (e *DuplicateTypeError) Error() string {
	return fmt.Sprintf("duplicate type registration for: %s", e.TypeRef)
}

// UnknownTypeError represents a type reference that does not resolve to
// a constructible type for the requested strategy.
type UnknownTypeError struct {
	TypeRef string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("no constructible type found for: %s", e.TypeRef)
}

// ConstructorArityMismatchError represents a declared argument list that
// does not match the factory's parameter count.
type ConstructorArityMismatchError struct {
	TypeRef string
	Want    int
	Got     int
}

func (e *ConstructorArityMismatchError) Error() string {
	return fmt.Sprintf("constructor for %s takes %d arguments, definition declares %d", e.TypeRef, e.Want, e.Got)
}

// NoDefaultConstructorError represents a setter/field-injected type with
// no zero-argument way to construct it.
type NoDefaultConstructorError struct {
	TypeRef string
}

func (e *NoDefaultConstructorError) Error() string {
	return fmt.Sprintf("no zero-argument constructor for: %s", e.TypeRef)
}

// UnknownInjectionPointError represents a named dependency whose setter
// or field does not exist on the target type.
type UnknownInjectionPointError struct {
	TypeRef string
	Name    string
}

func (e *UnknownInjectionPointError) Error() string {
	return fmt.Sprintf("type %s has no injection point named %q", e.TypeRef, e.Name)
}

// TypeMismatchError represents a value that is not assignable to its
// injection point.
type TypeMismatchError struct {
	Expected string
	Got      string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("type mismatch: expected %s, got %s", e.Expected, e.Got)
}

// NotReadyError represents a call that requires a successfully
// initialized container.
type NotReadyError struct{}

func (e *NotReadyError) Error() string {
	return "container not initialized"
}

// ResolutionError wraps a construction failure with the id of the bean
// being built. Nested resolution failures chain, so the full causal path
// is recoverable through errors.Unwrap.
type ResolutionError struct {
	ID  string
	Err error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("resolving %q: %v", e.ID, e.Err)
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}

// BootError represents a bean's OnBoot hook failure.
type BootError struct {
	ID  string
	Err error
}

func (e *BootError) Error() string {
	return fmt.Sprintf("boot failed for %q: %v", e.ID, e.Err)
}

func (e *BootError) Unwrap() error {
	return e.Err
}

// ShutdownError represents a bean's OnShutdown hook failure.
type ShutdownError struct {
	ID  string
	Err error
}

func (e *ShutdownError) Error() string {
	return fmt.Sprintf("shutdown failed for %q: %v", e.ID, e.Err)
}

func (e *ShutdownError) Unwrap() error {
	return e.Err
}
