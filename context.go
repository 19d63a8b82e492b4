package wirebox

import "context"

// ContainerContext extends a standard context.Context with an immutable
// value bag the container hands to lifecycle hooks. Deriving a new
// context with WithValue or MergeWith never mutates the receiver, so a
// ContainerContext is safe to share across goroutines.
type ContainerContext struct {
	context.Context
	values map[any]any
}

// NewContainerContext creates a ContainerContext wrapping parent. A nil
// parent defaults to context.Background().
func NewContainerContext(parent context.Context) *ContainerContext {
	if parent == nil {
		parent = context.Background()
	}
	return &ContainerContext{Context: parent}
}

// WithValue returns a derived ContainerContext carrying the key-value
// pair in addition to all values of the receiver.
func (c *ContainerContext) WithValue(key, val any) *ContainerContext {
	next := &ContainerContext{
		Context: c.Context,
		values:  make(map[any]any, len(c.values)+1),
	}
	for k, v := range c.values {
		next.values[k] = v
	}
	next.values[key] = val
	return next
}

// Value returns the value for key, consulting the bag before the parent
// context.
func (c *ContainerContext) Value(key any) any {
	if c == nil {
		return nil
	}
	if val, ok := c.values[key]; ok {
		return val
	}
	if c.Context != nil {
		return c.Context.Value(key)
	}
	return nil
}

// MergeWith returns a derived ContainerContext combining both bags.
// Values from other win on key collisions.
func (c *ContainerContext) MergeWith(other *ContainerContext) *ContainerContext {
	next := &ContainerContext{
		Context: c.Context,
		values:  make(map[any]any, len(c.values)),
	}
	for k, v := range c.values {
		next.values[k] = v
	}
	if other != nil {
		for k, v := range other.values {
			next.values[k] = v
		}
	}
	return next
}
