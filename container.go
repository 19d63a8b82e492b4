package wirebox

import (
	"context"
	"errors"
	"reflect"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type containerState int

const (
	stateUninitialized containerState = iota
	stateReady
)

// flight is the once-guarded construction slot for one singleton id.
// Losers of a concurrent first access block on the winner's Once and
// observe the same value or error.
type flight struct {
	once sync.Once
	val  any
	err  error
}

// Container orchestrates a Registry, a TypeRegistry, and the
// instantiator: it resolves the dependency graph once at Initialize,
// then serves fully-wired beans through Get. Safe for concurrent use.
type Container struct {
	mu       sync.RWMutex
	registry *Registry
	types    TypeRegistry
	inst     *instantiator

	graph *resolvedGraph
	state containerState

	// flightMu guards singletons and created; Get holds only the
	// read half of mu, so singleton bookkeeping needs its own lock.
	flightMu   sync.Mutex
	singletons map[string]*flight
	created    []string

	id  string
	log *zap.Logger
	ctx *ContainerContext
}

// Option configures a Container during New.
type Option func(*Container)

// WithLogger sets the container's logger. The default is a no-op
// logger.
func WithLogger(log *zap.Logger) Option {
	return func(c *Container) {
		c.log = log
	}
}

// WithContext sets the parent context for the ContainerContext handed
// to lifecycle hooks.
func WithContext(ctx context.Context) Option {
	return func(c *Container) {
		c.ctx = NewContainerContext(ctx)
	}
}

// WithContextValues merges the values of vals into the
// ContainerContext handed to lifecycle hooks. Caller values win on key
// collisions; the container's own seeds (container_id) are applied
// last and cannot be overridden.
func WithContextValues(vals *ContainerContext) Option {
	return func(c *Container) {
		c.ctx = c.ctx.MergeWith(vals)
	}
}

// New creates an uninitialized Container over the given registries.
// Call Initialize before Get.
func New(registry *Registry, types TypeRegistry, opts ...Option) *Container {
	c := &Container{
		registry: registry,
		types:    types,
		inst:     &instantiator{types: types},
		id:       uuid.NewString(),
		log:      zap.NewNop(),
		ctx:      NewContainerContext(context.Background()),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With(zap.String("container_id", c.id))
	c.ctx = c.ctx.WithValue("container_id", c.id)
	return c
}

// ID returns the container's unique identifier.
func (c *Container) ID() string {
	return c.id
}

// Initialize resolves the dependency graph. It is all-or-nothing: on
// any resolution failure the container stays uninitialized and Get
// keeps failing with NotReadyError. Success clears the instance cache.
func (c *Container) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	graph, err := resolveGraph(c.registry)
	if err != nil {
		c.graph = nil
		c.state = stateUninitialized
		c.flightMu.Lock()
		c.singletons = nil
		c.created = nil
		c.flightMu.Unlock()
		c.log.Debug("graph resolution failed", zap.Error(err))
		return err
	}

	c.graph = graph
	c.state = stateReady
	c.flightMu.Lock()
	c.singletons = make(map[string]*flight, len(graph.order))
	c.created = nil
	c.flightMu.Unlock()

	c.log.Debug("container initialized",
		zap.Int("definitions", len(graph.order)),
		zap.Strings("order", graph.order))
	return nil
}

// Refresh re-resolves the graph against the possibly-changed Registry
// and invalidates the instance cache. Idempotent for an unchanged
// Registry. A failed Refresh reverts the container to uninitialized
// rather than serving a stale graph.
func (c *Container) Refresh() error {
	return c.Initialize()
}

// Order returns the resolved instantiation order. Fails with
// NotReadyError before a successful Initialize.
func (c *Container) Order() ([]string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.state != stateReady {
		return nil, &NotReadyError{}
	}
	out := make([]string, len(c.graph.order))
	copy(out, c.graph.order)
	return out, nil
}

// Get returns the fully-wired bean for id. Singleton beans are built at
// most once and cached; transient beans are built fresh on every call,
// reusing singleton dependencies from the cache. Construction failures
// come back wrapped in ResolutionError chains naming the offending ids.
func (c *Container) Get(id string) (any, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.state != stateReady {
		return nil, &NotReadyError{}
	}
	return c.get(id)
}

// As resolves id from the container and type-asserts the result.
//
//	metier, err := wirebox.As[Metier](c, "metier")
func As[T any](c *Container, id string) (T, error) {
	var zero T

	val, err := c.Get(id)
	if err != nil {
		return zero, err
	}

	typed, ok := val.(T)
	if !ok {
		got := "nil"
		if val != nil {
			got = reflect.TypeOf(val).String()
		}
		return zero, &TypeMismatchError{
			Expected: reflect.TypeOf((*T)(nil)).Elem().String(),
			Got:      got,
		}
	}
	return typed, nil
}

// get serves one id under the read lock, resolving only against the
// definitions snapshotted into the resolved graph: Registry entries
// added after Initialize are unknown here until a Refresh validates
// them. The snapshot is acyclic, so the recursion through
// dependencies terminates.
func (c *Container) get(id string) (any, error) {
	def, ok := c.graph.definition(id)
	if !ok {
		return nil, &UnknownDefinitionError{ID: id}
	}

	if def.Scope == ScopeSingleton {
		return c.getSingleton(def)
	}
	return c.build(def)
}

// getSingleton guarantees at-most-one construction per id under
// concurrent first access.
func (c *Container) getSingleton(def Definition) (any, error) {
	c.flightMu.Lock()
	f, ok := c.singletons[def.ID]
	if !ok {
		f = &flight{}
		c.singletons[def.ID] = f
	}
	c.flightMu.Unlock()

	f.once.Do(func() {
		f.val, f.err = c.build(def)
		if f.err == nil {
			c.flightMu.Lock()
			c.created = append(c.created, def.ID)
			c.flightMu.Unlock()
		}
	})
	if f.err != nil {
		return nil, f.err
	}
	c.log.Debug("singleton served", zap.String("bean_id", def.ID))
	return f.val, nil
}

// build resolves def's dependencies, constructs the object, and runs
// its OnBoot hook if it has one.
func (c *Container) build(def Definition) (any, error) {
	values := make([]any, len(def.Dependencies))
	for i, dep := range def.Dependencies {
		if !dep.isRef() {
			values[i] = dep.Value
			continue
		}
		val, err := c.get(dep.Ref)
		if err != nil {
			return nil, &ResolutionError{ID: def.ID, Err: err}
		}
		values[i] = val
	}

	obj, err := c.inst.construct(def, values)
	if err != nil {
		return nil, &ResolutionError{ID: def.ID, Err: err}
	}

	if lc, ok := obj.(Lifecycle); ok {
		if err := lc.OnBoot(c.ctx); err != nil {
			return nil, &ResolutionError{ID: def.ID, Err: &BootError{ID: def.ID, Err: err}}
		}
	}

	c.log.Debug("constructed bean",
		zap.String("bean_id", def.ID),
		zap.String("scope", string(def.Scope)))
	return obj, nil
}

// Teardown shuts the container down: cached singletons implementing
// Lifecycle get OnShutdown in reverse instantiation order, the instance
// cache is destroyed, and the container returns to uninitialized. The
// context bounds the overall shutdown; on expiry remaining hooks are
// skipped and the context error is included in the result.
func (c *Container) Teardown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != stateReady {
		return &NotReadyError{}
	}

	var errs []error
	for i := len(c.created) - 1; i >= 0; i-- {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		id := c.created[i]
		f := c.singletons[id]
		if f == nil || f.err != nil {
			continue
		}
		lc, ok := f.val.(Lifecycle)
		if !ok {
			continue
		}
		if err := lc.OnShutdown(c.ctx); err != nil {
			c.log.Warn("shutdown hook failed", zap.String("bean_id", id), zap.Error(err))
			errs = append(errs, &ShutdownError{ID: id, Err: err})
		}
	}

	c.singletons = nil
	c.created = nil
	c.graph = nil
	c.state = stateUninitialized

	c.log.Debug("container torn down")
	return errors.Join(errs...)
}
