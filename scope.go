package wirebox

// Scope defines the lifetime and sharing behavior of a bean.
type Scope string

// Available bean scopes
const (
	// ScopeSingleton shares a single lazily-created instance for the
	// lifetime of the container.
	ScopeSingleton Scope = "singleton"
	// ScopeTransient creates a new instance on every resolution.
	ScopeTransient Scope = "transient"
)

func (s Scope) valid() bool {
	return s == ScopeSingleton || s == ScopeTransient
}

// InjectionStrategy selects how a bean's dependencies are supplied.
// A Definition uses exactly one strategy; mixing is rejected at
// registration time.
type InjectionStrategy string

// Available injection strategies
const (
	// StrategyConstructor passes dependencies as positional factory
	// arguments.
	StrategyConstructor InjectionStrategy = "constructor"
	// StrategySetter constructs the bean with no arguments, then calls
	// Set<Name> for every named dependency.
	StrategySetter InjectionStrategy = "setter"
	// StrategyField constructs the bean with no arguments, then assigns
	// every named dependency to the exported field <Name>.
	StrategyField InjectionStrategy = "field"
)

func (s InjectionStrategy) valid() bool {
	return s == StrategyConstructor || s == StrategySetter || s == StrategyField
}

// named reports whether the strategy addresses injection points by name
// rather than by constructor argument position.
func (s InjectionStrategy) named() bool {
	return s == StrategySetter || s == StrategyField
}
