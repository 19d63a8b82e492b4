package wirebox

// Definition is the declarative recipe for constructing one bean: its
// identity, the constructible type it maps to, its lifetime, and the
// dependencies to inject. Definitions are plain values; the container
// never mutates them after registration.
type Definition struct {
	// ID is the bean's unique identifier within a Registry.
	ID string

	// TypeRef names a constructible type in the TypeRegistry the
	// container was created with.
	TypeRef string

	// Scope defaults to ScopeSingleton when empty.
	Scope Scope

	// Strategy defaults to StrategyConstructor when empty.
	Strategy InjectionStrategy

	// Dependencies lists the values to inject, in declaration order.
	// Constructor-strategy definitions use positional points (Index);
	// setter/field-strategy definitions use named points (Name).
	Dependencies []Dependency
}

// Dependency is a single injection point of a Definition. It either
// references another bean by id or carries a literal value.
type Dependency struct {
	// Ref names another Definition's id. When empty, Value is injected
	// as a literal.
	Ref string

	// Value is the literal to inject when Ref is empty. A nil literal
	// injects the zero value of the target parameter or field.
	Value any

	// Index is the constructor argument position for positional points.
	Index int

	// Name is the setter/field name for named points.
	Name string
}

// RefArg references bean id at constructor argument position index.
func RefArg(index int, id string) Dependency {
	return Dependency{Ref: id, Index: index}
}

// LiteralArg injects value at constructor argument position index.
func LiteralArg(index int, value any) Dependency {
	return Dependency{Value: value, Index: index}
}

// RefProperty references bean id through the setter or field name.
func RefProperty(name, id string) Dependency {
	return Dependency{Ref: id, Name: name}
}

// LiteralProperty injects value through the setter or field name.
func LiteralProperty(name string, value any) Dependency {
	return Dependency{Value: value, Name: name}
}

func (d Dependency) isRef() bool {
	return d.Ref != ""
}

func (d Dependency) isNamed() bool {
	return d.Name != ""
}

// withDefaults fills the zero Scope and Strategy.
func (d Definition) withDefaults() Definition {
	if d.Scope == "" {
		d.Scope = ScopeSingleton
	}
	if d.Strategy == "" {
		d.Strategy = StrategyConstructor
	}
	return d
}

// validate checks the Definition's shape. Reference targets are not
// checked here; dangling references are a resolution-time concern.
func (d Definition) validate() error {
	if d.ID == "" {
		return &InvalidDefinitionError{ID: d.ID, Reason: "empty id"}
	}
	if d.TypeRef == "" {
		return &InvalidDefinitionError{ID: d.ID, Reason: "empty type reference"}
	}
	if !d.Scope.valid() {
		return &InvalidDefinitionError{ID: d.ID, Reason: "unknown scope " + string(d.Scope)}
	}
	if !d.Strategy.valid() {
		return &InvalidDefinitionError{ID: d.ID, Reason: "unknown injection strategy " + string(d.Strategy)}
	}

	seenIdx := make(map[int]bool, len(d.Dependencies))
	seenName := make(map[string]bool, len(d.Dependencies))
	for _, dep := range d.Dependencies {
		if d.Strategy.named() {
			if !dep.isNamed() {
				return &InvalidDefinitionError{ID: d.ID, Reason: "positional dependency on a " + string(d.Strategy) + "-injected bean"}
			}
			if seenName[dep.Name] {
				return &InvalidDefinitionError{ID: d.ID, Reason: "duplicate injection point " + dep.Name}
			}
			seenName[dep.Name] = true
			continue
		}
		if dep.isNamed() {
			return &InvalidDefinitionError{ID: d.ID, Reason: "named dependency on a constructor-injected bean"}
		}
		if dep.Index < 0 {
			return &InvalidDefinitionError{ID: d.ID, Reason: "negative constructor argument index"}
		}
		if seenIdx[dep.Index] {
			return &InvalidDefinitionError{ID: d.ID, Reason: "duplicate constructor argument index"}
		}
		seenIdx[dep.Index] = true
	}
	return nil
}
