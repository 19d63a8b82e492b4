package wirebox

// resolvedGraph is the output of a successful resolution: the
// instantiation order (every id after all ids it depends on) plus a
// snapshot of the Definitions that were validated. Immutable once
// built; the container serves lookups only from this snapshot, so ids
// registered after the resolve stay invisible until the next one.
type resolvedGraph struct {
	order []string
	defs  map[string]Definition
}

func (g *resolvedGraph) definition(id string) (Definition, bool) {
	def, ok := g.defs[id]
	return def, ok
}

type visitState int

const (
	unvisited visitState = iota
	inProgress
	done
)

// resolveGraph validates every dependency reference against the
// registry, detects cycles, and emits ids in dependencies-first order.
// Roots are walked in registration order so independent subgraphs
// order deterministically.
func resolveGraph(registry *Registry) (*resolvedGraph, error) {
	defs := registry.snapshot()

	byID := make(map[string]Definition, len(defs))
	for _, def := range defs {
		byID[def.ID] = def
	}

	// Dangling references fail before any traversal.
	for _, def := range defs {
		for _, dep := range def.Dependencies {
			if !dep.isRef() {
				continue
			}
			if _, ok := byID[dep.Ref]; !ok {
				return nil, &UnresolvedDependencyError{From: def.ID, Missing: dep.Ref}
			}
		}
	}

	g := &resolvedGraph{
		order: make([]string, 0, len(defs)),
		defs:  byID,
	}
	states := make(map[string]visitState, len(defs))

	var visit func(id string, stack []string) error
	visit = func(id string, stack []string) error {
		switch states[id] {
		case inProgress:
			return cycleError(id, stack)
		case done:
			return nil
		}

		states[id] = inProgress
		stack = append(stack, id)

		for _, dep := range byID[id].Dependencies {
			if !dep.isRef() {
				continue
			}
			if err := visit(dep.Ref, stack); err != nil {
				return err
			}
		}

		states[id] = done
		g.order = append(g.order, id)
		return nil
	}

	for _, def := range defs {
		if err := visit(def.ID, nil); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// cycleError trims the traversal stack to the repeated id so the path
// reads as a closed cycle, e.g. [a b a].
func cycleError(id string, stack []string) error {
	start := 0
	for i, s := range stack {
		if s == id {
			start = i
			break
		}
	}

	path := make([]string, 0, len(stack)-start+1)
	path = append(path, stack[start:]...)
	path = append(path, id)
	return &CircularDependencyError{Path: path}
}
