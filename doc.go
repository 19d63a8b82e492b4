// Package wirebox is a declarative dependency injection container.
//
// Beans are described by [Definition] values — id, type reference,
// scope, and dependencies — collected in a [Registry]. Constructible
// types are named in a [TypeRegistry] ([Types]), the dynamic
// type-by-name mechanism. [Container.Initialize] validates the whole
// graph up front (dangling references, cycles) and computes a
// deterministic instantiation order; [Container.Get] then serves
// fully-wired instances, caching singletons and building transients
// fresh.
//
//	registry := wirebox.NewRegistry()
//	registry.Register(wirebox.Definition{ID: "dao", TypeRef: "app.Dao"})
//	registry.Register(wirebox.Definition{
//		ID:           "metier",
//		TypeRef:      "app.Metier",
//		Dependencies: []wirebox.Dependency{wirebox.RefArg(0, "dao")},
//	})
//
//	types := wirebox.NewTypes()
//	types.RegisterFactory("app.Dao", NewDao)
//	types.RegisterFactory("app.Metier", NewMetier)
//
//	c := wirebox.New(registry, types)
//	if err := c.Initialize(); err != nil {
//		// missing references and cycles surface here, not at Get
//	}
//	metier, err := wirebox.As[*Metier](c, "metier")
//
// Setter and field injection construct the bean with zero arguments,
// then apply named dependencies through Set<Name> methods or exported
// fields. A Definition uses exactly one strategy.
package wirebox
