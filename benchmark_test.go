package wirebox_test

import (
	"testing"

	"github.com/centraunit/wirebox"
	"github.com/centraunit/wirebox/mock"
)

func benchmarkWorld(b *testing.B, metierScope wirebox.Scope) *wirebox.Container {
	b.Helper()

	types := wirebox.NewTypes()
	if err := types.RegisterFactory("mock.DatabaseDao", mock.NewDatabaseDao); err != nil {
		b.Fatal(err)
	}
	if err := types.RegisterFactory("mock.MetierImpl", mock.NewMetierImpl); err != nil {
		b.Fatal(err)
	}

	registry := wirebox.NewRegistry()
	if err := registry.Register(wirebox.Definition{ID: "dao", TypeRef: "mock.DatabaseDao"}); err != nil {
		b.Fatal(err)
	}
	if err := registry.Register(wirebox.Definition{
		ID:           "metier",
		TypeRef:      "mock.MetierImpl",
		Scope:        metierScope,
		Dependencies: []wirebox.Dependency{wirebox.RefArg(0, "dao")},
	}); err != nil {
		b.Fatal(err)
	}

	c := wirebox.New(registry, types)
	if err := c.Initialize(); err != nil {
		b.Fatal(err)
	}
	return c
}

func BenchmarkSingletonGet(b *testing.B) {
	c := benchmarkWorld(b, wirebox.ScopeSingleton)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := c.Get("metier"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkTransientGet(b *testing.B) {
	c := benchmarkWorld(b, wirebox.ScopeTransient)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := c.Get("metier"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParallelSingletonGet(b *testing.B) {
	c := benchmarkWorld(b, wirebox.ScopeSingleton)

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := c.Get("metier"); err != nil {
				b.Fatal(err)
			}
		}
	})
}
