package wirebox_test

import (
	"github.com/centraunit/wirebox"
	"github.com/centraunit/wirebox/mock"
	"github.com/stretchr/testify/suite"
)

// daoMetierWorld builds the canonical fixture graph: a singleton dao
// served from a factory and a constructor-injected metier depending on
// it. Suites extend the returned registries per test.
func daoMetierWorld(s *suite.Suite) (*wirebox.Registry, *wirebox.Types) {
	types := wirebox.NewTypes()
	s.Require().NoError(types.RegisterFactory("mock.DatabaseDao", mock.NewDatabaseDao))
	s.Require().NoError(types.RegisterFactory("mock.MetierImpl", mock.NewMetierImpl))
	s.Require().NoError(types.RegisterType("mock.MetierImpl", &mock.MetierImpl{}))
	s.Require().NoError(types.RegisterFactory("mock.Report", mock.NewReport))

	registry := wirebox.NewRegistry()
	s.Require().NoError(registry.Register(wirebox.Definition{
		ID:      "dao",
		TypeRef: "mock.DatabaseDao",
	}))
	s.Require().NoError(registry.Register(wirebox.Definition{
		ID:           "metier",
		TypeRef:      "mock.MetierImpl",
		Dependencies: []wirebox.Dependency{wirebox.RefArg(0, "dao")},
	}))
	return registry, types
}

// initialized builds and initializes a container over the fixture
// graph.
func initialized(s *suite.Suite, registry *wirebox.Registry, types *wirebox.Types) *wirebox.Container {
	c := wirebox.New(registry, types)
	s.Require().NoError(c.Initialize())
	return c
}
