package wirebox_test

import (
	"context"
	"errors"
	"testing"

	"github.com/centraunit/wirebox"
	"github.com/centraunit/wirebox/mock"
	"github.com/stretchr/testify/suite"
)

type LifecycleTestSuite struct {
	suite.Suite
}

func (s *LifecycleTestSuite) TestOnBootRunsOncePerSingleton() {
	rec := &mock.Recorder{}

	types := wirebox.NewTypes()
	s.Require().NoError(types.RegisterFactory("mock.LifecycleBean", mock.NewLifecycleBeanFactory("a", rec)))

	registry := wirebox.NewRegistry()
	s.Require().NoError(registry.Register(wirebox.Definition{ID: "a", TypeRef: "mock.LifecycleBean"}))
	c := initialized(&s.Suite, registry, types)

	_, err := c.Get("a")
	s.Require().NoError(err)
	_, err = c.Get("a")
	s.Require().NoError(err)

	s.Equal([]string{"boot:a"}, rec.Events())
}

func (s *LifecycleTestSuite) TestBootErrorAbortsResolution() {
	rec := &mock.Recorder{}

	types := wirebox.NewTypes()
	s.Require().NoError(types.RegisterFactory("mock.LifecycleBean", func() *mock.LifecycleBean {
		return &mock.LifecycleBean{Name: "bad", Recorder: rec, BootErr: mock.ErrBoom}
	}))

	registry := wirebox.NewRegistry()
	s.Require().NoError(registry.Register(wirebox.Definition{ID: "bad", TypeRef: "mock.LifecycleBean"}))
	c := initialized(&s.Suite, registry, types)

	_, err := c.Get("bad")
	var boot *wirebox.BootError
	s.Require().True(errors.As(err, &boot))
	s.Equal("bad", boot.ID)
	s.True(errors.Is(err, mock.ErrBoom))
	s.Empty(rec.Events())
}

func (s *LifecycleTestSuite) TestTeardownShutsDownInReverseOrder() {
	rec := &mock.Recorder{}

	types := wirebox.NewTypes()
	s.Require().NoError(types.RegisterFactory("mock.ChainBean.a", mock.NewChainBeanFactory("a", rec)))
	s.Require().NoError(types.RegisterFactory("mock.ChainBean.b", mock.NewChainBeanFactory("b", rec)))

	registry := wirebox.NewRegistry()
	s.Require().NoError(registry.Register(wirebox.Definition{
		ID:           "a",
		TypeRef:      "mock.ChainBean.a",
		Strategy:     wirebox.StrategySetter,
		Dependencies: []wirebox.Dependency{wirebox.RefProperty("next", "b")},
	}))
	s.Require().NoError(registry.Register(wirebox.Definition{
		ID:      "b",
		TypeRef: "mock.ChainBean.b",
	}))
	c := initialized(&s.Suite, registry, types)

	a, err := wirebox.As[*mock.ChainBean](c, "a")
	s.Require().NoError(err)
	s.Require().NotNil(a.Next)

	s.Require().NoError(c.Teardown(context.Background()))

	// b is constructed before a, so it must shut down after a.
	s.Equal([]string{"boot:b", "boot:a", "shutdown:a", "shutdown:b"}, rec.Events())
}

func (s *LifecycleTestSuite) TestTeardownReturnsToUninitialized() {
	registry, types := daoMetierWorld(&s.Suite)
	c := initialized(&s.Suite, registry, types)

	_, err := c.Get("dao")
	s.Require().NoError(err)

	s.Require().NoError(c.Teardown(context.Background()))

	var notReady *wirebox.NotReadyError
	_, err = c.Get("dao")
	s.True(errors.As(err, &notReady))

	err = c.Teardown(context.Background())
	s.True(errors.As(err, &notReady), "second teardown has nothing to tear down")

	// The container can be initialized again.
	s.Require().NoError(c.Initialize())
	metier, err := wirebox.As[mock.Metier](c, "metier")
	s.Require().NoError(err)
	s.Equal(250.0, metier.Calcul())
}

func (s *LifecycleTestSuite) TestTeardownAggregatesShutdownErrors() {
	rec := &mock.Recorder{}

	types := wirebox.NewTypes()
	s.Require().NoError(types.RegisterFactory("mock.LifecycleBean.bad1", func() *mock.LifecycleBean {
		return &mock.LifecycleBean{Name: "bad1", Recorder: rec, ShutdownErr: mock.ErrBoom}
	}))
	s.Require().NoError(types.RegisterFactory("mock.LifecycleBean.bad2", func() *mock.LifecycleBean {
		return &mock.LifecycleBean{Name: "bad2", Recorder: rec, ShutdownErr: mock.ErrBoom}
	}))
	s.Require().NoError(types.RegisterFactory("mock.LifecycleBean.ok", mock.NewLifecycleBeanFactory("ok", rec)))

	registry := wirebox.NewRegistry()
	s.Require().NoError(registry.Register(wirebox.Definition{ID: "bad1", TypeRef: "mock.LifecycleBean.bad1"}))
	s.Require().NoError(registry.Register(wirebox.Definition{ID: "bad2", TypeRef: "mock.LifecycleBean.bad2"}))
	s.Require().NoError(registry.Register(wirebox.Definition{ID: "ok", TypeRef: "mock.LifecycleBean.ok"}))
	c := initialized(&s.Suite, registry, types)

	for _, id := range []string{"bad1", "bad2", "ok"} {
		_, err := c.Get(id)
		s.Require().NoError(err)
	}

	err := c.Teardown(context.Background())
	s.Require().Error(err)

	// Failures are typed and carry the offending ids.
	var shutdown *wirebox.ShutdownError
	s.Require().True(errors.As(err, &shutdown))
	s.True(errors.Is(err, mock.ErrBoom))
	s.Contains(err.Error(), "bad1")
	s.Contains(err.Error(), "bad2")

	// One hook failing does not stop the others.
	s.Contains(rec.Events(), "shutdown:ok")

	// The cache is destroyed even when hooks fail.
	var notReady *wirebox.NotReadyError
	_, err = c.Get("ok")
	s.True(errors.As(err, &notReady))
}

func (s *LifecycleTestSuite) TestTeardownHonorsContextCancellation() {
	rec := &mock.Recorder{}

	types := wirebox.NewTypes()
	s.Require().NoError(types.RegisterFactory("mock.LifecycleBean", mock.NewLifecycleBeanFactory("a", rec)))

	registry := wirebox.NewRegistry()
	s.Require().NoError(registry.Register(wirebox.Definition{ID: "a", TypeRef: "mock.LifecycleBean"}))
	c := initialized(&s.Suite, registry, types)

	_, err := c.Get("a")
	s.Require().NoError(err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = c.Teardown(ctx)
	s.True(errors.Is(err, context.Canceled))
	s.Equal([]string{"boot:a"}, rec.Events(), "hooks are skipped once the context expires")
}

func (s *LifecycleTestSuite) TestContainerIDReachesHooks() {
	rec := &mock.Recorder{}

	types := wirebox.NewTypes()
	s.Require().NoError(types.RegisterFactory("mock.LifecycleBean", mock.NewLifecycleBeanFactory("a", rec)))

	registry := wirebox.NewRegistry()
	s.Require().NoError(registry.Register(wirebox.Definition{ID: "a", TypeRef: "mock.LifecycleBean"}))
	c := initialized(&s.Suite, registry, types)

	bean, err := wirebox.As[*mock.LifecycleBean](c, "a")
	s.Require().NoError(err)
	s.Equal(c.ID(), bean.ContainerID)
}

func TestLifecycleSuite(t *testing.T) {
	suite.Run(t, new(LifecycleTestSuite))
}
