// Package mock provides the shared fixture types used by the wirebox
// test suites: a small dao/metier object graph plus constructors that
// count, fail, or record lifecycle events.
package mock

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/centraunit/wirebox"
)

// ErrBoom is the canned failure returned by the failing constructors.
var ErrBoom = errors.New("boom")

// Dao is the data-access port of the fixture graph.
type Dao interface {
	GetData() float64
}

// DatabaseDao serves a fixed value, as if read from a database.
type DatabaseDao struct {
	Data float64
}

// NewDatabaseDao returns a dao serving 10.0.
func NewDatabaseDao() *DatabaseDao {
	return &DatabaseDao{Data: 10.0}
}

func (d *DatabaseDao) GetData() float64 {
	return d.Data
}

// WebDao is the alternative implementation, as if fetched from a web
// service.
type WebDao struct{}

func (d *WebDao) GetData() float64 {
	return 15.5
}

// Metier is the business port of the fixture graph.
type Metier interface {
	Calcul() float64
}

// MetierImpl multiplies the dao's data by 25. It is injectable three
// ways: through NewMetierImpl, through SetDao, or through the exported
// Dao field.
type MetierImpl struct {
	Dao Dao
}

func NewMetierImpl(dao Dao) *MetierImpl {
	return &MetierImpl{Dao: dao}
}

func (m *MetierImpl) SetDao(dao Dao) {
	m.Dao = dao
}

func (m *MetierImpl) Calcul() float64 {
	return m.Dao.GetData() * 25
}

// Report depends on a metier and a title literal.
type Report struct {
	Title  string
	Metier Metier
}

func NewReport(title string, metier Metier) *Report {
	return &Report{Title: title, Metier: metier}
}

// CountingDaoFactory returns a DatabaseDao constructor that bumps
// counter on every call, for at-most-once construction assertions.
func CountingDaoFactory(counter *atomic.Int32) func() *DatabaseDao {
	return func() *DatabaseDao {
		counter.Add(1)
		return NewDatabaseDao()
	}
}

// FailingDaoFactory always fails with ErrBoom.
func FailingDaoFactory() (*DatabaseDao, error) {
	return nil, ErrBoom
}

// Recorder collects lifecycle events from LifecycleBean instances in
// arrival order.
type Recorder struct {
	mu     sync.Mutex
	events []string
}

func (r *Recorder) record(event string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *Recorder) Events() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.events))
	copy(out, r.events)
	return out
}

// LifecycleBean records its boot and shutdown into a shared Recorder.
type LifecycleBean struct {
	Name        string
	Recorder    *Recorder
	BootErr     error
	ShutdownErr error

	ContainerID string
	Env         string
}

func NewLifecycleBeanFactory(name string, rec *Recorder) func() *LifecycleBean {
	return func() *LifecycleBean {
		return &LifecycleBean{Name: name, Recorder: rec}
	}
}

func (b *LifecycleBean) OnBoot(ctx *wirebox.ContainerContext) error {
	if b.BootErr != nil {
		return b.BootErr
	}
	if id, ok := ctx.Value("container_id").(string); ok {
		b.ContainerID = id
	}
	if env, ok := ctx.Value("env").(string); ok {
		b.Env = env
	}
	b.Recorder.record("boot:" + b.Name)
	return nil
}

func (b *LifecycleBean) OnShutdown(ctx *wirebox.ContainerContext) error {
	if b.ShutdownErr != nil {
		return b.ShutdownErr
	}
	b.Recorder.record("shutdown:" + b.Name)
	return nil
}

// ChainBean links lifecycle beans into dependency chains via setter
// injection while still recording events.
type ChainBean struct {
	LifecycleBean
	Next *ChainBean
}

func NewChainBeanFactory(name string, rec *Recorder) func() *ChainBean {
	return func() *ChainBean {
		return &ChainBean{LifecycleBean: LifecycleBean{Name: name, Recorder: rec}}
	}
}

func (b *ChainBean) SetNext(next *ChainBean) {
	b.Next = next
}

// PlainBox has no setters and no exported fields, for unknown
// injection point assertions.
type PlainBox struct {
	hidden Dao
}

func (p *PlainBox) Hidden() Dao {
	return p.hidden
}
