// Command beandemo wires the classic dao/metier graph from a bean file
// and prints the business result. Which dao implementation the metier
// receives is decided entirely by the file, not by code: swap
// demo.DatabaseDao for demo.WebServiceDao in beans.yaml and rerun.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/centraunit/wirebox"
	"github.com/centraunit/wirebox/beanfile"
)

// Dao is the data-access port.
type Dao interface {
	GetData() float64
}

// DatabaseDao pretends to read from a database.
type DatabaseDao struct{}

func (d *DatabaseDao) GetData() float64 {
	return 10.0
}

// WebServiceDao pretends to fetch from a web service.
type WebServiceDao struct{}

func (d *WebServiceDao) GetData() float64 {
	return 15.5
}

// Metier is the business port.
type Metier interface {
	Calcul() float64
}

// MetierImpl multiplies the dao's data by 25.
type MetierImpl struct {
	dao Dao
}

func NewMetierImpl(dao Dao) *MetierImpl {
	return &MetierImpl{dao: dao}
}

func (m *MetierImpl) SetDao(dao Dao) {
	m.dao = dao
}

func (m *MetierImpl) Calcul() float64 {
	return m.dao.GetData() * 25
}

func main() {
	// .env is optional; environment variables win either way.
	_ = godotenv.Load()

	path := os.Getenv("BEANS_FILE")
	if path == "" {
		path = "beans.yaml"
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	types := wirebox.NewTypes()
	fatalIf(logger, types.RegisterFactory("demo.DatabaseDao", func() *DatabaseDao { return &DatabaseDao{} }))
	fatalIf(logger, types.RegisterFactory("demo.WebServiceDao", func() *WebServiceDao { return &WebServiceDao{} }))
	fatalIf(logger, types.RegisterFactory("demo.MetierImpl", NewMetierImpl))
	fatalIf(logger, types.RegisterType("demo.MetierImpl", &MetierImpl{}))

	registry := wirebox.NewRegistry()
	fatalIf(logger, beanfile.Register(registry, path))

	c := wirebox.New(registry, types, wirebox.WithLogger(logger))
	fatalIf(logger, c.Initialize())

	metier, err := wirebox.As[Metier](c, "metier")
	fatalIf(logger, err)

	fmt.Printf("res: %v\n", metier.Calcul())
}

func fatalIf(logger *zap.Logger, err error) {
	if err != nil {
		logger.Fatal("wiring failed", zap.Error(err))
	}
}
