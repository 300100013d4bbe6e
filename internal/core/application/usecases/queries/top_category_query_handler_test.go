package queries_test

import (
	"context"
	"testing"
	"time"

	"pizzeria/internal/adapters/out/postgres/orderrepo"
	"pizzeria/internal/adapters/out/postgres/pizzarepo"
	"pizzeria/internal/core/application/usecases/queries"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/model/pizza"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type TopCategoryQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.TopCategoryQueryHandler
}

func (suite *TopCategoryQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&pizzarepo.PizzaDTO{}, &orderrepo.OrderDTO{}))

	suite.handler = queries.NewTopCategoryQueryHandler(db)
}

func (suite *TopCategoryQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *TopCategoryQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE pizzas, pedidos").Error)
}

func (suite *TopCategoryQueryHandlerTestSuite) seedPizza(name string, category pizza.Category) *pizza.Pizza {
	p, err := pizza.NewPizza(kernel.NewUUID(), name, category, 12500, []kernel.UUID{kernel.NewUUID()})
	suite.Require().NoError(err)

	repo := pizzarepo.NewGormPizzaRepository(suite.db, &mockAggregateTracker{})
	suite.Require().NoError(repo.Add(context.Background(), p))
	return p
}

func (suite *TopCategoryQueryHandlerTestSuite) seedOrder(status order.Status, pizzaID kernel.UUID, quantity int) {
	item, err := order.NewLineItem(pizzaID, quantity)
	suite.Require().NoError(err)

	restored, err := order.RestoreOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		[]order.LineItem{item},
		12500,
		nil,
		status,
		time.Now().UTC().Truncate(time.Microsecond),
	)
	suite.Require().NoError(err)

	repo := orderrepo.NewGormOrderRepository(suite.db, &mockAggregateTracker{})
	suite.Require().NoError(repo.Add(context.Background(), restored))
}

func (suite *TopCategoryQueryHandlerTestSuite) TestHandle_NoOrders_ReturnsNil() {
	query := queries.NewTopCategoryQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Nil(result)
}

func (suite *TopCategoryQueryHandlerTestSuite) TestHandle_MostUnitsWins() {
	margherita := suite.seedPizza("Margherita", pizza.Traditional)
	verde := suite.seedPizza("Verde", pizza.Vegan)

	suite.seedOrder(order.Pending, margherita.ID(), 3)
	suite.seedOrder(order.Pending, verde.ID(), 5)

	query := queries.NewTopCategoryQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.Equal("vegan", result.Category)
	suite.Equal(5, result.UnitsSold)
}

func (suite *TopCategoryQueryHandlerTestSuite) TestHandle_TieBreaksAlphabetically() {
	margherita := suite.seedPizza("Margherita", pizza.Traditional)
	cuatroQuesos := suite.seedPizza("Cuatro Quesos", pizza.Specialty)

	suite.seedOrder(order.Pending, margherita.ID(), 2)
	suite.seedOrder(order.Pending, cuatroQuesos.ID(), 2)

	query := queries.NewTopCategoryQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.Equal("specialty", result.Category)
	suite.Equal(2, result.UnitsSold)
}

func (suite *TopCategoryQueryHandlerTestSuite) TestHandle_ExcludesCancelledOrders() {
	margherita := suite.seedPizza("Margherita", pizza.Traditional)
	verde := suite.seedPizza("Verde", pizza.Vegan)

	suite.seedOrder(order.Pending, margherita.ID(), 1)
	suite.seedOrder(order.Cancelled, verde.ID(), 10)

	query := queries.NewTopCategoryQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.Equal("traditional", result.Category)
	suite.Equal(1, result.UnitsSold)
}

func (suite *TopCategoryQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.TopCategoryQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewTopCategoryQuery constructor")
}

func TestTopCategoryQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TopCategoryQueryHandlerTestSuite))
}
