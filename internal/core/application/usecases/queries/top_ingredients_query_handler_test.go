package queries_test

import (
	"context"
	"testing"
	"time"

	"pizzeria/internal/adapters/out/postgres/ingredientrepo"
	"pizzeria/internal/adapters/out/postgres/orderrepo"
	"pizzeria/internal/adapters/out/postgres/pizzarepo"
	"pizzeria/internal/core/application/usecases/queries"
	"pizzeria/internal/core/domain/model/ingredient"
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

type TopIngredientsQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.TopIngredientsQueryHandler
}

func (suite *TopIngredientsQueryHandlerTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(
		&ingredientrepo.IngredientDTO{},
		&pizzarepo.PizzaDTO{},
		&orderrepo.OrderDTO{},
	))

	suite.handler = queries.NewTopIngredientsQueryHandler(db)
}

func (suite *TopIngredientsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *TopIngredientsQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE ingredientes, pizzas, pedidos").Error)
}

func (suite *TopIngredientsQueryHandlerTestSuite) seedIngredient(name string) *ingredient.Ingredient {
	ing, err := ingredient.NewIngredient(kernel.NewUUID(), name, ingredient.Topping, 100)
	suite.Require().NoError(err)

	repo := ingredientrepo.NewGormIngredientRepository(suite.db, &mockAggregateTracker{})
	suite.Require().NoError(repo.Add(context.Background(), ing))
	return ing
}

func (suite *TopIngredientsQueryHandlerTestSuite) seedPizza(name string, recipe ...kernel.UUID) *pizza.Pizza {
	p, err := pizza.NewPizza(kernel.NewUUID(), name, pizza.Traditional, 12500, recipe)
	suite.Require().NoError(err)

	repo := pizzarepo.NewGormPizzaRepository(suite.db, &mockAggregateTracker{})
	suite.Require().NoError(repo.Add(context.Background(), p))
	return p
}

type orderLine struct {
	pizzaID  kernel.UUID
	quantity int
}

func (suite *TopIngredientsQueryHandlerTestSuite) seedOrder(status order.Status, lines ...orderLine) *order.Order {
	items := make([]order.LineItem, 0, len(lines))
	for _, line := range lines {
		item, err := order.NewLineItem(line.pizzaID, line.quantity)
		suite.Require().NoError(err)
		items = append(items, item)
	}

	restored, err := order.RestoreOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		items,
		12500,
		nil,
		status,
		time.Now().UTC().Truncate(time.Microsecond),
	)
	suite.Require().NoError(err)

	repo := orderrepo.NewGormOrderRepository(suite.db, &mockAggregateTracker{})
	suite.Require().NoError(repo.Add(context.Background(), restored))
	return restored
}

func (suite *TopIngredientsQueryHandlerTestSuite) since() time.Time {
	return time.Now().UTC().Add(-24 * time.Hour)
}

func (suite *TopIngredientsQueryHandlerTestSuite) TestHandle_NoOrders_ReturnsEmptySlice() {
	query, err := queries.NewTopIngredientsQuery(suite.since(), 5)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *TopIngredientsQueryHandlerTestSuite) TestHandle_CountsOneUsePerRecipeOccurrencePerUnit() {
	cheese := suite.seedIngredient("Mozzarella")
	pepperoni := suite.seedIngredient("Pepperoni")
	basil := suite.seedIngredient("Basil")

	// Double cheese: the same ingredient appears twice in the recipe.
	doubleCheese := suite.seedPizza("Doble Queso", cheese.ID(), cheese.ID(), pepperoni.ID())
	margherita := suite.seedPizza("Margherita", cheese.ID(), basil.ID())

	suite.seedOrder(order.Pending,
		orderLine{pizzaID: doubleCheese.ID(), quantity: 2},
		orderLine{pizzaID: margherita.ID(), quantity: 1},
	)

	query, err := queries.NewTopIngredientsQuery(suite.since(), 5)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)

	// 2 units x 2 recipe occurrences + 1 unit x 1 occurrence = 5.
	suite.Equal("Mozzarella", result[0].Name)
	suite.Equal(cheese.ID(), result[0].ID)
	suite.Equal(5, result[0].Uses)

	suite.Equal("Pepperoni", result[1].Name)
	suite.Equal(2, result[1].Uses)

	suite.Equal("Basil", result[2].Name)
	suite.Equal(1, result[2].Uses)
}

func (suite *TopIngredientsQueryHandlerTestSuite) TestHandle_ExcludesCancelledOrders() {
	cheese := suite.seedIngredient("Mozzarella")
	basil := suite.seedIngredient("Basil")

	margherita := suite.seedPizza("Margherita", cheese.ID(), basil.ID())

	suite.seedOrder(order.Pending, orderLine{pizzaID: margherita.ID(), quantity: 1})
	suite.seedOrder(order.Cancelled, orderLine{pizzaID: margherita.ID(), quantity: 10})

	query, err := queries.NewTopIngredientsQuery(suite.since(), 5)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal(1, result[0].Uses)
	suite.Equal(1, result[1].Uses)
}

func (suite *TopIngredientsQueryHandlerTestSuite) TestHandle_ExcludesOrdersBeforeWindow() {
	cheese := suite.seedIngredient("Mozzarella")
	margherita := suite.seedPizza("Margherita", cheese.ID())

	old := suite.seedOrder(order.Pending, orderLine{pizzaID: margherita.ID(), quantity: 3})
	suite.Require().NoError(suite.db.Exec(
		"UPDATE pedidos SET creado_en = creado_en - interval '48 hours' WHERE id = ?",
		old.ID().Bytes(),
	).Error)

	query, err := queries.NewTopIngredientsQuery(suite.since(), 5)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Empty(result)
}

func (suite *TopIngredientsQueryHandlerTestSuite) TestHandle_RespectsLimit() {
	cheese := suite.seedIngredient("Mozzarella")
	pepperoni := suite.seedIngredient("Pepperoni")
	basil := suite.seedIngredient("Basil")

	loaded := suite.seedPizza("Cargada", cheese.ID(), cheese.ID(), pepperoni.ID(), pepperoni.ID(), basil.ID())
	suite.seedOrder(order.Pending, orderLine{pizzaID: loaded.ID(), quantity: 1})

	query, err := queries.NewTopIngredientsQuery(suite.since(), 2)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal(2, result[0].Uses)
	suite.Equal(2, result[1].Uses)
}

func (suite *TopIngredientsQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.TopIngredientsQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewTopIngredientsQuery constructor")
}

func TestTopIngredientsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TopIngredientsQueryHandlerTestSuite))
}
