package commands_test

import (
	"context"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/domain/model/courier"
	"pizzeria/internal/core/domain/model/ingredient"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/model/pizza"
	"pizzeria/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockIngredientRepository struct{ mock.Mock }

func (m *MockIngredientRepository) Add(ctx context.Context, i *ingredient.Ingredient) error {
	args := m.Called(ctx, i)
	return args.Error(0)
}

func (m *MockIngredientRepository) Update(ctx context.Context, i *ingredient.Ingredient) error {
	args := m.Called(ctx, i)
	return args.Error(0)
}

func (m *MockIngredientRepository) Get(ctx context.Context, id kernel.UUID) (*ingredient.Ingredient, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ingredient.Ingredient), args.Error(1)
}

func (m *MockIngredientRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*ingredient.Ingredient, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ingredient.Ingredient), args.Error(1)
}

type MockPizzaRepository struct{ mock.Mock }

func (m *MockPizzaRepository) Add(ctx context.Context, p *pizza.Pizza) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPizzaRepository) Get(ctx context.Context, id kernel.UUID) (*pizza.Pizza, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pizza.Pizza), args.Error(1)
}

func (m *MockPizzaRepository) GetAll(ctx context.Context) ([]*pizza.Pizza, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*pizza.Pizza), args.Error(1)
}

type MockCourierRepository struct{ mock.Mock }

func (m *MockCourierRepository) Add(ctx context.Context, c *courier.Courier) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCourierRepository) Update(ctx context.Context, c *courier.Courier) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCourierRepository) Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*courier.Courier), args.Error(1)
}

func (m *MockCourierRepository) GetFirstAvailableForUpdate(ctx context.Context) (*courier.Courier, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*courier.Courier), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllInPendingStatus(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockFulfillmentUoW struct{ mock.Mock }

func (m *MockFulfillmentUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockFulfillmentUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockFulfillmentUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockFulfillmentUoW) IngredientRepository() ports.IngredientRepository {
	args := m.Called()
	return args.Get(0).(ports.IngredientRepository)
}

func (m *MockFulfillmentUoW) PizzaRepository() ports.PizzaRepository {
	args := m.Called()
	return args.Get(0).(ports.PizzaRepository)
}

func (m *MockFulfillmentUoW) CourierRepository() ports.CourierRepository {
	args := m.Called()
	return args.Get(0).(ports.CourierRepository)
}

func (m *MockFulfillmentUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockFulfillmentUoWFactory struct{ mock.Mock }

func (m *MockFulfillmentUoWFactory) Create() commands.FulfillmentUoW {
	args := m.Called()
	return args.Get(0).(commands.FulfillmentUoW)
}
