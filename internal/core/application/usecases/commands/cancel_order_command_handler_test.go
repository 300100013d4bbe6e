package commands_test

import (
	"errors"
	"testing"
	"time"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/domain/model/courier"
	"pizzeria/internal/core/domain/model/ingredient"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/model/pizza"
	"pizzeria/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func restorePendingOrder(t *testing.T, pizzaID kernel.UUID, quantity int, courierID *kernel.UUID) *order.Order {
	t.Helper()

	item, err := order.NewLineItem(pizzaID, quantity)
	require.NoError(t, err)

	pending, err := order.RestoreOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		[]order.LineItem{item},
		12500*float64(quantity),
		courierID,
		order.Pending,
		time.Now().UTC(),
	)
	require.NoError(t, err)
	return pending
}

func TestCancelOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	cheese, err := ingredient.NewIngredient(kernel.NewUUID(), "Mozzarella", ingredient.Cheese, 0)
	require.NoError(t, err)
	pepperoni, err := pizza.NewPizza(kernel.NewUUID(), "Pepperoni", pizza.Traditional, 12500, []kernel.UUID{cheese.ID()})
	require.NoError(t, err)
	busyCourier, err := courier.RestoreCourier(kernel.NewUUID(), "Carlos", "Norte", courier.Busy)
	require.NoError(t, err)

	courierID := busyCourier.ID()
	pending := restorePendingOrder(t, pepperoni.ID(), 2, &courierID)

	cmd, err := commands.NewCancelOrderCommand(pending.ID())
	require.NoError(t, err)

	ingredientRepo := new(MockIngredientRepository)
	pizzaRepo := new(MockPizzaRepository)
	courierRepo := new(MockCourierRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockFulfillmentUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", ctx, pending.ID()).Return(pending, nil).Once(),
		uow.On("PizzaRepository").Return(pizzaRepo).Once(),
		pizzaRepo.On("Get", ctx, pepperoni.ID()).Return(pepperoni, nil).Once(),
		uow.On("IngredientRepository").Return(ingredientRepo).Once(),
		ingredientRepo.On("GetForUpdate", ctx, cheese.ID()).Return(cheese, nil).Once(),
		ingredientRepo.On("Update", ctx, mock.AnythingOfType("*ingredient.Ingredient")).Return(nil).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		courierRepo.On("Get", ctx, busyCourier.ID()).Return(busyCourier, nil).Once(),
		courierRepo.On("Update", ctx, mock.AnythingOfType("*courier.Courier")).Return(nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, pending.Status())

	// Two cancelled units of a one-cheese recipe return two units of stock.
	assert.Equal(t, 2, cheese.Stock())
	assert.Equal(t, courier.Available, busyCourier.Status())

	ingredientRepo.AssertExpectations(t)
	pizzaRepo.AssertExpectations(t)
	courierRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_NoCourierAssigned(t *testing.T) {
	ctx := t.Context()

	cheese, err := ingredient.NewIngredient(kernel.NewUUID(), "Mozzarella", ingredient.Cheese, 0)
	require.NoError(t, err)
	pepperoni, err := pizza.NewPizza(kernel.NewUUID(), "Pepperoni", pizza.Traditional, 12500, []kernel.UUID{cheese.ID()})
	require.NoError(t, err)

	pending := restorePendingOrder(t, pepperoni.ID(), 1, nil)

	cmd, err := commands.NewCancelOrderCommand(pending.ID())
	require.NoError(t, err)

	ingredientRepo := new(MockIngredientRepository)
	pizzaRepo := new(MockPizzaRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockFulfillmentUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", ctx, pending.ID()).Return(pending, nil).Once(),
		uow.On("PizzaRepository").Return(pizzaRepo).Once(),
		pizzaRepo.On("Get", ctx, pepperoni.ID()).Return(pepperoni, nil).Once(),
		uow.On("IngredientRepository").Return(ingredientRepo).Once(),
		ingredientRepo.On("GetForUpdate", ctx, cheese.ID()).Return(cheese, nil).Once(),
		ingredientRepo.On("Update", ctx, mock.AnythingOfType("*ingredient.Ingredient")).Return(nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	uow.AssertNotCalled(t, "CourierRepository")
	uow.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_AlreadyCancelled(t *testing.T) {
	ctx := t.Context()

	item, err := order.NewLineItem(kernel.NewUUID(), 1)
	require.NoError(t, err)
	cancelled, err := order.RestoreOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		[]order.LineItem{item},
		12500,
		nil,
		order.Cancelled,
		time.Now().UTC(),
	)
	require.NoError(t, err)

	cmd, err := commands.NewCancelOrderCommand(cancelled.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockFulfillmentUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", ctx, cancelled.ID()).Return(cancelled, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrAlreadyCancelled)
	uow.AssertNotCalled(t, "IngredientRepository")
	uow.AssertNotCalled(t, "CourierRepository")
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCancelOrderCommand(orderID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockFulfillmentUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", ctx, orderID).Return(nil, errs.NewObjectNotFoundError("order", orderID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CancelOrderCommand{} // not constructed properly

	factory := new(MockFulfillmentUoWFactory)
	handler := commands.NewCancelOrderCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrCancelOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCancelOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()

	cheese, err := ingredient.NewIngredient(kernel.NewUUID(), "Mozzarella", ingredient.Cheese, 0)
	require.NoError(t, err)
	pepperoni, err := pizza.NewPizza(kernel.NewUUID(), "Pepperoni", pizza.Traditional, 12500, []kernel.UUID{cheese.ID()})
	require.NoError(t, err)

	pending := restorePendingOrder(t, pepperoni.ID(), 1, nil)

	cmd, err := commands.NewCancelOrderCommand(pending.ID())
	require.NoError(t, err)

	ingredientRepo := new(MockIngredientRepository)
	pizzaRepo := new(MockPizzaRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockFulfillmentUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", ctx, pending.ID()).Return(pending, nil).Once(),
		uow.On("PizzaRepository").Return(pizzaRepo).Once(),
		pizzaRepo.On("Get", ctx, pepperoni.ID()).Return(pepperoni, nil).Once(),
		uow.On("IngredientRepository").Return(ingredientRepo).Once(),
		ingredientRepo.On("GetForUpdate", ctx, cheese.ID()).Return(cheese, nil).Once(),
		ingredientRepo.On("Update", ctx, mock.AnythingOfType("*ingredient.Ingredient")).Return(nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "commit error")
	uow.AssertExpectations(t)
}
