package commands

import (
	"context"

	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/model/pizza"
	"pizzeria/internal/core/domain/services"
)

// PlaceOrderCommandHandler handles the business logic for placing an order.
// Within a single transaction it resolves the selected pizzas, reserves the
// ingredient stock their recipes consume, acquires an available courier and
// persists the pending order. Any failure aborts the transaction with no
// partial effects.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory)
//	cmd, _ := NewPlaceOrderCommand(kernel.NewUUID(), customerID, pizzaIDs)
//
//	placed, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ingredient.ErrInsufficientStock):
//	    log.Println("Not enough stock")
//	case errors.Is(err, services.ErrNoCourierAvailable):
//	    log.Println("All couriers are busy")
//	case err != nil:
//	    log.Printf("Placement failed: %v", err)
//	default:
//	    log.Printf("Order %s placed", placed.ID())
//	}
type PlaceOrderCommandHandler struct {
	uowFactory FulfillmentUoWFactory
	ledger     services.InventoryLedger
	pool       services.CourierPool
}

// NewPlaceOrderCommandHandler creates a handler for order placement operations.
// Requires a FulfillmentUoWFactory for coordinating transactional updates
// across the stock, courier and order repositories.
func NewPlaceOrderCommandHandler(uowFactory FulfillmentUoWFactory) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		ledger:     services.NewInventoryLedger(),
		pool:       services.NewCourierPool(),
	}
}

// Handle processes the order placement command and returns the placed order.
//
// The whole unit of work is retried on store concurrency conflicts; business
// rejections (ingredient.ErrInsufficientStock, services.ErrNoCourierAvailable,
// a missing pizza id) are permanent and surface unchanged.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, command PlaceOrderCommand) (*order.Order, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	return withTxRetry(ctx, func(ctx context.Context) (*order.Order, error) {
		return h.handleOnce(ctx, command)
	})
}

func (h PlaceOrderCommandHandler) handleOnce(ctx context.Context, command PlaceOrderCommand) (*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	pizzaRepo := uow.PizzaRepository()
	selection := make([]*pizza.Pizza, 0, len(command.PizzaIDs()))
	for _, pizzaID := range command.PizzaIDs() {
		p, err := pizzaRepo.Get(ctx, pizzaID)
		if err != nil {
			return nil, err
		}
		selection = append(selection, p)
	}

	placed, err := order.NewOrder(command.OrderID(), command.CustomerID(), selection)
	if err != nil {
		return nil, err
	}

	required := h.ledger.RequiredQuantities(selection)
	if err = h.ledger.Reserve(ctx, uow.IngredientRepository(), required); err != nil {
		return nil, err
	}

	assigned, err := h.pool.AcquireAny(ctx, uow.CourierRepository())
	if err != nil {
		return nil, err
	}

	if err = placed.AssignCourier(assigned.ID()); err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, placed); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return placed, nil
}
