package commands

import (
	"context"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/services"
)

// CancelOrderCommandHandler handles the business logic for order cancellation.
// Within a single transaction it flips the order to cancelled, returns every
// ingredient unit the placement reserved and releases the assigned courier.
// The restock amounts are recomputed from the order's line items and the
// current recipes, mirroring the reservation arithmetic of placement.
//
// Example:
//
//	handler := NewCancelOrderCommandHandler(uowFactory)
//	cmd, _ := NewCancelOrderCommand(orderID)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    log.Println("No such order")
//	case errors.Is(err, order.ErrAlreadyCancelled):
//	    log.Println("Already cancelled, nothing reverted")
//	case err != nil:
//	    log.Printf("Cancellation failed: %v", err)
//	}
type CancelOrderCommandHandler struct {
	uowFactory FulfillmentUoWFactory
	ledger     services.InventoryLedger
	pool       services.CourierPool
}

// NewCancelOrderCommandHandler creates a handler for order cancellation operations.
// Requires a FulfillmentUoWFactory for coordinating transactional updates
// across the stock, courier and order repositories.
func NewCancelOrderCommandHandler(uowFactory FulfillmentUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		ledger:     services.NewInventoryLedger(),
		pool:       services.NewCourierPool(),
	}
}

// Handle processes the order cancellation command.
//
// Cancelling an already cancelled order returns order.ErrAlreadyCancelled and
// reverts nothing, so the compensation runs at most once per order. The whole
// unit of work is retried on store concurrency conflicts.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, command CancelOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	_, err := withTxRetry(ctx, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, h.handleOnce(ctx, command)
	})
	return err
}

func (h CancelOrderCommandHandler) handleOnce(ctx context.Context, command CancelOrderCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	// The row lock serializes contending cancellations: the second one re-reads
	// the order as cancelled once the first commits and reverts nothing.
	orderRepo := uow.OrderRepository()
	cancelled, err := orderRepo.GetForUpdate(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if err = cancelled.Cancel(); err != nil {
		return err
	}

	// One reserved unit per recipe occurrence, per ordered pizza unit. This is
	// the same arithmetic Reserve ran at placement, so stock is conserved.
	pizzaRepo := uow.PizzaRepository()
	restock := make(map[kernel.UUID]int)
	for _, item := range cancelled.LineItems() {
		p, err := pizzaRepo.Get(ctx, item.PizzaID())
		if err != nil {
			return err
		}
		for _, ingredientID := range p.IngredientIDs() {
			restock[ingredientID] += item.Quantity()
		}
	}

	if err = h.ledger.Release(ctx, uow.IngredientRepository(), restock); err != nil {
		return err
	}

	if courierID := cancelled.Courier(); courierID != nil {
		if err = h.pool.Release(ctx, uow.CourierRepository(), *courierID); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, cancelled); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
