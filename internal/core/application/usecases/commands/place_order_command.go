package commands

import (
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand represents a request to place a new pizza order.
// The pizza selection is raw: one entry per ordered unit, so the same pizza id
// listed twice means two units of it.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewPlaceOrderCommand(orderID, customerID, []kernel.UUID{margherita, margherita, diavola})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(uowFactory)
//	placed, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
//	fmt.Printf("Order %s placed, courier %s", placed.ID(), placed.Courier())
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID
	pizzaIDs   []kernel.UUID

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new order.
// Validates that the order and customer ids are valid UUIDs and that the
// selection is non-empty with every pizza id valid. An empty selection fails
// with order.ErrEmptySelection before any transaction is opened.
func NewPlaceOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	pizzaIDs []kernel.UUID,
) (PlaceOrderCommand, error) {
	orderCommand := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setCustomerID(customerID),
		orderCommand.setPizzaIDs(pizzaIDs),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPlaceOrderCommandIsNotConstructed if validation fails.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order to create.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the ordering customer's identifier.
func (c PlaceOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// PizzaIDs returns a copy of the raw pizza selection.
func (c PlaceOrderCommand) PizzaIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(c.pizzaIDs))
	copy(ids, c.pizzaIDs)
	return ids
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *PlaceOrderCommand) setPizzaIDs(pizzaIDs []kernel.UUID) error {
	if len(pizzaIDs) == 0 {
		return order.ErrEmptySelection
	}

	for _, pizzaID := range pizzaIDs {
		if err := pizzaID.Validate(); err != nil {
			return err
		}
	}

	c.pizzaIDs = make([]kernel.UUID, len(pizzaIDs))
	copy(c.pizzaIDs, pizzaIDs)
	return nil
}
