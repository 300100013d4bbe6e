package order

import (
	"fmt"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
)

// LineItem is one (pizza, quantity) pair within an order's aggregated selection.
// Quantities are always at least one; the engine aggregates the customer's raw
// pizza selection into one line item per distinct pizza.
type LineItem struct {
	pizzaID  kernel.UUID
	quantity int
}

// NewLineItem creates a validated line item.
func NewLineItem(pizzaID kernel.UUID, quantity int) (LineItem, error) {
	if err := pizzaID.Validate(); err != nil {
		return LineItem{}, err
	}
	if quantity < 1 {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than or equal to 1", quantity),
		)
	}

	return LineItem{
		pizzaID:  pizzaID,
		quantity: quantity,
	}, nil
}

// PizzaID returns the ordered pizza's identifier.
func (li LineItem) PizzaID() kernel.UUID {
	return li.pizzaID
}

// Quantity returns the number of units ordered.
func (li LineItem) Quantity() int {
	return li.quantity
}
