package order

import (
	"errors"
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/pizza"
	"pizzeria/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrEmptySelection is returned when placing an order with no pizzas.
	ErrEmptySelection = errors.New("order requires at least one pizza")

	// ErrCourierAlreadyAssigned is returned when assigning a courier to an order
	// that already holds one.
	ErrCourierAlreadyAssigned = errors.New("order already has an assigned courier")
)

// Order is the aggregate root for a customer order. It is created by PlaceOrder
// and mutated only by CancelOrder; both operations run inside a single store
// transaction together with the stock and courier updates they imply.
//
// Order follows these invariants:
//   - Line items are aggregated: one entry per distinct pizza, quantity ≥ 1
//   - Total equals the sum of unit prices over the raw selection
//   - Status only ever transitions Pending -> Cancelled
//   - A courier is assigned at most once, during placement
type Order struct {
	id         kernel.UUID
	customerID kernel.UUID
	lineItems  []LineItem
	total      float64
	courierID  *kernel.UUID
	status     Status
	createdAt  time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates a Pending order from the customer's raw pizza selection.
//
// The selection lists one entry per ordered unit, so the same pizza may appear
// multiple times. NewOrder aggregates it into line items (grouped by pizza id,
// in first-appearance order) and computes the total as the sum of unit prices
// over every instance of the raw selection.
//
// Parameters:
//   - id: unique identifier for the order (must be a valid UUID)
//   - customerID: the ordering customer (must be a valid UUID)
//   - selection: raw ordered pizza instances (must be non-empty, all constructed)
//
// Returns ErrEmptySelection for an empty selection, or a validation error if
// any id or pizza is invalid. The order starts with no courier assigned;
// AssignCourier sets one before the order is persisted.
func NewOrder(id kernel.UUID, customerID kernel.UUID, selection []*pizza.Pizza) (*Order, error) {
	if len(selection) == 0 {
		return nil, ErrEmptySelection
	}

	o := &Order{
		status:    Pending,
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
	); err != nil {
		return nil, err
	}

	if err := o.aggregateSelection(selection); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	lineItems []LineItem,
	total float64,
	courierID *kernel.UUID,
	status Status,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
	); err != nil {
		return nil, err
	}

	if len(lineItems) == 0 {
		return nil, ErrEmptySelection
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return nil, err
		}
		id := *courierID
		o.courierID = &id
	}

	o.lineItems = make([]LineItem, len(lineItems))
	copy(o.lineItems, lineItems)
	o.total = total
	o.status = status
	o.createdAt = createdAt

	return o, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the ordering customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// LineItems returns a copy of the aggregated line items in first-appearance order.
func (o *Order) LineItems() []LineItem {
	items := make([]LineItem, len(o.lineItems))
	copy(items, o.lineItems)
	return items
}

// Total returns the order total: the sum of unit prices over the raw selection.
func (o *Order) Total() float64 {
	return o.total
}

// Courier returns the assigned courier's ID, or nil if none is assigned.
func (o *Order) Courier() *kernel.UUID {
	return o.courierID
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the order's creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// AssignCourier records the courier acquired for this order.
// An order holds at most one courier; reassignment is not part of this engine.
func (o *Order) AssignCourier(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	if o.courierID != nil {
		return ErrCourierAlreadyAssigned
	}

	o.courierID = &courierID
	return nil
}

// Cancel transitions the order to Cancelled.
//
// Returns ErrAlreadyCancelled if the order was cancelled before; the caller
// must not re-apply the compensating stock and courier updates in that case.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

// aggregateSelection groups the raw selection by pizza id, counts units per
// pizza, and sums the total over every selected instance.
func (o *Order) aggregateSelection(selection []*pizza.Pizza) error {
	counts := make(map[kernel.UUID]int, len(selection))
	firstSeen := make([]kernel.UUID, 0, len(selection))
	total := 0.0

	for _, p := range selection {
		if err := p.Validate(); err != nil {
			return err
		}
		if _, seen := counts[p.ID()]; !seen {
			firstSeen = append(firstSeen, p.ID())
		}
		counts[p.ID()]++
		total += p.Price()
	}

	items := make([]LineItem, 0, len(firstSeen))
	for _, pizzaID := range firstSeen {
		item, err := NewLineItem(pizzaID, counts[pizzaID])
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	o.lineItems = items
	o.total = total
	return nil
}
