package services

import (
	"context"
	"errors"

	"pizzeria/internal/core/domain/model/courier"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
)

// ErrNoCourierAvailable is returned when every courier is busy and an order
// cannot be assigned. This is a business rejection: the surrounding
// transaction aborts with no side effects.
var ErrNoCourierAvailable = errors.New("no courier available")

// CourierStore is the slice of the courier repository the pool needs.
// The repository handed in must be bound to the caller's open transaction.
type CourierStore interface {
	Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error)
	// GetFirstAvailableForUpdate reads the first available courier by id and
	// locks its row for the remainder of the transaction.
	GetFirstAvailableForUpdate(ctx context.Context) (*courier.Courier, error)
	Update(ctx context.Context, aggregate *courier.Courier) error
}

// CourierPool is the domain service that hands out couriers to orders.
// Like the inventory ledger it is stateless: courier availability lives in the
// store and is read and flipped inside the caller's transaction.
//
// The pick is first-available-by-id. The ordering is deterministic per call
// and cannot starve any courier, since released couriers re-enter the pool and
// ids do not change; no priority rule beyond that is implied.
type CourierPool struct{}

// NewCourierPool creates a new CourierPool instance.
func NewCourierPool() CourierPool {
	return CourierPool{}
}

// AcquireAny picks one available courier, marks it busy within the caller's
// transaction and returns it.
//
// Returns ErrNoCourierAvailable when every courier is busy.
func (p CourierPool) AcquireAny(ctx context.Context, store CourierStore) (*courier.Courier, error) {
	c, err := store.GetFirstAvailableForUpdate(ctx)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, ErrNoCourierAvailable
		}
		return nil, err
	}

	if err = c.Acquire(); err != nil {
		return nil, err
	}

	if err = store.Update(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

// Release returns the courier with the given id to the available pool within
// the caller's transaction.
//
// A missing courier id surfaces as the store's not-found error. Callers with
// no assigned courier (a nil courier reference on the order) must skip Release
// entirely; that absence is valid and is not an error.
func (p CourierPool) Release(ctx context.Context, store CourierStore, id kernel.UUID) error {
	c, err := store.Get(ctx, id)
	if err != nil {
		return err
	}

	if err = c.Release(); err != nil {
		return err
	}

	return store.Update(ctx, c)
}
