package courier

import (
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

var (
	// ErrNameIsRequired is returned when attempting to create a courier without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrZoneIsRequired is returned when attempting to create a courier without a delivery zone.
	ErrZoneIsRequired = errs.NewValueIsRequiredError("zone")
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")
)

// Courier represents a delivery courier in the system.
// It is an aggregate root holding the courier's identity, delivery zone and
// availability status.
//
// Business rules:
//   - Courier must have a valid UUID, non-empty name and non-empty zone
//   - An available courier becomes busy when an order acquires it
//   - A busy courier is held by exactly one pending order; cancelling that order
//     releases the courier back to available
//
// Example usage:
//
//	c, err := NewCourier(kernel.NewUUID(), "Carlos", "Norte")
//	if err != nil {
//	    // Handle construction error
//	}
//	// Courier starts available and can be acquired by an order
type Courier struct {
	id     kernel.UUID
	name   string
	zone   string
	status Status

	guard guard.ConstructorGuard
}

// NewCourier creates a new Courier in Available status.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - name: human-readable name (must be non-empty)
//   - zone: delivery zone the courier serves (must be non-empty)
//
// Returns the courier, or an aggregated validation error.
func NewCourier(id kernel.UUID, name string, zone string) (*Courier, error) {
	c := &Courier{
		status: Available,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setZone(zone),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCourier reconstructs a Courier aggregate from persistent storage,
// preserving its persisted availability status.
func RestoreCourier(id kernel.UUID, name string, zone string, status Status) (*Courier, error) {
	c, err := NewCourier(id, name, zone)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	c.status = status

	return c, nil
}

// Validate ensures the Courier was created through a constructor.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

// IsEqual compares two couriers by their unique identifiers.
func (c *Courier) IsEqual(other *Courier) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the courier's unique identifier.
func (c *Courier) ID() kernel.UUID {
	return c.id
}

// Name returns the courier's human-readable name.
func (c *Courier) Name() string {
	return c.name
}

// Zone returns the delivery zone the courier serves.
func (c *Courier) Zone() string {
	return c.zone
}

// Status returns the courier's current availability status.
func (c *Courier) Status() Status {
	return c.status
}

// Acquire marks the courier as busy for the order that is holding it.
// Fails when the courier is not available.
func (c *Courier) Acquire() error {
	newStatus, err := c.status.Acquire()
	if err != nil {
		return err
	}

	c.status = newStatus
	return nil
}

// Release returns the courier to the available pool.
// Releasing an already available courier is a no-op.
func (c *Courier) Release() error {
	newStatus, err := c.status.Release()
	if err != nil {
		return err
	}

	c.status = newStatus
	return nil
}

func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Courier) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *Courier) setZone(zone string) error {
	if zone == "" {
		return ErrZoneIsRequired
	}
	c.zone = zone
	return nil
}
