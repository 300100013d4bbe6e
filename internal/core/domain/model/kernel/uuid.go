package kernel

import (
	"fmt"

	"pizzeria/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed indicates that a UUID was not properly initialized through one of the constructor functions.
// This error is returned when validating a zero-value UUID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID is the value object used as the identity of every aggregate in this
// engine: ingredients, pizzas, couriers, orders and customers. It wraps
// github.com/google/uuid so that identifiers stay immutable and comparable
// across the domain.
//
// The zero value is invalid; construct one with NewUUID, UUIDFromString or
// UUIDFromBytes.
//
// Example usage:
//
//	// Fresh identity for a new aggregate
//	id := kernel.NewUUID()
//
//	// Identity arriving over the HTTP API
//	orderID, err := kernel.UUIDFromString(r.PathValue("orderId"))
//	if err != nil {
//	    // handle error
//	}
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a new random UUID (version 4). This is how placement mints
// order ids and how seeding mints catalog ids.
func NewUUID() UUID {
	return UUID{
		id: uuid.New(),
	}
}

// UUIDFromString parses a UUID from its string representation.
// It accepts standard UUID formats including:
//   - "6ba7b810-9dad-11d1-80b4-00c04fd430c8"
//   - "{6ba7b810-9dad-11d1-80b4-00c04fd430c8}"
//   - "urn:uuid:6ba7b810-9dad-11d1-80b4-00c04fd430c8"
//
// Returns an error for anything else. The HTTP adapter uses it to turn path
// and query parameters into domain identities before a command is built.
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return UUID{id: id}, nil
}

// UUIDFromBytes creates a UUID from a 16-byte slice. The repositories use it
// when scanning raw uuid columns back into domain identities; a slice holding
// the nil UUID is rejected the same way a zero value is.
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	newID := UUID{id: id}
	if err = newID.Validate(); err != nil {
		return UUID{}, err
	}

	return newID, nil
}

// String returns the canonical "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx" form.
// For a zero value UUID, this returns "00000000-0000-0000-0000-000000000000".
//
// Example:
//
//	id := kernel.NewUUID()
//	logger.Info("order placed", "order_id", id.String())
func (u UUID) String() string {
	return u.id.String()
}

// Bytes returns the underlying uuid.UUID value, which GORM binds directly to
// the uuid columns of the persistence DTOs. For a byte slice use
// id.Bytes()[:].
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

// IsEqual compares two UUIDs for equality.
//
// Example:
//
//	pepperoniID := kernel.NewUUID()
//	sameID := pepperoniID
//
//	fmt.Println(pepperoniID.IsEqual(kernel.NewUUID())) // false
//	fmt.Println(pepperoniID.IsEqual(sameID))           // true
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate checks that the UUID was built through a constructor and returns
// ErrUUIDIsNotConstructed for the zero (nil) value. The aggregate constructors
// call it on every identity they receive.
//
// Example:
//
//	func NewIngredient(id kernel.UUID, name string) (*Ingredient, error) {
//	    if err := id.Validate(); err != nil {
//	        return nil, fmt.Errorf("invalid ingredient ID: %w", err)
//	    }
//	    // ...
//	}
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
