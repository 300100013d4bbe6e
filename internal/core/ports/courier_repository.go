package ports

import (
	"context"

	"pizzeria/internal/core/domain/model/courier"
	"pizzeria/internal/core/domain/model/kernel"
)

// CourierRepository defines the persistence contract for courier aggregates.
type CourierRepository interface {
	// Add persists a new courier aggregate to storage.
	// The courier must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *courier.Courier) error

	// Update persists changes to an existing courier aggregate.
	// The courier must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *courier.Courier) error

	// Get retrieves a courier aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error)

	// GetFirstAvailableForUpdate retrieves the first available courier by id and
	// locks its row until the surrounding transaction ends. Must be called
	// inside an open transaction. Returns a not-found error when every courier
	// is busy.
	GetFirstAvailableForUpdate(ctx context.Context) (*courier.Courier, error)
}
