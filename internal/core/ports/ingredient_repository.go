// Package ports defines repository interfaces for the pizzeria domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"pizzeria/internal/core/domain/model/ingredient"
	"pizzeria/internal/core/domain/model/kernel"
)

// IngredientRepository defines the persistence contract for ingredient aggregates.
// Stock reads that precede a write must go through GetForUpdate so that two
// concurrent reservations cannot both observe the same stock level.
type IngredientRepository interface {
	// Add persists a new ingredient aggregate to storage.
	// The ingredient must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *ingredient.Ingredient) error

	// Update persists changes to an existing ingredient aggregate.
	// The ingredient must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *ingredient.Ingredient) error

	// Get retrieves an ingredient aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*ingredient.Ingredient, error)

	// GetForUpdate retrieves an ingredient and locks its row until the
	// surrounding transaction ends. Must be called inside an open transaction.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*ingredient.Ingredient, error)
}
