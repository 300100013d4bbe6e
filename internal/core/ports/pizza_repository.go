package ports

import (
	"context"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/pizza"
)

// PizzaRepository defines the persistence contract for the pizza catalog.
// Pizzas are read-only from the engine's point of view: orders reference them
// but never change them.
type PizzaRepository interface {
	// Add persists a new pizza aggregate to storage.
	Add(ctx context.Context, aggregate *pizza.Pizza) error

	// Get retrieves a pizza aggregate by its unique identifier.
	// Returns the complete pizza with its recipe.
	Get(ctx context.Context, id kernel.UUID) (*pizza.Pizza, error)

	// GetAll retrieves the whole catalog.
	GetAll(ctx context.Context) ([]*pizza.Pizza, error)
}
