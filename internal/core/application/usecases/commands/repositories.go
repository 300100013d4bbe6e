// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"pizzeria/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// IngredientRepoFactory provides access to the ingredient repository within a transaction.
	IngredientRepoFactory interface {
		IngredientRepository() ports.IngredientRepository
	}

	// PizzaRepoFactory provides access to the pizza catalog repository within a transaction.
	PizzaRepoFactory interface {
		PizzaRepository() ports.PizzaRepository
	}

	// CourierRepoFactory provides access to the courier repository within a transaction.
	CourierRepoFactory interface {
		CourierRepository() ports.CourierRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// FulfillmentUoW manages transactions across the catalog, stock, courier and
	// order aggregates. Placing and cancelling orders touch all four, so both
	// handlers run against this unit of work.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   ingredientRepo := uow.IngredientRepository()
	//   orderRepo := uow.OrderRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	FulfillmentUoW interface {
		TxManager
		IngredientRepoFactory
		PizzaRepoFactory
		CourierRepoFactory
		OrderRepoFactory
	}

	// FulfillmentUoWFactory creates new unit of work instances for fulfillment operations.
	FulfillmentUoWFactory interface {
		Create() FulfillmentUoW
	}
)
