package services

import (
	"context"
	"sort"

	"pizzeria/internal/core/domain/model/ingredient"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/pizza"
)

// IngredientStore is the slice of the ingredient repository the ledger needs.
// The repository handed in must be bound to the caller's open transaction so
// that the read-check-write sequence runs under the store's isolation.
type IngredientStore interface {
	// GetForUpdate reads an ingredient and locks its row for the remainder of
	// the transaction.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*ingredient.Ingredient, error)
	Update(ctx context.Context, aggregate *ingredient.Ingredient) error
}

// InventoryLedger is the domain service that reserves and releases ingredient
// stock. It holds no state of its own: all stock lives in the store, and every
// call operates through a repository bound to the caller's transaction.
//
// Example usage:
//
//	ledger := NewInventoryLedger()
//	required := ledger.RequiredQuantities(selection)
//	if err := ledger.Reserve(ctx, uow.IngredientRepository(), required); err != nil {
//	    // errors.Is(err, ingredient.ErrInsufficientStock) for business rejection
//	    return err
//	}
type InventoryLedger struct{}

// NewInventoryLedger creates a new InventoryLedger instance.
func NewInventoryLedger() InventoryLedger {
	return InventoryLedger{}
}

// RequiredQuantities computes the ingredient units consumed by the raw pizza
// selection: one unit per recipe occurrence, per selected instance.
//
// Counting runs over the raw (possibly repeated) selection rather than an
// aggregated quantity map, so a pizza listing the same ingredient twice
// consumes two units of it per ordered pizza.
func (l InventoryLedger) RequiredQuantities(selection []*pizza.Pizza) map[kernel.UUID]int {
	required := make(map[kernel.UUID]int)
	for _, p := range selection {
		for _, ingredientID := range p.IngredientIDs() {
			required[ingredientID]++
		}
	}
	return required
}

// Reserve decrements stock for every ingredient in required, all within the
// caller's transaction.
//
// Every ingredient is read and checked before any stock is written. A missing
// ingredient surfaces as the store's not-found error; a shortfall surfaces as
// an InsufficientStockError naming the ingredient and the required and
// available amounts. Either way no write is issued, and the caller aborts the
// transaction.
func (l InventoryLedger) Reserve(ctx context.Context, store IngredientStore, required map[kernel.UUID]int) error {
	ids := sortedIDs(required)

	// Rows are locked in id order so two concurrent reservations can never
	// hold pieces of each other's lock set.
	ingredients := make([]*ingredient.Ingredient, 0, len(ids))
	for _, id := range ids {
		ing, err := store.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		ingredients = append(ingredients, ing)
	}

	for i, ing := range ingredients {
		if err := ing.DecreaseStock(required[ids[i]]); err != nil {
			return err
		}
	}

	for _, ing := range ingredients {
		if err := store.Update(ctx, ing); err != nil {
			return err
		}
	}

	return nil
}

// Release increments stock by the given amounts within the caller's
// transaction. Used for compensation when an order is cancelled; the amounts
// must equal what the matching Reserve decremented so that the place/cancel
// pair conserves ingredient units. No upper bound is enforced.
func (l InventoryLedger) Release(ctx context.Context, store IngredientStore, amounts map[kernel.UUID]int) error {
	for _, id := range sortedIDs(amounts) {
		ing, err := store.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}

		if err = ing.IncreaseStock(amounts[id]); err != nil {
			return err
		}

		if err = store.Update(ctx, ing); err != nil {
			return err
		}
	}

	return nil
}

func sortedIDs(m map[kernel.UUID]int) []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return ids[i].String() < ids[j].String()
	})
	return ids
}
