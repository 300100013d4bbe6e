package ingredient

import (
	"errors"
	"fmt"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

var (
	// ErrIngredientIsNotConstructed is returned when an Ingredient instance was not
	// created through NewIngredient or RestoreIngredient.
	ErrIngredientIsNotConstructed = errors.New("Ingredient must be created via NewIngredient constructor")

	// ErrNameIsRequired is returned when attempting to create an ingredient without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")

	// ErrInsufficientStock marks a reservation that would drive stock negative.
	// Match with errors.Is; the concrete InsufficientStockError carries the details.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// InsufficientStockError reports a stock reservation that cannot be satisfied.
// It identifies the ingredient by name and carries the requested and available
// amounts so callers can surface an actionable rejection.
type InsufficientStockError struct {
	IngredientName string
	Required       int
	Available      int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("%s: %s (required %d, available %d)",
		ErrInsufficientStock, e.IngredientName, e.Required, e.Available)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

// Ingredient is the aggregate root for a stocked pizza ingredient.
// Its single hard invariant is that stock never goes below zero: every decrement
// is validated before it is applied, so a persisted Ingredient always carries a
// non-negative stock level.
//
// Stock is mutated only through DecreaseStock and IncreaseStock, which the
// inventory ledger calls inside an open store transaction.
type Ingredient struct {
	id             kernel.UUID
	name           string
	ingredientType Type
	stock          int

	guard guard.ConstructorGuard
}

// NewIngredient creates a validated Ingredient.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - name: human-readable ingredient name (must be non-empty)
//   - ingredientType: one of the enumerated ingredient types
//   - stock: initial stock level (must not be negative)
//
// Returns the ingredient, or an aggregated validation error.
func NewIngredient(id kernel.UUID, name string, ingredientType Type, stock int) (*Ingredient, error) {
	ing := &Ingredient{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		ing.setID(id),
		ing.setName(name),
		ing.setType(ingredientType),
		ing.setStock(stock),
	); err != nil {
		return nil, err
	}

	return ing, nil
}

// RestoreIngredient reconstructs an Ingredient aggregate from persistent storage.
// It applies the same validation as NewIngredient, so rows that violate the
// domain invariants are rejected at load time.
func RestoreIngredient(id kernel.UUID, name string, ingredientType Type, stock int) (*Ingredient, error) {
	return NewIngredient(id, name, ingredientType, stock)
}

// Validate ensures the Ingredient was created through a constructor.
func (i *Ingredient) Validate() error {
	if i == nil {
		return ErrIngredientIsNotConstructed
	}
	return i.guard.Validate(ErrIngredientIsNotConstructed)
}

// ID returns the ingredient's unique identifier.
func (i *Ingredient) ID() kernel.UUID {
	return i.id
}

// Name returns the human-readable ingredient name.
func (i *Ingredient) Name() string {
	return i.name
}

// Type returns the ingredient's classification.
func (i *Ingredient) Type() Type {
	return i.ingredientType
}

// Stock returns the current stock level.
func (i *Ingredient) Stock() int {
	return i.stock
}

// DecreaseStock reserves quantity units of the ingredient.
//
// Returns an InsufficientStockError (matching ErrInsufficientStock) if the
// current stock cannot cover the requested quantity; in that case the stock
// level is left untouched. Quantity must be positive.
func (i *Ingredient) DecreaseStock(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	if i.stock < quantity {
		return &InsufficientStockError{
			IngredientName: i.name,
			Required:       quantity,
			Available:      i.stock,
		}
	}

	i.stock -= quantity
	return nil
}

// IncreaseStock returns quantity units of the ingredient to stock.
// Used for compensation when an order is cancelled. No upper bound is enforced.
// Quantity must be positive.
func (i *Ingredient) IncreaseStock(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	i.stock += quantity
	return nil
}

func (i *Ingredient) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Ingredient) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	i.name = name
	return nil
}

func (i *Ingredient) setType(t Type) error {
	if err := t.Validate(); err != nil {
		return err
	}
	i.ingredientType = t
	return nil
}

func (i *Ingredient) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"stock",
			fmt.Errorf("%d is not greater than or equal to 0", stock),
		)
	}
	i.stock = stock
	return nil
}
