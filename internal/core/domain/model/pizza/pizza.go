package pizza

import (
	"errors"
	"fmt"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

var (
	// ErrPizzaIsNotConstructed is returned when a Pizza instance was not created
	// through NewPizza.
	ErrPizzaIsNotConstructed = errors.New("Pizza must be created via NewPizza constructor")

	// ErrNameIsRequired is returned when attempting to create a pizza without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")

	// ErrRecipeIsRequired is returned when attempting to create a pizza with an
	// empty recipe.
	ErrRecipeIsRequired = errs.NewValueIsRequiredError("recipe")
)

// Pizza is a read-only menu entity for the order engine: it is provisioned by the
// seeding collaborator and never mutated here. Its recipe is the ordered list of
// ingredient ids; the same ingredient may appear more than once, and each
// occurrence consumes one stock unit per ordered pizza.
type Pizza struct {
	id            kernel.UUID
	name          string
	category      Category
	price         float64
	ingredientIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewPizza creates a validated menu Pizza.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - name: menu name (must be non-empty)
//   - category: one of the enumerated categories
//   - price: unit price (must not be negative)
//   - ingredientIDs: recipe as ordered ingredient ids, duplicates allowed
//     (must contain at least one valid id)
//
// Returns the pizza, or an aggregated validation error.
func NewPizza(
	id kernel.UUID,
	name string,
	category Category,
	price float64,
	ingredientIDs []kernel.UUID,
) (*Pizza, error) {
	p := &Pizza{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setCategory(category),
		p.setPrice(price),
		p.setIngredientIDs(ingredientIDs),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the Pizza was created through NewPizza.
func (p *Pizza) Validate() error {
	if p == nil {
		return ErrPizzaIsNotConstructed
	}
	return p.guard.Validate(ErrPizzaIsNotConstructed)
}

// ID returns the pizza's unique identifier.
func (p *Pizza) ID() kernel.UUID {
	return p.id
}

// Name returns the menu name.
func (p *Pizza) Name() string {
	return p.name
}

// Category returns the menu category.
func (p *Pizza) Category() Category {
	return p.category
}

// Price returns the unit price.
func (p *Pizza) Price() float64 {
	return p.price
}

// IngredientIDs returns a copy of the recipe's ingredient ids in recipe order.
// Duplicates express multi-unit use of the same ingredient.
func (p *Pizza) IngredientIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(p.ingredientIDs))
	copy(ids, p.ingredientIDs)
	return ids
}

func (p *Pizza) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Pizza) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	p.name = name
	return nil
}

func (p *Pizza) setCategory(category Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	p.category = category
	return nil
}

func (p *Pizza) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"price",
			fmt.Errorf("%f is not greater than or equal to 0", price),
		)
	}
	p.price = price
	return nil
}

func (p *Pizza) setIngredientIDs(ids []kernel.UUID) error {
	if len(ids) == 0 {
		return ErrRecipeIsRequired
	}
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return err
		}
	}
	p.ingredientIDs = make([]kernel.UUID, len(ids))
	copy(p.ingredientIDs, ids)
	return nil
}
