// Package pizzarepo provides data transfer objects and mapping functions for
// the pizza catalog. Recipes are stored as an array of ingredient ids on the
// "pizzas" row; a repeated id means the recipe consumes that ingredient more
// than once per unit.
package pizzarepo

import (
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/pizza"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// PizzaDTO represents the database structure for persisting catalog pizzas.
type PizzaDTO struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name          string         `gorm:"column:nombre"`
	Category      string         `gorm:"column:categoria;index"`
	Price         float64        `gorm:"column:precio"`
	IngredientIDs pq.StringArray `gorm:"type:text[];column:ingredientes"`
}

// TableName specifies the database table name for pizza entities.
// Overrides GORM's default naming convention to use "pizzas".
func (PizzaDTO) TableName() string {
	return "pizzas"
}

// fromDomain converts a pizza domain aggregate to its database representation.
func fromDomain(aggregate *pizza.Pizza) PizzaDTO {
	recipe := aggregate.IngredientIDs()
	ids := make(pq.StringArray, 0, len(recipe))
	for _, ingredientID := range recipe {
		ids = append(ids, ingredientID.String())
	}

	return PizzaDTO{
		ID:            aggregate.ID().Bytes(),
		Name:          aggregate.Name(),
		Category:      aggregate.Category().String(),
		Price:         aggregate.Price(),
		IngredientIDs: ids,
	}
}

// toDomain converts a database DTO to a pizza domain aggregate.
func toDomain(dto PizzaDTO) (*pizza.Pizza, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	category, err := pizza.CategoryFromString(dto.Category)
	if err != nil {
		return nil, err
	}

	recipe := make([]kernel.UUID, 0, len(dto.IngredientIDs))
	for _, raw := range dto.IngredientIDs {
		ingredientID, idErr := kernel.UUIDFromString(raw)
		if idErr != nil {
			return nil, idErr
		}
		recipe = append(recipe, ingredientID)
	}

	return pizza.NewPizza(id, dto.Name, category, dto.Price, recipe)
}
