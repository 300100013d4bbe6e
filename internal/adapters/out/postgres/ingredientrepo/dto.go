// Package ingredientrepo provides data transfer objects and mapping functions
// for ingredient persistence. Stock lives in the "ingredientes" table and is
// only ever changed behind a row lock taken inside the caller's transaction.
package ingredientrepo

import (
	"pizzeria/internal/core/domain/model/ingredient"
	"pizzeria/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// IngredientDTO represents the database structure for persisting ingredient aggregates.
type IngredientDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string    `gorm:"column:nombre"`
	Type  string    `gorm:"column:tipo;index"`
	Stock int       `gorm:"column:stock"`
}

// TableName specifies the database table name for ingredient entities.
// Overrides GORM's default naming convention to use "ingredientes".
func (IngredientDTO) TableName() string {
	return "ingredientes"
}

// fromDomain converts an ingredient domain aggregate to its database representation.
func fromDomain(aggregate *ingredient.Ingredient) IngredientDTO {
	return IngredientDTO{
		ID:    aggregate.ID().Bytes(),
		Name:  aggregate.Name(),
		Type:  aggregate.Type().String(),
		Stock: aggregate.Stock(),
	}
}

// toDomain converts a database DTO to an ingredient domain aggregate.
// Rows violating the domain invariants are rejected at load time.
func toDomain(dto IngredientDTO) (*ingredient.Ingredient, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ingredientType, err := ingredient.TypeFromString(dto.Type)
	if err != nil {
		return nil, err
	}

	return ingredient.RestoreIngredient(id, dto.Name, ingredientType, dto.Stock)
}
