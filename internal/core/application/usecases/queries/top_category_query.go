package queries

import (
	"errors"

	"pizzeria/internal/pkg/guard"
)

var ErrTopCategoryQueryIsNotConstructed = errors.New(
	"TopCategoryQuery must be created via NewTopCategoryQuery constructor",
)

// TopCategoryQuery reports the best-selling pizza category by units sold,
// cancelled orders excluded.
type TopCategoryQuery struct {
	guard guard.ConstructorGuard
}

// NewTopCategoryQuery creates a query for the best-selling category report.
// This is a parameterless query.
func NewTopCategoryQuery() TopCategoryQuery {
	return TopCategoryQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrTopCategoryQueryIsNotConstructed if validation fails.
func (q TopCategoryQuery) Validate() error {
	return q.guard.Validate(ErrTopCategoryQueryIsNotConstructed)
}

// TopCategoryQueryResponse represents the winning category.
type TopCategoryQueryResponse struct {
	Category  string
	UnitsSold int
}
