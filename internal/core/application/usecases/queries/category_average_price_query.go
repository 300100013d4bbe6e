package queries

import (
	"errors"

	"pizzeria/internal/pkg/guard"
)

var ErrCategoryAveragePriceQueryIsNotConstructed = errors.New(
	"CategoryAveragePriceQuery must be created via NewCategoryAveragePriceQuery constructor",
)

// CategoryAveragePriceQuery reports the average pizza price per menu category.
type CategoryAveragePriceQuery struct {
	guard guard.ConstructorGuard
}

// NewCategoryAveragePriceQuery creates a query for the price report.
// This is a parameterless query.
func NewCategoryAveragePriceQuery() CategoryAveragePriceQuery {
	return CategoryAveragePriceQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrCategoryAveragePriceQueryIsNotConstructed if validation fails.
func (q CategoryAveragePriceQuery) Validate() error {
	return q.guard.Validate(ErrCategoryAveragePriceQueryIsNotConstructed)
}

// CategoryAveragePriceQueryResponse represents one category in the price report.
type CategoryAveragePriceQueryResponse struct {
	Category     string
	AveragePrice float64
	PizzaCount   int
}
