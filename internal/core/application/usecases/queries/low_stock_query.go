package queries

import (
	"errors"
	"fmt"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

var ErrLowStockQueryIsNotConstructed = errors.New(
	"LowStockQuery must be created via NewLowStockQuery constructor",
)

// LowStockQuery retrieves the ingredients whose stock has fallen below a
// threshold. The low stock monitor job uses it to warn before placements start
// failing with insufficient stock.
type LowStockQuery struct { //nolint:recvcheck //using for validation
	threshold int

	guard guard.ConstructorGuard
}

// NewLowStockQuery creates a query for ingredients below the given threshold.
// Validates that the threshold is positive.
func NewLowStockQuery(threshold int) (LowStockQuery, error) {
	query := LowStockQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setThreshold(threshold); err != nil {
		return LowStockQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrLowStockQueryIsNotConstructed if validation fails.
func (q LowStockQuery) Validate() error {
	return q.guard.Validate(ErrLowStockQueryIsNotConstructed)
}

// Threshold returns the stock level under which ingredients are reported.
func (q LowStockQuery) Threshold() int {
	return q.threshold
}

func (q *LowStockQuery) setThreshold(threshold int) error {
	if threshold <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"threshold",
			fmt.Errorf("%d is not greater than 0", threshold),
		)
	}

	q.threshold = threshold
	return nil
}

// LowStockQueryResponse represents one ingredient running low.
type LowStockQueryResponse struct {
	ID    kernel.UUID
	Name  string
	Stock int
}
