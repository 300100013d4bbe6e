package queries

import (
	"errors"
	"fmt"
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

var ErrTopIngredientsQueryIsNotConstructed = errors.New(
	"TopIngredientsQuery must be created via NewTopIngredientsQuery constructor",
)

// TopIngredientsQuery reports the most used ingredients across the orders
// placed since a given moment. Usage is counted the same way reservations are:
// one unit per recipe occurrence per ordered pizza unit, cancelled orders
// excluded.
//
// Example:
//
//	query, err := NewTopIngredientsQuery(time.Now().AddDate(0, -1, 0), 5)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewTopIngredientsQueryHandler(db)
//	top, err := handler.Handle(ctx, query)
type TopIngredientsQuery struct { //nolint:recvcheck //using for validation
	since time.Time
	limit int

	guard guard.ConstructorGuard
}

// NewTopIngredientsQuery creates a query for the ingredient usage report.
// Validates that since is set and limit is positive.
func NewTopIngredientsQuery(since time.Time, limit int) (TopIngredientsQuery, error) {
	query := TopIngredientsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setSince(since),
		query.setLimit(limit),
	); err != nil {
		return TopIngredientsQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrTopIngredientsQueryIsNotConstructed if validation fails.
func (q TopIngredientsQuery) Validate() error {
	return q.guard.Validate(ErrTopIngredientsQueryIsNotConstructed)
}

// Since returns the start of the reporting window.
func (q TopIngredientsQuery) Since() time.Time {
	return q.since
}

// Limit returns the maximum number of ingredients to report.
func (q TopIngredientsQuery) Limit() int {
	return q.limit
}

func (q *TopIngredientsQuery) setSince(since time.Time) error {
	if since.IsZero() {
		return errs.NewValueIsRequiredError("since")
	}

	q.since = since
	return nil
}

func (q *TopIngredientsQuery) setLimit(limit int) error {
	if limit <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"limit",
			fmt.Errorf("%d is not greater than 0", limit),
		)
	}

	q.limit = limit
	return nil
}

// TopIngredientsQueryResponse represents one ingredient in the usage report.
type TopIngredientsQueryResponse struct {
	ID   kernel.UUID
	Name string
	Uses int
}
