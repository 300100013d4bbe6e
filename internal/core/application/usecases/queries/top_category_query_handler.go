package queries

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"
)

// TopCategoryQueryHandler computes the best-selling category report.
type TopCategoryQueryHandler struct {
	db *gorm.DB
}

// NewTopCategoryQueryHandler creates a handler for the best-selling category report.
// Requires a GORM database connection for query execution.
func NewTopCategoryQueryHandler(db *gorm.DB) TopCategoryQueryHandler {
	return TopCategoryQueryHandler{db: db}
}

// Handle executes the report query. Returns nil when no order has been placed
// yet; ties break alphabetically.
func (h TopCategoryQueryHandler) Handle(
	ctx context.Context,
	query TopCategoryQuery,
) (*TopCategoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var top TopCategoryQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			pz.categoria,
			SUM((linea.item->>'cantidad')::int) AS unidades
		FROM pedidos p
		CROSS JOIN LATERAL jsonb_array_elements(p.lineas) AS linea(item)
		JOIN pizzas pz ON pz.id = (linea.item->>'pizza_id')::uuid
		WHERE p.estado <> 'cancelled'
		GROUP BY pz.categoria
		ORDER BY unidades DESC, pz.categoria
		LIMIT 1
	`).Row()

	err := row.Scan(&top.Category, &top.UnitsSold)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &top, nil
}
