package queries

import (
	"context"

	"gorm.io/gorm"
)

// CategoryAveragePriceQueryHandler computes the per-category price report.
type CategoryAveragePriceQueryHandler struct {
	db *gorm.DB
}

// NewCategoryAveragePriceQueryHandler creates a handler for price reports.
// Requires a GORM database connection for query execution.
func NewCategoryAveragePriceQueryHandler(db *gorm.DB) CategoryAveragePriceQueryHandler {
	return CategoryAveragePriceQueryHandler{db: db}
}

// Handle executes the report query, one row per category present on the menu.
func (h CategoryAveragePriceQueryHandler) Handle(
	ctx context.Context,
	query CategoryAveragePriceQuery,
) ([]CategoryAveragePriceQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	report := make([]CategoryAveragePriceQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			categoria,
			AVG(precio) AS precio_promedio,
			COUNT(*) AS cantidad
		FROM pizzas
		GROUP BY categoria
		ORDER BY categoria
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry CategoryAveragePriceQueryResponse

		err = rows.Scan(
			&entry.Category,
			&entry.AveragePrice,
			&entry.PizzaCount,
		)
		if err != nil {
			return nil, err
		}

		report = append(report, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return report, nil
}
