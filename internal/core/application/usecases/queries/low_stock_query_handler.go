package queries

import (
	"context"

	"pizzeria/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LowStockQueryHandler retrieves low stock ingredients from the database.
type LowStockQueryHandler struct {
	db *gorm.DB
}

// NewLowStockQueryHandler creates a handler for low stock queries.
// Requires a GORM database connection for query execution.
func NewLowStockQueryHandler(db *gorm.DB) LowStockQueryHandler {
	return LowStockQueryHandler{db: db}
}

// Handle executes the query to retrieve ingredients below the threshold,
// lowest stock first.
func (h LowStockQueryHandler) Handle(
	ctx context.Context,
	query LowStockQuery,
) ([]LowStockQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	low := make([]LowStockQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			nombre,
			stock
		FROM ingredientes
		WHERE stock < ?
		ORDER BY stock, nombre
	`, query.Threshold()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry LowStockQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&entry.Name,
			&entry.Stock,
		)
		if err != nil {
			return nil, err
		}

		ingredientID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		entry.ID = ingredientID

		low = append(low, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return low, nil
}
