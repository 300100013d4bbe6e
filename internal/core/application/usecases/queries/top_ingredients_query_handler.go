package queries

import (
	"context"

	"pizzeria/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TopIngredientsQueryHandler computes the ingredient usage report.
// Line items are stored as JSONB on pedidos and recipes as arrays on pizzas,
// so the whole aggregation runs in one SQL statement.
type TopIngredientsQueryHandler struct {
	db *gorm.DB
}

// NewTopIngredientsQueryHandler creates a handler for ingredient usage reports.
// Requires a GORM database connection for query execution.
func NewTopIngredientsQueryHandler(db *gorm.DB) TopIngredientsQueryHandler {
	return TopIngredientsQueryHandler{db: db}
}

// Handle executes the report query. A recipe listing the same ingredient twice
// contributes two uses per ordered unit, matching the reservation arithmetic.
func (h TopIngredientsQueryHandler) Handle(
	ctx context.Context,
	query TopIngredientsQuery,
) ([]TopIngredientsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	top := make([]TopIngredientsQueryResponse, 0, query.Limit())

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			i.id,
			i.nombre,
			SUM((linea.item->>'cantidad')::int) AS usos
		FROM pedidos p
		CROSS JOIN LATERAL jsonb_array_elements(p.lineas) AS linea(item)
		JOIN pizzas pz ON pz.id = (linea.item->>'pizza_id')::uuid
		CROSS JOIN LATERAL unnest(pz.ingredientes) AS receta(ingrediente_id)
		JOIN ingredientes i ON i.id = receta.ingrediente_id::uuid
		WHERE p.creado_en >= ? AND p.estado <> 'cancelled'
		GROUP BY i.id, i.nombre
		ORDER BY usos DESC, i.nombre
		LIMIT ?
	`, query.Since(), query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry TopIngredientsQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&entry.Name,
			&entry.Uses,
		)
		if err != nil {
			return nil, err
		}

		ingredientID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		entry.ID = ingredientID

		top = append(top, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return top, nil
}
