package pizzarepo

import (
	"context"
	"errors"

	"pizzeria/internal/adapters/out/postgres/pgerrors"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/pizza"
	"pizzeria/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPizzaRepository implements PizzaRepository using GORM.
// The catalog is read-only for the order engine, so there is no Update.
type GormPizzaRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPizzaRepository creates a new GORM pizza repository.
func NewGormPizzaRepository(db *gorm.DB, tracker aggregateTracker) *GormPizzaRepository {
	return &GormPizzaRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new pizza to the database.
func (r *GormPizzaRepository) Add(ctx context.Context, aggregate *pizza.Pizza) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerrors.Classify("pizza insert", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a pizza by ID.
func (r *GormPizzaRepository) Get(ctx context.Context, id kernel.UUID) (*pizza.Pizza, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PizzaDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pizza", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves the whole catalog sorted by name.
func (r *GormPizzaRepository) GetAll(ctx context.Context) ([]*pizza.Pizza, error) {
	var dtos []PizzaDTO
	if err := r.db.WithContext(ctx).Order("nombre").Find(&dtos).Error; err != nil {
		return nil, err
	}

	pizzas := make([]*pizza.Pizza, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		pizzas = append(pizzas, p)
	}

	return pizzas, nil
}
