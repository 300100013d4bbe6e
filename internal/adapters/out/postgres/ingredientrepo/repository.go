package ingredientrepo

import (
	"context"
	"errors"

	"pizzeria/internal/adapters/out/postgres/pgerrors"
	"pizzeria/internal/core/domain/model/ingredient"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormIngredientRepository implements IngredientRepository using GORM.
type GormIngredientRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormIngredientRepository creates a new GORM ingredient repository.
func NewGormIngredientRepository(db *gorm.DB, tracker aggregateTracker) *GormIngredientRepository {
	return &GormIngredientRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new ingredient to the database.
func (r *GormIngredientRepository) Add(ctx context.Context, aggregate *ingredient.Ingredient) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerrors.Classify("ingredient insert", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing ingredient to the database.
// All columns are written, so a stock level of zero persists correctly.
func (r *GormIngredientRepository) Update(ctx context.Context, aggregate *ingredient.Ingredient) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&IngredientDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return pgerrors.Classify("ingredient update", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("ingredient", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an ingredient by ID.
func (r *GormIngredientRepository) Get(ctx context.Context, id kernel.UUID) (*ingredient.Ingredient, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto IngredientDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("ingredient", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetForUpdate retrieves an ingredient by ID and locks its row with
// SELECT ... FOR UPDATE until the surrounding transaction ends.
func (r *GormIngredientRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*ingredient.Ingredient, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto IngredientDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("ingredient", id.String())
		}
		return nil, pgerrors.Classify("ingredient lock", err)
	}

	return toDomain(dto)
}
