// Package courierrepo provides data transfer objects and mapping functions for
// courier persistence. Availability lives in the "repartidores" table and is
// only ever flipped behind a row lock taken inside the caller's transaction.
package courierrepo

import (
	"pizzeria/internal/core/domain/model/courier"
	"pizzeria/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CourierDTO represents the database structure for persisting courier aggregates.
type CourierDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name   string    `gorm:"column:nombre"`
	Zone   string    `gorm:"column:zona"`
	Status string    `gorm:"column:estado;index"`
}

// TableName specifies the database table name for courier entities.
// Overrides GORM's default naming convention to use "repartidores".
func (CourierDTO) TableName() string {
	return "repartidores"
}

// fromDomain converts a courier domain aggregate to its database representation.
func fromDomain(aggregate *courier.Courier) CourierDTO {
	return CourierDTO{
		ID:     aggregate.ID().Bytes(),
		Name:   aggregate.Name(),
		Zone:   aggregate.Zone(),
		Status: aggregate.Status().String(),
	}
}

// toDomain converts a database DTO to a courier domain aggregate.
func toDomain(dto CourierDTO) (*courier.Courier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := courier.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return courier.RestoreCourier(id, dto.Name, dto.Zone, status)
}
