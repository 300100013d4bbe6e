// Package customerrepo holds the persistence mapping for customers. Customers
// are reference data for the order engine: orders point at them by id and the
// read side lists them, but no command mutates them.
package customerrepo

import (
	"github.com/google/uuid"
)

// CustomerDTO represents the database structure for persisting customers.
type CustomerDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name    string    `gorm:"column:nombre"`
	Phone   string    `gorm:"column:telefono"`
	Address string    `gorm:"column:direccion"`
}

// TableName specifies the database table name for customer entities.
// Overrides GORM's default naming convention to use "clientes".
func (CustomerDTO) TableName() string {
	return "clientes"
}
