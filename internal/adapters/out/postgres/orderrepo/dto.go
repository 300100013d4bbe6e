// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. Orders live in the "pedidos" table with their aggregated
// line items embedded as a JSONB column, so an order commits or aborts as one
// row together with the stock and courier updates of its transaction.
package orderrepo

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID         uuid.UUID     `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID     `gorm:"type:uuid;column:cliente_id;index"`
	LineItems  LineItemsJSON `gorm:"type:jsonb;column:lineas"`
	Total      float64       `gorm:"column:total"`
	CourierID  *uuid.UUID    `gorm:"type:uuid;column:repartidor_id;index"`
	Status     string        `gorm:"column:estado;index"`
	CreatedAt  time.Time     `gorm:"column:creado_en"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "pedidos".
func (OrderDTO) TableName() string {
	return "pedidos"
}

// LineItemDTO is one aggregated (pizza, quantity) pair inside the JSONB column.
type LineItemDTO struct {
	PizzaID  uuid.UUID `json:"pizza_id"`
	Quantity int       `json:"cantidad"`
}

// LineItemsJSON stores the order's line items as a JSONB document.
type LineItemsJSON []LineItemDTO

// Value implements driver.Valuer for writing the JSONB column.
func (l LineItemsJSON) Value() (driver.Value, error) {
	return json.Marshal(l)
}

// Scan implements sql.Scanner for reading the JSONB column.
func (l *LineItemsJSON) Scan(value any) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("cannot scan %T into LineItemsJSON", value)
	}
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var courierID *uuid.UUID
	if id := aggregate.Courier(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	items := aggregate.LineItems()
	lineItems := make(LineItemsJSON, 0, len(items))
	for _, item := range items {
		lineItems = append(lineItems, LineItemDTO{
			PizzaID:  item.PizzaID().Bytes(),
			Quantity: item.Quantity(),
		})
	}

	return OrderDTO{
		ID:         aggregate.ID().Bytes(),
		CustomerID: aggregate.CustomerID().Bytes(),
		LineItems:  lineItems,
		Total:      aggregate.Total(),
		CourierID:  courierID,
		Status:     aggregate.Status().String(),
		CreatedAt:  aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including line items, status and courier
// assignment using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}

		courierID = &cID
	}

	lineItems := make([]order.LineItem, 0, len(dto.LineItems))
	for _, itemDTO := range dto.LineItems {
		pizzaID, itemErr := kernel.UUIDFromBytes(itemDTO.PizzaID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.NewLineItem(pizzaID, itemDTO.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		lineItems = append(lineItems, item)
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, customerID, lineItems, dto.Total, courierID, status, dto.CreatedAt)
}
