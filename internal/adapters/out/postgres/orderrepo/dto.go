// Package orderrepo provides the data transfer object and mapping functions
// for order persistence. This package implements the repository pattern for
// the order aggregate, handling the conversion between domain entities and
// database rows.
package orderrepo

import (
	"time"

	"orders/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The primary key is the caller-assigned identifier; status is stored in its
// wire form so the row is readable by external consumers and raw queries.
type OrderDTO struct {
	ID        string `gorm:"primaryKey;size:64"`
	Status    string `gorm:"size:32;not null"`
	Version   int    `gorm:"not null;default:0"`
	UpdatedAt time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:        aggregate.ID(),
		Status:    aggregate.Status().String(),
		Version:   aggregate.Version(),
		UpdatedAt: aggregate.UpdatedAt(),
	}
}

// toDomain converts a database row to an order domain aggregate.
// Rejects rows whose status is not a valid wire name, so corrupted data never
// becomes a live aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(dto.ID, status, dto.Version, dto.UpdatedAt)
}
