// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Indexed by user and status for the statistics reads.
type OrderDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID `gorm:"type:uuid;index"`
	WarehouseID   uuid.UUID `gorm:"type:uuid"`
	RecipientName string
	TotalWeightKg float64
	Status        string     `gorm:"index"`
	BoundQuoteID  *uuid.UUID `gorm:"type:uuid"`
	BoundPrice    float64
	CreatedAt     time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var boundQuoteID *uuid.UUID
	if id := aggregate.BoundQuoteID(); id != nil {
		raw := id.Bytes()
		boundQuoteID = &raw
	}

	return OrderDTO{
		ID:            aggregate.ID().Bytes(),
		UserID:        aggregate.UserID().Bytes(),
		WarehouseID:   aggregate.WarehouseID().Bytes(),
		RecipientName: aggregate.RecipientName(),
		TotalWeightKg: aggregate.TotalWeight().Kg(),
		Status:        aggregate.Status().String(),
		BoundQuoteID:  boundQuoteID,
		BoundPrice:    aggregate.BoundPrice(),
		CreatedAt:     aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate using
// RestoreOrder, so persisted rows go through full invariant validation.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}
	warehouseID, err := kernel.UUIDFromBytes(dto.WarehouseID[:])
	if err != nil {
		return nil, err
	}

	totalWeight, err := kernel.NewWeight(dto.TotalWeightKg)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var boundQuoteID *kernel.UUID
	if dto.BoundQuoteID != nil {
		quoteID, quoteErr := kernel.UUIDFromBytes((*dto.BoundQuoteID)[:])
		if quoteErr != nil {
			return nil, quoteErr
		}
		boundQuoteID = &quoteID
	}

	return order.RestoreOrder(
		id, userID, warehouseID,
		dto.RecipientName, totalWeight, status,
		boundQuoteID, dto.BoundPrice, dto.CreatedAt)
}
