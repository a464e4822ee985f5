// Package quoterepo provides data transfer objects and mapping functions for
// quote persistence. Quote rows are append-mostly: the only mutation ever
// applied is the guarded valid-to-expired status flip.
package quoterepo

import (
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/quote"

	"github.com/google/uuid"
)

// QuoteDTO represents the database structure for persisting quote aggregates.
// Indexed by order for listing reads and by validity window for the sweep.
type QuoteDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID       uuid.UUID `gorm:"type:uuid;index"`
	VendorID      uuid.UUID `gorm:"type:uuid"`
	Price         float64
	EstimatedDays int
	Status        string `gorm:"index"`
	IssuedAt      time.Time
	ValidUntil    time.Time `gorm:"index"`
}

// TableName specifies the database table name for quote entities.
func (QuoteDTO) TableName() string {
	return "quotes"
}

// fromDomain converts a quote domain aggregate to its database representation.
func fromDomain(aggregate *quote.Quote) QuoteDTO {
	return QuoteDTO{
		ID:            aggregate.ID().Bytes(),
		OrderID:       aggregate.OrderID().Bytes(),
		VendorID:      aggregate.VendorID().Bytes(),
		Price:         aggregate.Price(),
		EstimatedDays: aggregate.EstimatedDays(),
		Status:        aggregate.Status().String(),
		IssuedAt:      aggregate.IssuedAt(),
		ValidUntil:    aggregate.ValidUntil(),
	}
}

// toDomain converts a database DTO to a quote domain aggregate.
func toDomain(dto QuoteDTO) (*quote.Quote, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	vendorID, err := kernel.UUIDFromBytes(dto.VendorID[:])
	if err != nil {
		return nil, err
	}

	status, err := quote.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return quote.RestoreQuote(
		id, orderID, vendorID,
		dto.Price, dto.EstimatedDays,
		status, dto.IssuedAt, dto.ValidUntil)
}
