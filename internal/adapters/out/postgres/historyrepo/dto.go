// Package historyrepo provides data transfer objects and mapping functions
// for delivery history persistence. The table is append-only; rows are never
// updated or deleted.
package historyrepo

import (
	"time"

	"shipping/internal/core/domain/model/history"
	"shipping/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// RecordDTO represents the database structure for persisting history records.
// The delivery date is nullable; it is set only on delivered records and
// feeds the revenue and latency statistics.
type RecordDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID       uuid.UUID `gorm:"type:uuid;index"`
	ShippingPrice float64
	PaymentMode   string
	Status        string     `gorm:"index"`
	DeliveryDate  *time.Time `gorm:"index"`
	TrackingID    string
	RecordedAt    time.Time
}

// TableName specifies the database table name for history records.
func (RecordDTO) TableName() string {
	return "history_records"
}

// fromDomain converts a history record to its database representation.
func fromDomain(record *history.Record) RecordDTO {
	return RecordDTO{
		ID:            record.ID().Bytes(),
		OrderID:       record.OrderID().Bytes(),
		ShippingPrice: record.ShippingPrice(),
		PaymentMode:   record.PaymentMode().String(),
		Status:        record.Status().String(),
		DeliveryDate:  record.DeliveryDate(),
		TrackingID:    record.TrackingID(),
		RecordedAt:    record.RecordedAt(),
	}
}

// toDomain converts a database DTO to a history record.
func toDomain(dto RecordDTO) (*history.Record, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	paymentMode, err := history.PaymentModeFromString(dto.PaymentMode)
	if err != nil {
		return nil, err
	}
	status, err := history.DeliveryStatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return history.NewRecord(
		id, orderID, dto.ShippingPrice,
		paymentMode, status, dto.DeliveryDate,
		dto.TrackingID, dto.RecordedAt)
}
