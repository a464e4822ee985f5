package history

import (
	"errors"
	"fmt"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
)

var (
	// ErrRecordIsNotConstructed is returned when a Record instance was not
	// created through NewRecord.
	ErrRecordIsNotConstructed = errors.New("Record must be created via NewRecord")

	// ErrDeliveryDateIsRequired is returned when a delivered record carries no
	// delivery date.
	ErrDeliveryDateIsRequired = errors.New("delivery date is required for a delivered record")

	// ErrTrackingIDIsRequired is returned when a record carries no carrier
	// tracking identifier.
	ErrTrackingIDIsRequired = errors.New("tracking ID is required")
)

// Record is one append-only entry of an order's delivery history. Records are
// immutable once created; corrections arrive as new records, never as updates.
type Record struct {
	id            kernel.UUID
	orderID       kernel.UUID
	shippingPrice float64
	paymentMode   PaymentMode
	status        DeliveryStatus
	deliveryDate  *time.Time
	trackingID    string
	recordedAt    time.Time

	isConstructed bool
}

// NewRecord creates an immutable history record.
//
// Business rules enforced:
//   - Identifiers, payment mode and delivery status must be valid
//   - Shipping price must not be negative
//   - A delivered record must carry a delivery date; others may omit it
//   - The carrier tracking ID must be present
func NewRecord(
	id, orderID kernel.UUID,
	shippingPrice float64,
	paymentMode PaymentMode,
	status DeliveryStatus,
	deliveryDate *time.Time,
	trackingID string,
	recordedAt time.Time,
) (*Record, error) {
	if err := errors.Join(
		id.Validate(),
		validateOrderID(orderID),
		paymentMode.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if shippingPrice < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"shippingPrice", fmt.Errorf("%v is negative", shippingPrice))
	}
	if trackingID == "" {
		return nil, ErrTrackingIDIsRequired
	}
	if status == DeliveredStatus && deliveryDate == nil {
		return nil, ErrDeliveryDateIsRequired
	}

	r := &Record{
		id:            id,
		orderID:       orderID,
		shippingPrice: shippingPrice,
		paymentMode:   paymentMode,
		status:        status,
		trackingID:    trackingID,
		recordedAt:    recordedAt,
		isConstructed: true,
	}
	if deliveryDate != nil {
		d := *deliveryDate
		r.deliveryDate = &d
	}

	return r, nil
}

// Validate ensures the Record instance was properly constructed.
func (r *Record) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRecordIsNotConstructed
	}
	return nil
}

// ID returns the record's unique identifier.
func (r *Record) ID() kernel.UUID {
	return r.id
}

// OrderID returns the order the record belongs to.
func (r *Record) OrderID() kernel.UUID {
	return r.orderID
}

// ShippingPrice returns the price charged for the shipment.
func (r *Record) ShippingPrice() float64 {
	return r.shippingPrice
}

// PaymentMode returns how the shipment is paid for.
func (r *Record) PaymentMode() PaymentMode {
	return r.paymentMode
}

// Status returns the carrier-reported delivery status.
func (r *Record) Status() DeliveryStatus {
	return r.status
}

// DeliveryDate returns the delivery instant, or nil when the shipment has not
// been delivered. Never nil when Status is DeliveredStatus.
func (r *Record) DeliveryDate() *time.Time {
	if r.deliveryDate == nil {
		return nil
	}
	d := *r.deliveryDate
	return &d
}

// TrackingID returns the carrier tracking identifier.
func (r *Record) TrackingID() string {
	return r.trackingID
}

// RecordedAt returns the instant the record was appended.
func (r *Record) RecordedAt() time.Time {
	return r.recordedAt
}

func validateOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return fmt.Errorf("orderId: %w", err)
	}
	return nil
}
