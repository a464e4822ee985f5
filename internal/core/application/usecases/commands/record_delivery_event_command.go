package commands

import (
	"errors"
	"time"

	"shipping/internal/core/domain/model/history"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var (
	ErrRecordDeliveryEventCommandIsNotConstructed = errors.New(
		"RecordDeliveryEventCommand must be created via NewRecordDeliveryEventCommand constructor",
	)
	ErrTrackingIDIsRequired   = errors.New("tracking ID is required")
	ErrShippingPriceIsInvalid = errors.New("shipping price must not be negative")
)

// RecordDeliveryEventCommand represents one carrier event to append to an
// order's delivery history.
type RecordDeliveryEventCommand struct { //nolint:recvcheck //using for validation
	recordID      kernel.UUID
	orderID       kernel.UUID
	shippingPrice float64
	paymentMode   history.PaymentMode
	status        history.DeliveryStatus
	deliveryDate  *time.Time
	trackingID    string

	guard guard.ConstructorGuard
}

// NewRecordDeliveryEventCommand creates a command to record a carrier event.
// The delivery date is required for delivered events; the record constructor
// enforces that at handling time.
func NewRecordDeliveryEventCommand(
	recordID, orderID kernel.UUID,
	shippingPrice float64,
	paymentMode history.PaymentMode,
	status history.DeliveryStatus,
	deliveryDate *time.Time,
	trackingID string,
) (RecordDeliveryEventCommand, error) {
	cmd := RecordDeliveryEventCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		recordID.Validate(),
		orderID.Validate(),
		paymentMode.Validate(),
		status.Validate(),
		cmd.setShippingPrice(shippingPrice),
		cmd.setTrackingID(trackingID),
	); err != nil {
		return RecordDeliveryEventCommand{}, err
	}

	cmd.recordID = recordID
	cmd.orderID = orderID
	cmd.paymentMode = paymentMode
	cmd.status = status
	if deliveryDate != nil {
		d := *deliveryDate
		cmd.deliveryDate = &d
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordDeliveryEventCommand) Validate() error {
	return c.guard.Validate(ErrRecordDeliveryEventCommandIsNotConstructed)
}

// RecordID returns the identifier of the new history record.
func (c RecordDeliveryEventCommand) RecordID() kernel.UUID {
	return c.recordID
}

// OrderID returns the order the event belongs to.
func (c RecordDeliveryEventCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ShippingPrice returns the price the carrier reports for the shipment.
func (c RecordDeliveryEventCommand) ShippingPrice() float64 {
	return c.shippingPrice
}

// PaymentMode returns how the shipment is paid for.
func (c RecordDeliveryEventCommand) PaymentMode() history.PaymentMode {
	return c.paymentMode
}

// Status returns the carrier-reported delivery status.
func (c RecordDeliveryEventCommand) Status() history.DeliveryStatus {
	return c.status
}

// DeliveryDate returns the delivery instant, or nil when not delivered.
func (c RecordDeliveryEventCommand) DeliveryDate() *time.Time {
	if c.deliveryDate == nil {
		return nil
	}
	d := *c.deliveryDate
	return &d
}

// TrackingID returns the carrier tracking identifier.
func (c RecordDeliveryEventCommand) TrackingID() string {
	return c.trackingID
}

func (c *RecordDeliveryEventCommand) setShippingPrice(shippingPrice float64) error {
	if shippingPrice < 0 {
		return ErrShippingPriceIsInvalid
	}

	c.shippingPrice = shippingPrice
	return nil
}

func (c *RecordDeliveryEventCommand) setTrackingID(trackingID string) error {
	if trackingID == "" {
		return ErrTrackingIDIsRequired
	}

	c.trackingID = trackingID
	return nil
}
