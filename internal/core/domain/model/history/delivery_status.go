package history

import (
	"fmt"

	"shipping/internal/core/domain/model/order"
	"shipping/internal/pkg/errs"
)

// DeliveryStatus represents the carrier-reported state of a shipment as seen
// in a history record. It is external input: records arrive out of order and
// after terminal order states, so the mapping onto the order lifecycle is
// advisory rather than binding.
type DeliveryStatus int

const (
	// UnknownDeliveryStatus represents an invalid or undefined delivery status.
	// This value (0) helps catch uninitialized DeliveryStatus values.
	UnknownDeliveryStatus DeliveryStatus = iota

	// InTransit means the carrier has picked the shipment up.
	InTransit

	// DeliveredStatus means the carrier reports the shipment handed over.
	DeliveredStatus

	// Failed means a delivery attempt did not succeed. It carries no order
	// transition; the order stays where it is pending manual resolution.
	Failed
)

func getDeliveryStatusStrings() map[DeliveryStatus]string {
	return map[DeliveryStatus]string{
		UnknownDeliveryStatus: "unknown",
		InTransit:             "in_transit",
		DeliveredStatus:       "delivered",
		Failed:                "failed",
	}
}

func getValidDeliveryStatusStrings() map[DeliveryStatus]string {
	//nolint:exhaustive // UnknownDeliveryStatus is intentionally excluded as it's invalid
	return map[DeliveryStatus]string{
		InTransit:       "in_transit",
		DeliveredStatus: "delivered",
		Failed:          "failed",
	}
}

// DeliveryStatusFromString parses a persisted or external delivery status name.
func DeliveryStatusFromString(s string) (DeliveryStatus, error) {
	for st, name := range getValidDeliveryStatusStrings() {
		if name == s {
			return st, nil
		}
	}
	return UnknownDeliveryStatus, errs.NewValueIsInvalidErrorWithCause(
		"deliveryStatus", fmt.Errorf("%q is not a valid delivery status", s))
}

// Validate checks if the DeliveryStatus value is valid.
func (s DeliveryStatus) Validate() error {
	if _, ok := getValidDeliveryStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"deliveryStatus", fmt.Errorf("%d is not a valid delivery status", s))
	}
	return nil
}

// String returns the lowercase name of the delivery status.
func (s DeliveryStatus) String() string {
	if str, ok := getDeliveryStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// InducedOrderStatus maps the delivery status onto the order lifecycle status
// it implies. The second return is false for statuses that imply none
// (a failed attempt leaves the order untouched).
func (s DeliveryStatus) InducedOrderStatus() (order.Status, bool) {
	switch s {
	case InTransit:
		return order.Shipped, true
	case DeliveredStatus:
		return order.Delivered, true
	default:
		return order.UnknownStatus, false
	}
}
