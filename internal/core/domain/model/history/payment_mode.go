package history

import (
	"fmt"

	"shipping/internal/pkg/errs"
)

// PaymentMode represents how the shipment is paid for.
type PaymentMode int

const (
	// UnknownPaymentMode represents an invalid or undefined payment mode.
	// This value (0) helps catch uninitialized PaymentMode values.
	UnknownPaymentMode PaymentMode = iota

	// Prepaid means the shipment was paid for at order time.
	Prepaid

	// CashOnDelivery means payment is collected from the recipient.
	CashOnDelivery
)

func getPaymentModeStrings() map[PaymentMode]string {
	return map[PaymentMode]string{
		UnknownPaymentMode: "unknown",
		Prepaid:            "prepaid",
		CashOnDelivery:     "cod",
	}
}

func getValidPaymentModeStrings() map[PaymentMode]string {
	//nolint:exhaustive // UnknownPaymentMode is intentionally excluded as it's invalid
	return map[PaymentMode]string{
		Prepaid:        "prepaid",
		CashOnDelivery: "cod",
	}
}

// PaymentModeFromString parses a persisted or external payment mode name.
func PaymentModeFromString(s string) (PaymentMode, error) {
	for m, name := range getValidPaymentModeStrings() {
		if name == s {
			return m, nil
		}
	}
	return UnknownPaymentMode, errs.NewValueIsInvalidErrorWithCause(
		"paymentMode", fmt.Errorf("%q is not a valid payment mode", s))
}

// Validate checks if the PaymentMode value is valid.
func (m PaymentMode) Validate() error {
	if _, ok := getValidPaymentModeStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"paymentMode", fmt.Errorf("%d is not a valid payment mode", m))
	}
	return nil
}

// String returns the lowercase name of the payment mode.
func (m PaymentMode) String() string {
	if str, ok := getPaymentModeStrings()[m]; ok {
		return str
	}
	return "unknown"
}
