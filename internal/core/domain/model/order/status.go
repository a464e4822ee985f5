package order

import (
	"fmt"

	"shipping/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct shipping workflow.
//
// State transitions:
//
//	Pending ──> Shipped ──> Delivered
//	   │           │
//	   └───────────┴──> Cancelled
//
// Delivered and Cancelled are terminal; no transition leaves them.
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// UnknownStatus represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	UnknownStatus Status = iota

	// Pending is the initial status of every created order.
	// Orders in this status may receive and bind quotes.
	Pending

	// Shipped indicates the order has left the warehouse.
	// Reaching Shipped requires a bound quote.
	Shipped

	// Delivered indicates the shipment reached its recipient.
	// This is a final state.
	Delivered

	// Cancelled indicates the order was abandoned before delivery.
	// This is a final state, reachable from Pending or Shipped only.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus: "unknown",
		Pending:       "pending",
		Shipped:       "shipped",
		Delivered:     "delivered",
		Cancelled:     "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // UnknownStatus is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Shipped:   "shipped",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

// allowedTransitions is the complete edge set of the lifecycle state machine.
func allowedTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending: {Shipped, Cancelled},
		Shipped: {Delivered, Cancelled},
	}
}

// StatusFromString parses a persisted or external status name.
func StatusFromString(s string) (Status, error) {
	for st, name := range getValidStatusStrings() {
		if name == s {
			return st, nil
		}
	}
	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause(
		"orderStatus", fmt.Errorf("%q is not a valid order status", s))
}

// Validate checks if the Status value is valid.
// Valid statuses are Pending, Shipped, Delivered and Cancelled.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"orderStatus", fmt.Errorf("%d is not a valid order status", s))
	}
	return nil
}

// String returns the lowercase name of the status.
// Implements fmt.Stringer and is safe to call on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// CanTransitionTo reports whether the edge s -> target exists in the
// lifecycle state machine.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range allowedTransitions()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo validates the edge s -> target and returns the new status.
// Returns ErrIllegalTransition (wrapped with both endpoints) for any edge
// outside the allowed set, including every transition out of a terminal state.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}
	if !s.CanTransitionTo(target) {
		return 0, fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, s, target)
	}
	return target, nil
}
