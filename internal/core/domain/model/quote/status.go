package quote

import (
	"fmt"

	"shipping/internal/pkg/errs"
)

// Status represents the validity state of a quote.
//
// State transitions:
//
//	Valid ──> Expired
//
// The transition is monotonic: an expired quote never becomes valid again.
// Note that Status is a housekeeping label; the authoritative validity check
// at bind time is Quote.IsValidAt, which also compares against the validity
// window, so a quote past its window is unusable even before a sweep flips
// its status.
type Status int

const (
	// UnknownStatus represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	UnknownStatus Status = iota

	// Valid is the initial status of every issued quote.
	Valid

	// Expired marks a quote whose validity window has passed.
	// This is a final state.
	Expired
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus: "unknown",
		Valid:         "valid",
		Expired:       "expired",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // UnknownStatus is intentionally excluded as it's invalid
	return map[Status]string{
		Valid:   "valid",
		Expired: "expired",
	}
}

// StatusFromString parses a persisted status name.
func StatusFromString(s string) (Status, error) {
	for st, name := range getValidStatusStrings() {
		if name == s {
			return st, nil
		}
	}
	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause(
		"quoteStatus", fmt.Errorf("%q is not a valid quote status", s))
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"quoteStatus", fmt.Errorf("%d is not a valid quote status", s))
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
