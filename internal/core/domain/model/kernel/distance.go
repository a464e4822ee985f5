package kernel

import (
	"fmt"
	"math"

	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

// ErrDistanceIsNotConstructed is returned when validating a zero-value Distance
// that did not pass through NewDistance.
var ErrDistanceIsNotConstructed = errs.NewValueIsRequiredError(
	"distance must be created via NewDistance constructor")

// Distance is a value object representing a route distance in kilometres.
// Zero is a valid distance (same-city shipment); negative distances are
// rejected at construction.
//
// Distance is immutable and safe for concurrent use.
type Distance struct {
	km float64

	guard guard.ConstructorGuard
}

// NewDistance creates a Distance from kilometres.
// Returns a ValueIsInvalidError if km is negative.
func NewDistance(km float64) (Distance, error) {
	if km < 0 {
		return Distance{}, errs.NewValueIsInvalidErrorWithCause("distanceKm",
			fmt.Errorf("%v km is negative", km))
	}

	return Distance{
		km:    km,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Km returns the distance in kilometres.
func (d Distance) Km() float64 {
	return d.km
}

// Increments5Km returns the number of started 5 km increments in the distance.
// Rate plans charge their per-distance surcharge once per started increment;
// a zero distance yields zero increments, so the minimum charge is the base price.
func (d Distance) Increments5Km() int {
	if d.km <= 0 {
		return 0
	}
	return int(math.Ceil(d.km / 5))
}

// IsEqual compares two distances for equality.
func (d Distance) IsEqual(other Distance) bool {
	return d.km == other.km
}

// Validate ensures the Distance was created through NewDistance.
func (d Distance) Validate() error {
	return d.guard.Validate(ErrDistanceIsNotConstructed)
}
