package kernel

import (
	"fmt"

	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

// ErrWeightIsNotConstructed is returned when validating a zero-value Weight.
// Weights must be created via the NewWeight constructor.
var ErrWeightIsNotConstructed = errs.NewValueIsRequiredError(
	"weight must be created via NewWeight constructor")

// Weight is a value object representing a shipment weight in kilograms.
// A valid weight is strictly positive; rate lookups and order creation both
// reject non-positive weights at construction, so a constructed Weight can be
// used without re-checking.
//
// Weight is immutable and safe for concurrent use.
type Weight struct {
	kg float64

	guard guard.ConstructorGuard
}

// NewWeight creates a Weight from kilograms.
// Returns a ValueIsInvalidError if kg is zero or negative.
func NewWeight(kg float64) (Weight, error) {
	if kg <= 0 {
		return Weight{}, errs.NewValueIsInvalidErrorWithCause("weight",
			fmt.Errorf("%v kg is not greater than 0", kg))
	}

	return Weight{
		kg:    kg,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Kg returns the weight in kilograms.
func (w Weight) Kg() float64 {
	return w.kg
}

// IsEqual compares two weights for equality.
func (w Weight) IsEqual(other Weight) bool {
	return w.kg == other.kg
}

// Validate ensures the Weight was created through NewWeight.
func (w Weight) Validate() error {
	return w.guard.Validate(ErrWeightIsNotConstructed)
}
