package quote

import (
	"errors"
	"fmt"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
)

var (
	// ErrQuoteIsNotConstructed is returned when a Quote instance was not
	// created through NewQuote or RestoreQuote.
	ErrQuoteIsNotConstructed = errors.New("Quote must be created via NewQuote or RestoreQuote")
)

// Quote is a vendor-specific priced shipping offer for one order, with a
// time-bounded validity window.
//
// Quote follows these invariants:
//   - The order, vendor, and quote identifiers are all valid UUIDs
//   - Price is non-negative and the estimated days are positive
//   - validUntil = issuedAt + TTL, fixed at issuance
//   - After issuance the only permitted mutation is the monotonic
//     Valid -> Expired status flip
//
// Re-quoting the same (order, vendor) pair creates a new Quote with its own
// identity; several valid quotes for the pair may coexist until they expire
// or one of them is bound.
type Quote struct {
	id            kernel.UUID
	orderID       kernel.UUID
	vendorID      kernel.UUID
	price         float64
	estimatedDays int
	status        Status
	issuedAt      time.Time
	validUntil    time.Time

	isConstructed bool
}

// NewQuote issues a fresh quote for an order/vendor pair.
// The validity window starts at issuedAt and lasts ttl, which must be positive.
func NewQuote(
	id, orderID, vendorID kernel.UUID,
	price float64,
	estimatedDays int,
	issuedAt time.Time,
	ttl time.Duration,
) (*Quote, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), vendorID.Validate()); err != nil {
		return nil, err
	}
	if price < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("shippingPrice",
			fmt.Errorf("%v is negative", price))
	}
	if estimatedDays <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("estimatedDays",
			fmt.Errorf("%d is not greater than 0", estimatedDays))
	}
	if ttl <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("quoteTTL",
			fmt.Errorf("%s is not greater than 0", ttl))
	}

	return &Quote{
		id:            id,
		orderID:       orderID,
		vendorID:      vendorID,
		price:         price,
		estimatedDays: estimatedDays,
		status:        Valid,
		issuedAt:      issuedAt,
		validUntil:    issuedAt.Add(ttl),
		isConstructed: true,
	}, nil
}

// RestoreQuote reconstructs a quote from persistence without re-deriving the
// validity window.
func RestoreQuote(
	id, orderID, vendorID kernel.UUID,
	price float64,
	estimatedDays int,
	status Status,
	issuedAt, validUntil time.Time,
) (*Quote, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), vendorID.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	return &Quote{
		id:            id,
		orderID:       orderID,
		vendorID:      vendorID,
		price:         price,
		estimatedDays: estimatedDays,
		status:        status,
		issuedAt:      issuedAt,
		validUntil:    validUntil,
		isConstructed: true,
	}, nil
}

// Validate ensures the Quote instance was properly constructed.
func (q *Quote) Validate() error {
	if q == nil || !q.isConstructed {
		return ErrQuoteIsNotConstructed
	}
	return nil
}

// ID returns the quote's unique identifier.
func (q *Quote) ID() kernel.UUID {
	return q.id
}

// OrderID returns the identifier of the order the quote was issued for.
func (q *Quote) OrderID() kernel.UUID {
	return q.orderID
}

// VendorID returns the identifier of the vendor that priced the quote.
func (q *Quote) VendorID() kernel.UUID {
	return q.vendorID
}

// Price returns the quoted shipping price.
func (q *Quote) Price() float64 {
	return q.price
}

// EstimatedDays returns the vendor's delivery time estimate in days.
func (q *Quote) EstimatedDays() int {
	return q.estimatedDays
}

// Status returns the housekeeping validity status.
func (q *Quote) Status() Status {
	return q.status
}

// IssuedAt returns the issuance time of the quote.
func (q *Quote) IssuedAt() time.Time {
	return q.issuedAt
}

// ValidUntil returns the end of the validity window.
func (q *Quote) ValidUntil() time.Time {
	return q.validUntil
}

// IsValidAt is the authoritative validity check: the quote must not have been
// expired by a sweep and now must fall inside the validity window. Binding
// relies on this check, so a stale quote is rejected even if no sweep has
// flipped its status yet.
func (q *Quote) IsValidAt(now time.Time) bool {
	return q.status == Valid && now.Before(q.validUntil)
}

// Expire flips the status from Valid to Expired.
// Returns true if the call performed the flip, false if the quote was already
// expired. The transition is never reversed.
func (q *Quote) Expire() bool {
	if q.status != Valid {
		return false
	}
	q.status = Expired
	return true
}

// BelongsTo reports whether the quote was issued for the given order.
func (q *Quote) BelongsTo(orderID kernel.UUID) bool {
	return q.orderID.IsEqual(orderID)
}
