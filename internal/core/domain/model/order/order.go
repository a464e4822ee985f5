package order

import (
	"errors"
	"fmt"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/quote"
	"shipping/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrRecipientNameIsRequired is returned when an order is created without
	// a recipient name.
	ErrRecipientNameIsRequired = errors.New("recipient name is required")

	// ErrIllegalTransition is returned for any lifecycle edge outside the
	// allowed set, including transitions out of a terminal state and
	// shipping without a bound quote.
	ErrIllegalTransition = errors.New("illegal order status transition")

	// ErrAlreadyBound is returned when a second quote bind is attempted on an
	// order that already has one.
	ErrAlreadyBound = errors.New("order already has a bound quote")

	// ErrQuoteInvalid is returned when the quote offered for binding is
	// expired, past its validity window, or belongs to a different order.
	ErrQuoteInvalid = errors.New("quote is not valid for this order")
)

// Order represents a shipment order in the system. It is the aggregate root
// that manages the order lifecycle from creation through shipping to delivery
// or cancellation.
//
// Order follows these invariants:
//   - Must have valid order, user, and warehouse identifiers
//   - Must have a non-empty recipient name and a positive total weight
//   - At most one quote is ever bound, and binding happens exactly once
//   - Status transitions follow the lifecycle edge set in Status
//   - Shipped is unreachable without a bound quote
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods. Read-then-write operations on one
// order must be serialized by the caller (per-order lock); the aggregate
// itself is not safe for unsynchronized concurrent mutation.
type Order struct {
	id            kernel.UUID
	userID        kernel.UUID
	warehouseID   kernel.UUID
	recipientName string
	totalWeight   kernel.Weight
	status        Status
	boundQuoteID  *kernel.UUID
	boundPrice    float64
	createdAt     time.Time

	isConstructed bool
}

// NewOrder creates a new Order in Pending status with no bound quote.
//
// Parameters:
//   - id: unique identifier for the order
//   - userID: the owning user (already authorized by the caller's boundary)
//   - warehouseID: opaque reference to the dispatching warehouse
//   - recipientName: who receives the shipment
//   - totalWeight: validated positive shipment weight
//   - createdAt: creation instant, used later for delivery-latency analytics
//
// Returns a validation error if any parameter is invalid; weight validation
// rejects non-positive weights at the kernel level.
func NewOrder(
	id, userID, warehouseID kernel.UUID,
	recipientName string,
	totalWeight kernel.Weight,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setIDs(id, userID, warehouseID),
		o.setRecipientName(recipientName),
		o.setTotalWeight(totalWeight),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence, including its current
// status and any bound quote. Used only by repository adapters.
func RestoreOrder(
	id, userID, warehouseID kernel.UUID,
	recipientName string,
	totalWeight kernel.Weight,
	status Status,
	boundQuoteID *kernel.UUID,
	boundPrice float64,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setIDs(id, userID, warehouseID),
		o.setRecipientName(recipientName),
		o.setTotalWeight(totalWeight),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if boundQuoteID != nil {
		if err := boundQuoteID.Validate(); err != nil {
			return nil, err
		}
		quoteID := *boundQuoteID
		o.boundQuoteID = &quoteID
		o.boundPrice = boundPrice
	}
	o.status = status

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
// Call when reconstructing orders from persistence to ensure data integrity.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// UserID returns the identifier of the user owning the order.
func (o *Order) UserID() kernel.UUID {
	return o.userID
}

// WarehouseID returns the dispatching warehouse reference.
func (o *Order) WarehouseID() kernel.UUID {
	return o.warehouseID
}

// RecipientName returns the shipment recipient's name.
func (o *Order) RecipientName() string {
	return o.recipientName
}

// TotalWeight returns the shipment weight.
func (o *Order) TotalWeight() kernel.Weight {
	return o.totalWeight
}

// Status returns the current lifecycle status of the order.
func (o *Order) Status() Status {
	return o.status
}

// BoundQuoteID returns the identifier of the bound quote, or nil if no quote
// has been bound yet.
func (o *Order) BoundQuoteID() *kernel.UUID {
	return o.boundQuoteID
}

// BoundPrice returns the price fixed by the bound quote.
// Meaningless while BoundQuoteID is nil.
func (o *Order) BoundPrice() float64 {
	return o.boundPrice
}

// CreatedAt returns the creation instant of the order.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// BindQuote permanently associates one valid quote with the order, fixing its
// charged price.
//
// Business rules enforced:
//   - The order must still be Pending (ErrIllegalTransition otherwise)
//   - No quote may already be bound (ErrAlreadyBound)
//   - The quote must belong to this order and be valid at now (ErrQuoteInvalid);
//     validity is checked against the quote's window, so an expired-but-unswept
//     quote is rejected here regardless of its stored status
//
// Binding is exactly-once: a successful bind makes every later attempt fail
// with ErrAlreadyBound.
func (o *Order) BindQuote(q *quote.Quote, now time.Time) error {
	if err := q.Validate(); err != nil {
		return err
	}

	if o.boundQuoteID != nil {
		return ErrAlreadyBound
	}
	if o.status != Pending {
		return fmt.Errorf("%w: cannot bind a quote in status %s", ErrIllegalTransition, o.status)
	}
	if !q.BelongsTo(o.id) {
		return fmt.Errorf("%w: quote %s belongs to another order", ErrQuoteInvalid, q.ID())
	}
	if !q.IsValidAt(now) {
		return fmt.Errorf("%w: quote %s is expired", ErrQuoteInvalid, q.ID())
	}

	quoteID := q.ID()
	o.boundQuoteID = &quoteID
	o.boundPrice = q.Price()
	return nil
}

// Advance moves the order along one lifecycle edge.
//
// Invalid edges (skipping Shipped, leaving a terminal state) fail with
// ErrIllegalTransition. Advancing to Shipped additionally requires a bound
// quote, since a shipment without a fixed price violates the order invariant.
func (o *Order) Advance(target Status) error {
	if target == Shipped && o.boundQuoteID == nil {
		return fmt.Errorf("%w: cannot ship without a bound quote", ErrIllegalTransition)
	}

	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel abandons the order. Shorthand for Advance(Cancelled); permitted from
// Pending or Shipped only.
func (o *Order) Cancel() error {
	return o.Advance(Cancelled)
}

func (o *Order) setIDs(id, userID, warehouseID kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if err := userID.Validate(); err != nil {
		return fmt.Errorf("userId: %w", err)
	}
	if err := warehouseID.Validate(); err != nil {
		return fmt.Errorf("warehouseId: %w", err)
	}
	o.id = id
	o.userID = userID
	o.warehouseID = warehouseID
	return nil
}

func (o *Order) setRecipientName(name string) error {
	if name == "" {
		return ErrRecipientNameIsRequired
	}
	o.recipientName = name
	return nil
}

func (o *Order) setTotalWeight(w kernel.Weight) error {
	if err := w.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("totalWeight", err)
	}
	o.totalWeight = w
	return nil
}
