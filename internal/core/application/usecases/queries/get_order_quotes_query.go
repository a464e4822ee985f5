package queries

import (
	"errors"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var ErrGetOrderQuotesQueryIsNotConstructed = errors.New(
	"GetOrderQuotesQuery must be created via NewGetOrderQuotesQuery constructor",
)

// GetOrderQuotesQuery retrieves the currently valid quotes for one order,
// ranked the way the quote engine issued them.
type GetOrderQuotesQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuotesQuery creates a query for an order's valid quotes.
func NewGetOrderQuotesQuery(orderID kernel.UUID) (GetOrderQuotesQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuotesQuery{}, err
	}

	return GetOrderQuotesQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuotesQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQuotesQueryIsNotConstructed)
}

// OrderID returns the order whose quotes are requested.
func (q GetOrderQuotesQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderQuotesQueryResponse represents one valid quote in the listing.
type GetOrderQuotesQueryResponse struct {
	ID            kernel.UUID
	VendorID      kernel.UUID
	Price         float64
	EstimatedDays int
	ValidUntil    time.Time
}
