package ports

import (
	"context"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/quote"
)

// QuoteRepository defines the persistence contract for quote aggregates.
// Quotes are append-mostly: rows are added by quotation requests and only
// ever change status from valid to expired.
type QuoteRepository interface {
	// Add persists a new quote.
	Add(ctx context.Context, aggregate *quote.Quote) error

	// AddAll persists a batch of quotes issued by one quotation request.
	AddAll(ctx context.Context, aggregates []*quote.Quote) error

	// Get retrieves a quote by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*quote.Quote, error)

	// GetValidByOrder retrieves the quotes for an order that are still marked
	// valid and whose window has not closed at the given instant, ranked by
	// price, estimated days, then vendor ID.
	GetValidByOrder(ctx context.Context, orderID kernel.UUID, now time.Time) ([]*quote.Quote, error)

	// ExpireAllPast flips every valid quote whose window closed at or before
	// the given instant to expired and returns how many rows changed. The
	// update is guarded on the current status so a quote consumed by a
	// concurrent sweep is never counted twice.
	ExpireAllPast(ctx context.Context, now time.Time) (int64, error)
}
