package ports

import (
	"context"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/quote"
)

// QuoteCache holds the ranked quote listing of an order for fast reads.
// The cache is best-effort: a miss or an unavailable backend falls back to
// the repository, and entries age out with the quote validity window.
type QuoteCache interface {
	// Put stores the ranked listing for an order until the given instant.
	Put(ctx context.Context, orderID kernel.UUID, quotes []*quote.Quote, validUntil time.Time) error

	// Get retrieves the cached listing. The second return is false on a miss.
	Get(ctx context.Context, orderID kernel.UUID) ([]*quote.Quote, bool, error)

	// Invalidate drops the listing for an order, used after a bind or sweep
	// makes the cached ranking stale.
	Invalidate(ctx context.Context, orderID kernel.UUID) error
}
