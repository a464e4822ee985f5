package queries

import (
	"context"
	"log/slog"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/quote"
	"shipping/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQuotesQueryHandler retrieves the valid quote listing for an order.
//
// The redis cache fronts the database read-through: a hit serves the listing
// written at quotation time, a miss (or an unavailable cache) falls back to
// SQL and repopulates the cache best-effort. Expired quotes are filtered on
// the way out in both paths, so a listing cached just before its quotes aged
// out never shows stale entries.
type GetOrderQuotesQueryHandler struct {
	db     *gorm.DB
	cache  ports.QuoteCache
	logger *slog.Logger
}

// NewGetOrderQuotesQueryHandler creates a handler for quote listing queries.
func NewGetOrderQuotesQueryHandler(db *gorm.DB, cache ports.QuoteCache, logger *slog.Logger) GetOrderQuotesQueryHandler {
	return GetOrderQuotesQueryHandler{
		db:     db,
		cache:  cache,
		logger: logger.With("component", "get_order_quotes"),
	}
}

// Handle returns the order's currently valid quotes ranked by price,
// estimated days, then vendor ID.
func (h GetOrderQuotesQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuotesQuery,
) ([]GetOrderQuotesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()

	cached, hit, err := h.cache.Get(ctx, query.OrderID())
	if err != nil {
		h.logger.Warn("quote cache read failed, falling back to database",
			"orderId", query.OrderID(), "error", err)
	} else if hit {
		return toListing(cached, now), nil
	}

	quotes, err := h.loadFromDatabase(ctx, query.OrderID(), now)
	if err != nil {
		return nil, err
	}

	if len(quotes) > 0 {
		if cacheErr := h.cache.Put(ctx, query.OrderID(), quotes, quotes[0].ValidUntil()); cacheErr != nil {
			h.logger.Warn("failed to repopulate quote cache",
				"orderId", query.OrderID(), "error", cacheErr)
		}
	}

	return toListing(quotes, now), nil
}

func (h GetOrderQuotesQueryHandler) loadFromDatabase(
	ctx context.Context,
	orderID kernel.UUID,
	now time.Time,
) ([]*quote.Quote, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			vendor_id,
			price,
			estimated_days,
			issued_at,
			valid_until
		FROM quotes
		WHERE order_id = ?
		  AND status = ?
		  AND valid_until > ?
		ORDER BY price, estimated_days, vendor_id
	`, orderID.Bytes(), quote.Valid.String(), now).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	quotes := make([]*quote.Quote, 0)
	for rows.Next() {
		var (
			id, vendorID         uuid.UUID
			price                float64
			estimatedDays        int
			issuedAt, validUntil time.Time
		)

		if err = rows.Scan(&id, &vendorID, &price, &estimatedDays, &issuedAt, &validUntil); err != nil {
			return nil, err
		}

		quoteID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		quoteVendorID, idErr := kernel.UUIDFromBytes(vendorID[:])
		if idErr != nil {
			return nil, idErr
		}

		restored, restoreErr := quote.RestoreQuote(
			quoteID, orderID, quoteVendorID, price, estimatedDays,
			quote.Valid, issuedAt, validUntil)
		if restoreErr != nil {
			return nil, restoreErr
		}
		quotes = append(quotes, restored)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return quotes, nil
}

func toListing(quotes []*quote.Quote, now time.Time) []GetOrderQuotesQueryResponse {
	listing := make([]GetOrderQuotesQueryResponse, 0, len(quotes))
	for _, q := range quotes {
		if !q.IsValidAt(now) {
			continue
		}
		listing = append(listing, GetOrderQuotesQueryResponse{
			ID:            q.ID(),
			VendorID:      q.VendorID(),
			Price:         q.Price(),
			EstimatedDays: q.EstimatedDays(),
			ValidUntil:    q.ValidUntil(),
		})
	}
	return listing
}
