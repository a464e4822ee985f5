package commands

import (
	"context"
	"fmt"
	"log/slog"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/order"
	"shipping/internal/core/domain/model/quote"
	"shipping/internal/core/domain/services"
	"shipping/internal/core/ports"
)

// RequestQuotesCommandHandler runs the quote engine for an order and persists
// the resulting quotes.
//
// The ranked listing is additionally cached best-effort: a cache failure is
// logged and never fails the quotation.
type RequestQuotesCommandHandler struct {
	uowFactory OrderQuoteUoWFactory
	engine     *services.QuoteEngine
	catalog    *services.RateCatalog
	cache      ports.QuoteCache
	logger     *slog.Logger
}

// NewRequestQuotesCommandHandler creates a handler for quotation requests.
func NewRequestQuotesCommandHandler(
	uowFactory OrderQuoteUoWFactory,
	engine *services.QuoteEngine,
	catalog *services.RateCatalog,
	cache ports.QuoteCache,
	logger *slog.Logger,
) RequestQuotesCommandHandler {
	return RequestQuotesCommandHandler{
		uowFactory: uowFactory,
		engine:     engine,
		catalog:    catalog,
		cache:      cache,
		logger:     logger.With("component", "request_quotes"),
	}
}

// Handle collects quotes for a pending order and returns them ranked.
//
// Every catalog vendor is queried concurrently; vendors that fail or time out
// drop out individually and services.ErrNoQuotesAvailable surfaces only when
// none survive. Quotes are persisted before being returned, so a later bind
// can load them by ID.
func (h *RequestQuotesCommandHandler) Handle(ctx context.Context, cmd RequestQuotesCommand) ([]*quote.Quote, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	distance, err := kernel.NewDistance(cmd.DistanceKm())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	quotedOrder, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}
	if quotedOrder.Status() != order.Pending {
		return nil, fmt.Errorf("%w: cannot quote an order in status %s",
			order.ErrIllegalTransition, quotedOrder.Status())
	}

	quotes, err := h.engine.Quote(ctx, quotedOrder.ID(), quotedOrder.TotalWeight(),
		distance, h.catalog.VendorIDs())
	if err != nil {
		return nil, err
	}

	if err = uow.QuoteRepository().AddAll(ctx, quotes); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if cacheErr := h.cache.Put(ctx, quotedOrder.ID(), quotes, quotes[0].ValidUntil()); cacheErr != nil {
		h.logger.Warn("failed to cache quote listing",
			"orderId", quotedOrder.ID(), "error", cacheErr)
	}

	return quotes, nil
}
