package commands

import (
	"context"
	"log/slog"
	"time"

	"shipping/internal/core/ports"
	"shipping/internal/pkg/keylock"
)

// BindQuoteCommandHandler handles the exactly-once binding of a quote to its
// order.
//
// All read-then-write operations on one order serialize on a per-order lock,
// so two concurrent binds see each other: the first wins and the second fails
// with order.ErrAlreadyBound. Validity is checked against the quote's window
// at bind time, which makes the periodic sweep advisory rather than
// load-bearing.
type BindQuoteCommandHandler struct {
	locks      *keylock.KeyLock
	uowFactory OrderQuoteUoWFactory
	cache      ports.QuoteCache
	logger     *slog.Logger
}

// NewBindQuoteCommandHandler creates a handler for quote binding operations.
func NewBindQuoteCommandHandler(
	locks *keylock.KeyLock,
	uowFactory OrderQuoteUoWFactory,
	cache ports.QuoteCache,
	logger *slog.Logger,
) BindQuoteCommandHandler {
	return BindQuoteCommandHandler{
		locks:      locks,
		uowFactory: uowFactory,
		cache:      cache,
		logger:     logger.With("component", "bind_quote"),
	}
}

// Handle binds the quote and returns the price fixed for the order.
func (h *BindQuoteCommandHandler) Handle(ctx context.Context, cmd BindQuoteCommand) (float64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	unlock := h.locks.Lock(cmd.OrderID().String())
	defer unlock()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	boundOrder, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return 0, err
	}

	boundQuote, err := uow.QuoteRepository().Get(ctx, cmd.QuoteID())
	if err != nil {
		return 0, err
	}

	if err = boundOrder.BindQuote(boundQuote, time.Now()); err != nil {
		return 0, err
	}

	if err = uow.OrderRepository().Update(ctx, boundOrder); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	if cacheErr := h.cache.Invalidate(ctx, boundOrder.ID()); cacheErr != nil {
		h.logger.Warn("failed to invalidate quote listing",
			"orderId", boundOrder.ID(), "error", cacheErr)
	}

	return boundOrder.BoundPrice(), nil
}
