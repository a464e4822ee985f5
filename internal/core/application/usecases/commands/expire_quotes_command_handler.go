package commands

import (
	"context"
	"time"
)

// ExpireQuotesCommandHandler runs the quote expiry sweep.
//
// The sweep flips valid quotes whose window has closed to expired in one
// guarded update, so a quote the sweep and a concurrent bind race over is
// consumed exactly once. The sweep is a bookkeeping pass: bind-time
// validation rejects stale quotes regardless of when the sweep last ran.
type ExpireQuotesCommandHandler struct {
	uowFactory QuoteUoWFactory
}

// NewExpireQuotesCommandHandler creates a handler for the expiry sweep.
func NewExpireQuotesCommandHandler(uowFactory QuoteUoWFactory) ExpireQuotesCommandHandler {
	return ExpireQuotesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle expires every overdue quote and returns how many were flipped.
func (h *ExpireQuotesCommandHandler) Handle(ctx context.Context, cmd ExpireQuotesCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	expired, err := uow.QuoteRepository().ExpireAllPast(ctx, time.Now())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return expired, nil
}
