package commands

import (
	"context"

	"shipping/internal/core/ports"
	"shipping/internal/pkg/keylock"
)

// AdvanceOrderCommandHandler handles explicit lifecycle transitions.
// The aggregate enforces the edge set; this handler adds per-order
// serialization, persistence, and the post-commit notification.
type AdvanceOrderCommandHandler struct {
	locks      *keylock.KeyLock
	uowFactory OrderUoWFactory
	notifier   ports.OrderNotifier
}

// NewAdvanceOrderCommandHandler creates a handler for order transitions.
func NewAdvanceOrderCommandHandler(
	locks *keylock.KeyLock,
	uowFactory OrderUoWFactory,
	notifier ports.OrderNotifier,
) AdvanceOrderCommandHandler {
	return AdvanceOrderCommandHandler{
		locks:      locks,
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle advances the order to the command's target status.
func (h *AdvanceOrderCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	unlock := h.locks.Lock(cmd.OrderID().String())
	defer unlock()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	advancedOrder, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = advancedOrder.Advance(cmd.Target()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, advancedOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	// Fire and forget; the adapter logs delivery failures.
	_ = h.notifier.NotifyStatusChanged(ctx, advancedOrder)

	return nil
}
