package commands

import (
	"context"

	"shipping/internal/core/ports"
	"shipping/internal/pkg/keylock"
)

// CancelOrderCommandHandler handles order cancellation.
// Cancellation is permitted from Pending or Shipped; the aggregate rejects
// everything else.
type CancelOrderCommandHandler struct {
	locks      *keylock.KeyLock
	uowFactory OrderUoWFactory
	notifier   ports.OrderNotifier
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(
	locks *keylock.KeyLock,
	uowFactory OrderUoWFactory,
	notifier ports.OrderNotifier,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		locks:      locks,
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle cancels the order.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	cancelledOrder, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = cancelledOrder.Cancel(); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, cancelledOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	// Fire and forget; the adapter logs delivery failures.
	_ = h.notifier.NotifyStatusChanged(ctx, cancelledOrder)

	return nil
}
