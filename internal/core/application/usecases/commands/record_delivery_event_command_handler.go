package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"shipping/internal/core/domain/model/history"
	"shipping/internal/core/domain/model/order"
	"shipping/internal/core/ports"
	"shipping/internal/pkg/keylock"
)

// RecordDeliveryEventCommandHandler appends a carrier event to the delivery
// history and reconciles the order lifecycle with it.
//
// History is the external truth and is always appended. The induced order
// transition is advisory: events arrive out of order and after terminal
// states, so an illegal induced transition is logged and swallowed rather
// than failing the recording. An in-transit event for an already shipped
// order is the common idempotent case.
type RecordDeliveryEventCommandHandler struct {
	locks      *keylock.KeyLock
	uowFactory HistoryUoWFactory
	notifier   ports.OrderNotifier
	logger     *slog.Logger
}

// NewRecordDeliveryEventCommandHandler creates a handler for carrier events.
func NewRecordDeliveryEventCommandHandler(
	locks *keylock.KeyLock,
	uowFactory HistoryUoWFactory,
	notifier ports.OrderNotifier,
	logger *slog.Logger,
) RecordDeliveryEventCommandHandler {
	return RecordDeliveryEventCommandHandler{
		locks:      locks,
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "record_delivery_event"),
	}
}

// Handle appends the history record and applies the induced order transition
// when there is one and it is legal.
func (h *RecordDeliveryEventCommandHandler) Handle(ctx context.Context, cmd RecordDeliveryEventCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	record, err := history.NewRecord(
		cmd.RecordID(), cmd.OrderID(), cmd.ShippingPrice(),
		cmd.PaymentMode(), cmd.Status(), cmd.DeliveryDate(),
		cmd.TrackingID(), time.Now())
	if err != nil {
		return err
	}

	unlock := h.locks.Lock(cmd.OrderID().String())
	defer unlock()

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	trackedOrder, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = uow.HistoryRepository().Add(ctx, record); err != nil {
		return err
	}

	advanced, err := h.reconcile(trackedOrder, cmd.Status())
	if err != nil {
		return err
	}
	if advanced {
		if err = uow.OrderRepository().Update(ctx, trackedOrder); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if advanced {
		// Fire and forget; the adapter logs delivery failures.
		_ = h.notifier.NotifyStatusChanged(ctx, trackedOrder)
	}

	return nil
}

// reconcile applies the order transition induced by the delivery status and
// reports whether the order changed.
func (h *RecordDeliveryEventCommandHandler) reconcile(
	trackedOrder *order.Order,
	status history.DeliveryStatus,
) (bool, error) {
	induced, ok := status.InducedOrderStatus()
	if !ok {
		return false, nil
	}
	if trackedOrder.Status() == induced {
		// Repeated carrier pings for the current state are expected.
		return false, nil
	}

	err := trackedOrder.Advance(induced)
	if errors.Is(err, order.ErrIllegalTransition) {
		h.logger.Info("ignoring informational delivery event",
			"orderId", trackedOrder.ID(),
			"orderStatus", trackedOrder.Status().String(),
			"deliveryStatus", status.String())
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}
