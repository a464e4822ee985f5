package ports

import (
	"context"

	"shipping/internal/core/domain/model/order"
)

// OrderNotifier publishes order lifecycle changes to interested consumers.
// Publication is fire-and-forget from the caller's perspective: a delivery
// failure is logged by the adapter and never fails the business operation.
type OrderNotifier interface {
	// NotifyStatusChanged publishes that the order reached its current status.
	NotifyStatusChanged(ctx context.Context, aggregate *order.Order) error
}
