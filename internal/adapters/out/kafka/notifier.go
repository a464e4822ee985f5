// Package kafka publishes order lifecycle changes to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"shipping/internal/core/domain/model/order"

	skafka "github.com/segmentio/kafka-go"
)

// Writer defines the subset of the segmentio kafka.Writer we need.
// This makes the notifier testable without a broker.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...skafka.Message) error
	Close() error
}

// OrderChangedEvent is the wire form of an order status change.
type OrderChangedEvent struct {
	OrderID      string   `json:"orderId"`
	UserID       string   `json:"userId"`
	Status       string   `json:"status"`
	BoundQuoteID *string  `json:"boundQuoteId,omitempty"`
	BoundPrice   *float64 `json:"boundPrice,omitempty"`
	OccurredAt   string   `json:"occurredAt"`
}

// OrderNotifier publishes OrderChangedEvent messages keyed by order ID, so
// all changes of one order land in the same partition in sequence.
type OrderNotifier struct {
	writer Writer
	logger *slog.Logger
}

// NewOrderNotifier creates a notifier that writes to the given broker/topic.
func NewOrderNotifier(brokerURL, topic string, logger *slog.Logger) *OrderNotifier {
	w := &skafka.Writer{
		Addr:     skafka.TCP(brokerURL),
		Topic:    topic,
		Balancer: &skafka.LeastBytes{},
	}
	return newOrderNotifier(w, logger)
}

// NewOrderNotifierWithWriter allows injecting a test writer.
func NewOrderNotifierWithWriter(w Writer, logger *slog.Logger) *OrderNotifier {
	return newOrderNotifier(w, logger)
}

func newOrderNotifier(w Writer, logger *slog.Logger) *OrderNotifier {
	return &OrderNotifier{
		writer: w,
		logger: logger.With("component", "order_notifier"),
	}
}

// NotifyStatusChanged publishes the order's current status. A broker failure
// is logged and returned; callers treat publication as fire-and-forget.
func (n *OrderNotifier) NotifyStatusChanged(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	event := OrderChangedEvent{
		OrderID:    aggregate.ID().String(),
		UserID:     aggregate.UserID().String(),
		Status:     aggregate.Status().String(),
		OccurredAt: time.Now().UTC().Format(time.RFC3339Nano),
	}
	if boundQuoteID := aggregate.BoundQuoteID(); boundQuoteID != nil {
		id := boundQuoteID.String()
		price := aggregate.BoundPrice()
		event.BoundQuoteID = &id
		event.BoundPrice = &price
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode order changed event: %w", err)
	}

	msg := skafka.Message{
		Key:   []byte(event.OrderID),
		Value: payload,
	}
	if err := n.writer.WriteMessages(ctx, msg); err != nil {
		n.logger.ErrorContext(ctx, "Failed to publish order changed event",
			"orderId", event.OrderID, "status", event.Status, "error", err)
		return fmt.Errorf("failed to publish order changed event: %w", err)
	}

	return nil
}

// Close closes the underlying writer.
func (n *OrderNotifier) Close() error {
	return n.writer.Close()
}
