package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/order"
	"shipping/internal/core/domain/model/quote"

	skafka "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingWriter is a test writer that records messages written.
type recordingWriter struct {
	msgs []skafka.Message
	err  error
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...skafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *recordingWriter) Close() error { return nil }

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	weight, err := kernel.NewWeight(4)
	require.NoError(t, err)
	testOrder, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"Test Recipient", weight, time.Now())
	require.NoError(t, err)
	return testOrder
}

func TestNotifyStatusChanged_PublishesKeyedEvent(t *testing.T) {
	fw := &recordingWriter{}
	notifier := NewOrderNotifierWithWriter(fw, discardLogger())
	testOrder := newTestOrder(t)

	err := notifier.NotifyStatusChanged(t.Context(), testOrder)

	require.NoError(t, err)
	require.Len(t, fw.msgs, 1)
	assert.Equal(t, testOrder.ID().String(), string(fw.msgs[0].Key))

	var event OrderChangedEvent
	require.NoError(t, json.Unmarshal(fw.msgs[0].Value, &event))
	assert.Equal(t, testOrder.ID().String(), event.OrderID)
	assert.Equal(t, testOrder.UserID().String(), event.UserID)
	assert.Equal(t, "pending", event.Status)
	assert.Nil(t, event.BoundQuoteID)
	assert.Nil(t, event.BoundPrice)
}

func TestNotifyStatusChanged_BoundOrderCarriesQuoteDetails(t *testing.T) {
	fw := &recordingWriter{}
	notifier := NewOrderNotifierWithWriter(fw, discardLogger())
	testOrder := newTestOrder(t)
	boundQuote, err := quote.NewQuote(
		kernel.NewUUID(), testOrder.ID(), kernel.NewUUID(), 29, 3, time.Now(), time.Hour)
	require.NoError(t, err)
	require.NoError(t, testOrder.BindQuote(boundQuote, time.Now()))

	err = notifier.NotifyStatusChanged(t.Context(), testOrder)

	require.NoError(t, err)
	require.Len(t, fw.msgs, 1)
	var event OrderChangedEvent
	require.NoError(t, json.Unmarshal(fw.msgs[0].Value, &event))
	assert.Equal(t, "pending", event.Status)
	require.NotNil(t, event.BoundQuoteID)
	assert.Equal(t, boundQuote.ID().String(), *event.BoundQuoteID)
	require.NotNil(t, event.BoundPrice)
	assert.InDelta(t, 29.0, *event.BoundPrice, 1e-9)
}

func TestNotifyStatusChanged_WriterFailureIsReturned(t *testing.T) {
	fw := &recordingWriter{err: errors.New("broker unavailable")}
	notifier := NewOrderNotifierWithWriter(fw, discardLogger())

	err := notifier.NotifyStatusChanged(t.Context(), newTestOrder(t))

	assert.ErrorContains(t, err, "broker unavailable")
}

func TestNotifyStatusChanged_UnconstructedOrderRejected(t *testing.T) {
	fw := &recordingWriter{}
	notifier := NewOrderNotifierWithWriter(fw, discardLogger())

	err := notifier.NotifyStatusChanged(t.Context(), &order.Order{})

	assert.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	assert.Empty(t, fw.msgs)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
