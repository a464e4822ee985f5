package commands_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/order"
	"shipping/internal/core/domain/model/quote"
	"shipping/internal/core/domain/model/vendor"

	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newPendingOrder(t *testing.T) *order.Order {
	t.Helper()
	w, err := kernel.NewWeight(4)
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"Grace Hopper", w, time.Now())
	require.NoError(t, err)
	return o
}

func newShippedOrder(t *testing.T) *order.Order {
	t.Helper()
	o := newPendingOrder(t)
	q := newValidQuote(t, o.ID())
	require.NoError(t, o.BindQuote(q, time.Now()))
	require.NoError(t, o.Advance(order.Shipped))
	return o
}

func newValidQuote(t *testing.T, orderID kernel.UUID) *quote.Quote {
	t.Helper()
	q, err := quote.NewQuote(
		kernel.NewUUID(), orderID, kernel.NewUUID(), 29, 3, time.Now(), time.Hour)
	require.NoError(t, err)
	return q
}

func newStandardVendor(t *testing.T, base, per5 float64) *vendor.Vendor {
	t.Helper()
	low, err := vendor.NewRateTier(0, 5, base, per5)
	require.NoError(t, err)
	top, err := vendor.NewOpenEndedRateTier(5, base*2, per5*2)
	require.NoError(t, err)

	v, err := vendor.NewVendor(kernel.NewUUID(), "standard-vendor", vendor.Standard,
		[]vendor.RateTier{low, top})
	require.NoError(t, err)
	return v
}
