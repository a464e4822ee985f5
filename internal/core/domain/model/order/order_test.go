package order_test

import (
	"testing"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/order"
	"shipping/internal/core/domain/model/quote"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	w, err := kernel.NewWeight(4)
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"Ada Lovelace", w, time.Now())
	require.NoError(t, err)
	return o
}

func newQuoteFor(t *testing.T, o *order.Order, price float64, ttl time.Duration) *quote.Quote {
	t.Helper()
	q, err := quote.NewQuote(
		kernel.NewUUID(), o.ID(), kernel.NewUUID(), price, 3, time.Now(), ttl)
	require.NoError(t, err)
	return q
}

func TestNewOrder(t *testing.T) {
	validWeight, _ := kernel.NewWeight(4)

	t.Run("should create pending order with no bound quote", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.Validate())
		assert.Equal(t, order.Pending, o.Status())
		assert.Nil(t, o.BoundQuoteID())
		assert.Equal(t, "Ada Lovelace", o.RecipientName())
	})

	t.Run("should fail with invalid user ID", func(t *testing.T) {
		var nilID kernel.UUID

		_, err := order.NewOrder(kernel.NewUUID(), nilID, kernel.NewUUID(), "Ada", validWeight, time.Now())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "userId")
	})

	t.Run("should fail with empty recipient name", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "", validWeight, time.Now())

		require.ErrorIs(t, err, order.ErrRecipientNameIsRequired)
	})

	t.Run("should fail with unconstructed weight", func(t *testing.T) {
		var w kernel.Weight

		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "Ada", w, time.Now())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "totalWeight")
	})

	t.Run("nil order fails validation", func(t *testing.T) {
		var o *order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_BindQuote(t *testing.T) {
	now := time.Now()

	t.Run("should bind a valid quote exactly once", func(t *testing.T) {
		o := newTestOrder(t)
		first := newQuoteFor(t, o, 29, time.Hour)
		second := newQuoteFor(t, o, 25, time.Hour)

		require.NoError(t, o.BindQuote(first, now))
		assert.True(t, o.BoundQuoteID().IsEqual(first.ID()))
		assert.InDelta(t, 29.0, o.BoundPrice(), 1e-9)

		err := o.BindQuote(second, now)
		require.ErrorIs(t, err, order.ErrAlreadyBound)
		assert.True(t, o.BoundQuoteID().IsEqual(first.ID()), "failed bind must not change state")
	})

	t.Run("should reject a quote for another order", func(t *testing.T) {
		o := newTestOrder(t)
		other := newTestOrder(t)
		foreign := newQuoteFor(t, other, 29, time.Hour)

		err := o.BindQuote(foreign, now)

		require.ErrorIs(t, err, order.ErrQuoteInvalid)
		assert.Nil(t, o.BoundQuoteID())
	})

	t.Run("should reject a quote past its validity window even if unswept", func(t *testing.T) {
		o := newTestOrder(t)
		q := newQuoteFor(t, o, 29, time.Minute)

		err := o.BindQuote(q, now.Add(2*time.Minute))

		require.ErrorIs(t, err, order.ErrQuoteInvalid)
		assert.Equal(t, quote.Valid, q.Status(), "no sweep ran; window alone rejects the bind")
	})

	t.Run("should reject binding on a cancelled order", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Cancel())
		q := newQuoteFor(t, o, 29, time.Hour)

		err := o.BindQuote(q, now)

		require.ErrorIs(t, err, order.ErrIllegalTransition)
	})

	t.Run("should reject unconstructed quote", func(t *testing.T) {
		o := newTestOrder(t)
		var q *quote.Quote

		require.Error(t, o.BindQuote(q, now))
	})
}

func TestOrder_Advance(t *testing.T) {
	now := time.Now()

	t.Run("full lifecycle pending -> shipped -> delivered", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.BindQuote(newQuoteFor(t, o, 29, time.Hour), now))

		require.NoError(t, o.Advance(order.Shipped))
		assert.Equal(t, order.Shipped, o.Status())

		require.NoError(t, o.Advance(order.Delivered))
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("cannot ship without a bound quote", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.Advance(order.Shipped)

		require.ErrorIs(t, err, order.ErrIllegalTransition)
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("cannot skip from pending to delivered", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.Advance(order.Delivered)

		require.ErrorIs(t, err, order.ErrIllegalTransition)
	})

	t.Run("terminal states admit no transitions", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Cancel())

		for _, target := range []order.Status{order.Pending, order.Shipped, order.Delivered, order.Cancelled} {
			err := o.Advance(target)
			require.ErrorIs(t, err, order.ErrIllegalTransition, "cancelled -> %s", target)
		}
	})

	t.Run("rejects invalid target status", func(t *testing.T) {
		o := newTestOrder(t)

		require.Error(t, o.Advance(order.UnknownStatus))
	})
}

func TestOrder_Cancel(t *testing.T) {
	now := time.Now()

	t.Run("cancel from pending", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.Cancel())
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("cancel from shipped", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.BindQuote(newQuoteFor(t, o, 29, time.Hour), now))
		require.NoError(t, o.Advance(order.Shipped))

		require.NoError(t, o.Cancel())
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("cannot cancel a delivered order", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.BindQuote(newQuoteFor(t, o, 29, time.Hour), now))
		require.NoError(t, o.Advance(order.Shipped))
		require.NoError(t, o.Advance(order.Delivered))

		require.ErrorIs(t, o.Cancel(), order.ErrIllegalTransition)
	})
}

func TestRestoreOrder(t *testing.T) {
	w, _ := kernel.NewWeight(4)
	createdAt := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	t.Run("round-trips persisted state with bound quote", func(t *testing.T) {
		quoteID := kernel.NewUUID()

		o, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"Ada", w, order.Shipped, &quoteID, 29, createdAt)

		require.NoError(t, err)
		assert.Equal(t, order.Shipped, o.Status())
		assert.True(t, o.BoundQuoteID().IsEqual(quoteID))
		assert.InDelta(t, 29.0, o.BoundPrice(), 1e-9)
		assert.Equal(t, createdAt, o.CreatedAt())
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"Ada", w, order.UnknownStatus, nil, 0, createdAt)

		require.Error(t, err)
	})
}
