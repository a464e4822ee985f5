package order_test

import (
	"testing"

	"shipping/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	for _, s := range []order.Status{order.Pending, order.Shipped, order.Delivered, order.Cancelled} {
		require.NoError(t, s.Validate(), s.String())
	}

	require.Error(t, order.UnknownStatus.Validate())
	require.Error(t, order.Status(99).Validate())
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "pending", order.Pending.String())
	assert.Equal(t, "shipped", order.Shipped.String())
	assert.Equal(t, "delivered", order.Delivered.String())
	assert.Equal(t, "cancelled", order.Cancelled.String())
	assert.Equal(t, "unknown", order.Status(99).String())
}

func TestStatus_TransitionTo(t *testing.T) {
	t.Run("allowed edges", func(t *testing.T) {
		edges := []struct{ from, to order.Status }{
			{order.Pending, order.Shipped},
			{order.Pending, order.Cancelled},
			{order.Shipped, order.Delivered},
			{order.Shipped, order.Cancelled},
		}
		for _, e := range edges {
			got, err := e.from.TransitionTo(e.to)
			require.NoError(t, err, "%s -> %s", e.from, e.to)
			assert.Equal(t, e.to, got)
		}
	})

	t.Run("forbidden edges", func(t *testing.T) {
		edges := []struct{ from, to order.Status }{
			{order.Pending, order.Delivered},
			{order.Pending, order.Pending},
			{order.Shipped, order.Pending},
			{order.Delivered, order.Shipped},
			{order.Delivered, order.Cancelled},
			{order.Cancelled, order.Pending},
			{order.Cancelled, order.Delivered},
		}
		for _, e := range edges {
			_, err := e.from.TransitionTo(e.to)
			require.ErrorIs(t, err, order.ErrIllegalTransition, "%s -> %s", e.from, e.to)
		}
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, order.Pending.IsTerminal())
	assert.False(t, order.Shipped.IsTerminal())
	assert.True(t, order.Delivered.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
}

func TestStatusFromString(t *testing.T) {
	st, err := order.StatusFromString("pending")
	require.NoError(t, err)
	assert.Equal(t, order.Pending, st)

	_, err = order.StatusFromString("lost")
	require.Error(t, err)
}
