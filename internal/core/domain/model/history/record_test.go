package history_test

import (
	"testing"
	"time"

	"shipping/internal/core/domain/model/history"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecord(t *testing.T) {
	now := time.Now()

	t.Run("should create an in-transit record without delivery date", func(t *testing.T) {
		r, err := history.NewRecord(
			kernel.NewUUID(), kernel.NewUUID(), 29, history.Prepaid,
			history.InTransit, nil, "TRK-001", now)

		require.NoError(t, err)
		require.NoError(t, r.Validate())
		assert.Equal(t, history.InTransit, r.Status())
		assert.Nil(t, r.DeliveryDate())
		assert.Equal(t, "TRK-001", r.TrackingID())
		assert.InDelta(t, 29.0, r.ShippingPrice(), 1e-9)
	})

	t.Run("should create a delivered record with delivery date", func(t *testing.T) {
		delivered := now.Add(-time.Hour)

		r, err := history.NewRecord(
			kernel.NewUUID(), kernel.NewUUID(), 29, history.CashOnDelivery,
			history.DeliveredStatus, &delivered, "TRK-002", now)

		require.NoError(t, err)
		require.NotNil(t, r.DeliveryDate())
		assert.True(t, r.DeliveryDate().Equal(delivered))
	})

	t.Run("should fail when delivered without delivery date", func(t *testing.T) {
		_, err := history.NewRecord(
			kernel.NewUUID(), kernel.NewUUID(), 29, history.Prepaid,
			history.DeliveredStatus, nil, "TRK-003", now)

		require.ErrorIs(t, err, history.ErrDeliveryDateIsRequired)
	})

	t.Run("should fail with negative shipping price", func(t *testing.T) {
		_, err := history.NewRecord(
			kernel.NewUUID(), kernel.NewUUID(), -1, history.Prepaid,
			history.InTransit, nil, "TRK-004", now)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "shippingPrice")
	})

	t.Run("should fail with empty tracking ID", func(t *testing.T) {
		_, err := history.NewRecord(
			kernel.NewUUID(), kernel.NewUUID(), 29, history.Prepaid,
			history.InTransit, nil, "", now)

		require.ErrorIs(t, err, history.ErrTrackingIDIsRequired)
	})

	t.Run("should fail with invalid order ID", func(t *testing.T) {
		var nilID kernel.UUID

		_, err := history.NewRecord(
			kernel.NewUUID(), nilID, 29, history.Prepaid,
			history.InTransit, nil, "TRK-005", now)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "orderId")
	})

	t.Run("should fail with invalid payment mode and delivery status", func(t *testing.T) {
		_, err := history.NewRecord(
			kernel.NewUUID(), kernel.NewUUID(), 29, history.UnknownPaymentMode,
			history.UnknownDeliveryStatus, nil, "TRK-006", now)

		require.Error(t, err)
	})

	t.Run("nil record fails validation", func(t *testing.T) {
		var r *history.Record
		require.ErrorIs(t, r.Validate(), history.ErrRecordIsNotConstructed)
	})
}

func TestRecord_DeliveryDateIsCopied(t *testing.T) {
	delivered := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	r, err := history.NewRecord(
		kernel.NewUUID(), kernel.NewUUID(), 29, history.Prepaid,
		history.DeliveredStatus, &delivered, "TRK-010", time.Now())
	require.NoError(t, err)

	got := r.DeliveryDate()
	*got = got.Add(24 * time.Hour)

	assert.True(t, r.DeliveryDate().Equal(delivered), "record must stay immutable")
}

func TestDeliveryStatus_InducedOrderStatus(t *testing.T) {
	tests := []struct {
		status  history.DeliveryStatus
		induced order.Status
		ok      bool
	}{
		{history.InTransit, order.Shipped, true},
		{history.DeliveredStatus, order.Delivered, true},
		{history.Failed, order.UnknownStatus, false},
		{history.UnknownDeliveryStatus, order.UnknownStatus, false},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			induced, ok := tt.status.InducedOrderStatus()
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.induced, induced)
		})
	}
}

func TestPaymentModeFromString(t *testing.T) {
	m, err := history.PaymentModeFromString("cod")
	require.NoError(t, err)
	assert.Equal(t, history.CashOnDelivery, m)

	m, err = history.PaymentModeFromString("prepaid")
	require.NoError(t, err)
	assert.Equal(t, history.Prepaid, m)

	_, err = history.PaymentModeFromString("barter")
	require.Error(t, err)
}

func TestDeliveryStatusFromString(t *testing.T) {
	st, err := history.DeliveryStatusFromString("in_transit")
	require.NoError(t, err)
	assert.Equal(t, history.InTransit, st)

	_, err = history.DeliveryStatusFromString("teleported")
	require.Error(t, err)
}
