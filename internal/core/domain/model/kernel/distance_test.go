package kernel_test

import (
	"testing"

	"shipping/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDistance(t *testing.T) {
	t.Run("should create valid distance", func(t *testing.T) {
		d, err := kernel.NewDistance(12)

		require.NoError(t, err)
		require.NoError(t, d.Validate())
		assert.InDelta(t, 12.0, d.Km(), 1e-9)
	})

	t.Run("zero distance is valid", func(t *testing.T) {
		d, err := kernel.NewDistance(0)

		require.NoError(t, err)
		assert.Equal(t, 0, d.Increments5Km())
	})

	t.Run("should fail with negative distance", func(t *testing.T) {
		_, err := kernel.NewDistance(-1)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "distanceKm")
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var d kernel.Distance

		require.Error(t, d.Validate())
	})
}

func TestDistance_Increments5Km(t *testing.T) {
	testCases := []struct {
		km       float64
		expected int
	}{
		{0, 0},
		{0.1, 1},
		{5, 1},
		{5.01, 2},
		{12, 3},
		{25, 5},
	}

	for _, tc := range testCases {
		d, err := kernel.NewDistance(tc.km)
		require.NoError(t, err)
		assert.Equal(t, tc.expected, d.Increments5Km(), "km=%v", tc.km)
	}
}
