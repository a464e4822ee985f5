package services_test

import (
	"context"
	"sync"
	"testing"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/vendor"
	"shipping/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustWeight(t *testing.T, kg float64) kernel.Weight {
	t.Helper()
	w, err := kernel.NewWeight(kg)
	require.NoError(t, err)
	return w
}

func mustDistance(t *testing.T, km float64) kernel.Distance {
	t.Helper()
	d, err := kernel.NewDistance(km)
	require.NoError(t, err)
	return d
}

func newCatalogVendor(t *testing.T, id kernel.UUID, base, per5 float64) *vendor.Vendor {
	t.Helper()
	low, err := vendor.NewRateTier(0, 5, base, per5)
	require.NoError(t, err)
	top, err := vendor.NewOpenEndedRateTier(5, base*2, per5*2)
	require.NoError(t, err)

	v, err := vendor.NewVendor(id, "vendor-"+id.String()[:8], vendor.Standard,
		[]vendor.RateTier{low, top})
	require.NoError(t, err)
	return v
}

func TestRateCatalog_Replace(t *testing.T) {
	t.Run("empty catalog resolves nothing", func(t *testing.T) {
		catalog := services.NewRateCatalog()

		_, err := catalog.Price(kernel.NewUUID(), mustWeight(t, 4), mustDistance(t, 12))

		require.ErrorIs(t, err, services.ErrVendorNotFound)
		assert.Zero(t, catalog.Len())
	})

	t.Run("replace swaps the whole vendor set", func(t *testing.T) {
		catalog := services.NewRateCatalog()
		oldID, newID := kernel.NewUUID(), kernel.NewUUID()

		require.NoError(t, catalog.Replace([]*vendor.Vendor{newCatalogVendor(t, oldID, 20, 3)}))
		require.NoError(t, catalog.Replace([]*vendor.Vendor{newCatalogVendor(t, newID, 40, 6)}))

		_, err := catalog.Price(oldID, mustWeight(t, 4), mustDistance(t, 12))
		require.ErrorIs(t, err, services.ErrVendorNotFound)

		price, err := catalog.Price(newID, mustWeight(t, 4), mustDistance(t, 12))
		require.NoError(t, err)
		assert.InDelta(t, 40+6*3, price, 1e-9)
	})

	t.Run("rejects duplicate vendor IDs and keeps the old snapshot", func(t *testing.T) {
		catalog := services.NewRateCatalog()
		keptID := kernel.NewUUID()
		require.NoError(t, catalog.Replace([]*vendor.Vendor{newCatalogVendor(t, keptID, 20, 3)}))

		dupID := kernel.NewUUID()
		err := catalog.Replace([]*vendor.Vendor{
			newCatalogVendor(t, dupID, 20, 3),
			newCatalogVendor(t, dupID, 40, 6),
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate vendor")

		_, err = catalog.Price(keptID, mustWeight(t, 4), mustDistance(t, 12))
		require.NoError(t, err, "failed replace must not touch the snapshot")
	})

	t.Run("rejects unconstructed vendors", func(t *testing.T) {
		catalog := services.NewRateCatalog()

		require.Error(t, catalog.Replace([]*vendor.Vendor{nil}))
	})
}

func TestRateCatalog_VendorIDs(t *testing.T) {
	catalog := services.NewRateCatalog()
	a, b := kernel.NewUUID(), kernel.NewUUID()
	require.NoError(t, catalog.Replace([]*vendor.Vendor{
		newCatalogVendor(t, a, 20, 3),
		newCatalogVendor(t, b, 40, 6),
	}))

	ids := catalog.VendorIDs()

	require.Len(t, ids, 2)
	assert.Less(t, ids[0].String(), ids[1].String(), "listing must be ordered")
}

func TestRateCatalog_Lookup(t *testing.T) {
	catalog := services.NewRateCatalog()
	vendorID := kernel.NewUUID()
	require.NoError(t, catalog.Replace([]*vendor.Vendor{newCatalogVendor(t, vendorID, 20, 3)}))

	t.Run("resolves the covering tier", func(t *testing.T) {
		tier, err := catalog.Lookup(vendorID, mustWeight(t, 4))

		require.NoError(t, err)
		assert.InDelta(t, 20.0, tier.BasePrice(), 1e-9)
	})

	t.Run("unknown vendor", func(t *testing.T) {
		_, err := catalog.Lookup(kernel.NewUUID(), mustWeight(t, 4))

		require.ErrorIs(t, err, services.ErrVendorNotFound)
	})

	t.Run("unconstructed vendor ID", func(t *testing.T) {
		var nilID kernel.UUID

		_, err := catalog.Lookup(nilID, mustWeight(t, 4))

		require.Error(t, err)
		assert.NotErrorIs(t, err, services.ErrVendorNotFound)
	})
}

func TestRateCatalog_Estimate(t *testing.T) {
	catalog := services.NewRateCatalog()
	vendorID := kernel.NewUUID()
	require.NoError(t, catalog.Replace([]*vendor.Vendor{newCatalogVendor(t, vendorID, 20, 3)}))

	t.Run("returns price and transit days", func(t *testing.T) {
		price, days, err := catalog.Estimate(
			context.Background(), vendorID, mustWeight(t, 4), mustDistance(t, 12))

		require.NoError(t, err)
		assert.InDelta(t, 29.0, price, 1e-9)
		assert.Equal(t, 3, days)
	})

	t.Run("honors cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, _, err := catalog.Estimate(ctx, vendorID, mustWeight(t, 4), mustDistance(t, 12))

		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestRateCatalog_ConcurrentReplace(t *testing.T) {
	catalog := services.NewRateCatalog()
	vendorID := kernel.NewUUID()

	oldVendor := newCatalogVendor(t, vendorID, 20, 3)
	newVendor := newCatalogVendor(t, vendorID, 40, 6)
	require.NoError(t, catalog.Replace([]*vendor.Vendor{oldVendor}))

	weight, distance := mustWeight(t, 4), mustDistance(t, 12)
	oldPrice := 20 + 3*3.0
	newPrice := 40 + 6*3.0

	var wg sync.WaitGroup
	start := make(chan struct{})

	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			for range 200 {
				price, err := catalog.Price(vendorID, weight, distance)
				assert.NoError(t, err)
				assert.True(t, price == oldPrice || price == newPrice,
					"reader saw a price from neither snapshot: %v", price)
			}
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		<-start
		for i := range 100 {
			v := oldVendor
			if i%2 == 0 {
				v = newVendor
			}
			assert.NoError(t, catalog.Replace([]*vendor.Vendor{v}))
		}
	}()

	close(start)
	wg.Wait()
}
