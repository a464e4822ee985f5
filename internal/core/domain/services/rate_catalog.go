package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync/atomic"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/vendor"
	"shipping/internal/pkg/errs"
)

// ErrVendorNotFound is returned when a price or estimate is requested for a
// vendor the current catalog snapshot does not carry.
var ErrVendorNotFound = errors.New("vendor not found")

// RateCatalog is a domain service holding the in-memory snapshot of vendor
// rate cards used by the quoting path.
//
// The snapshot is copy-on-write: Replace builds a complete new snapshot and
// swaps it in atomically, so a reader always observes one consistent catalog,
// never a mix of old and new vendors. Lookups after the swap see the new
// rates; quotes issued before it keep the prices they were issued with.
type RateCatalog struct {
	snapshot atomic.Pointer[catalogSnapshot]
}

type catalogSnapshot struct {
	vendors map[kernel.UUID]*vendor.Vendor
	ordered []*vendor.Vendor
}

// NewRateCatalog creates an empty catalog. Every lookup fails with
// ErrVendorNotFound until the first Replace.
func NewRateCatalog() *RateCatalog {
	c := &RateCatalog{}
	c.snapshot.Store(&catalogSnapshot{vendors: map[kernel.UUID]*vendor.Vendor{}})
	return c
}

// Replace swaps the whole catalog snapshot for the given vendor set.
//
// The new snapshot is validated and built completely before the swap; on any
// validation error the current snapshot stays in place untouched. Duplicate
// vendor IDs are rejected.
func (c *RateCatalog) Replace(vendors []*vendor.Vendor) error {
	next := &catalogSnapshot{
		vendors: make(map[kernel.UUID]*vendor.Vendor, len(vendors)),
		ordered: make([]*vendor.Vendor, 0, len(vendors)),
	}

	for _, v := range vendors {
		if err := v.Validate(); err != nil {
			return err
		}
		if _, exists := next.vendors[v.ID()]; exists {
			return errs.NewValueIsInvalidErrorWithCause(
				"vendors", fmt.Errorf("duplicate vendor %s", v.ID()))
		}
		next.vendors[v.ID()] = v
		next.ordered = append(next.ordered, v)
	}

	sort.Slice(next.ordered, func(i, j int) bool {
		return next.ordered[i].ID().String() < next.ordered[j].ID().String()
	})

	c.snapshot.Store(next)
	return nil
}

// Len returns the number of vendors in the current snapshot.
func (c *RateCatalog) Len() int {
	return len(c.snapshot.Load().vendors)
}

// VendorIDs returns the IDs of all vendors in the current snapshot, ordered
// deterministically.
func (c *RateCatalog) VendorIDs() []kernel.UUID {
	snap := c.snapshot.Load()
	ids := make([]kernel.UUID, 0, len(snap.ordered))
	for _, v := range snap.ordered {
		ids = append(ids, v.ID())
	}
	return ids
}

// Lookup resolves the rate tier covering the given weight for one vendor.
//
// Returns ErrVendorNotFound for a vendor absent from the snapshot and the
// vendor's own not-found error for a weight outside its tier partition. There
// is no default tier; an unresolvable rate is an error, never a guess.
func (c *RateCatalog) Lookup(vendorID kernel.UUID, weight kernel.Weight) (vendor.RateTier, error) {
	v, err := c.vendorByID(vendorID)
	if err != nil {
		return vendor.RateTier{}, err
	}
	return v.RateFor(weight)
}

// Price computes the quoted price for one vendor:
// tier base price plus the per-5km rate for each started 5 km increment.
func (c *RateCatalog) Price(vendorID kernel.UUID, weight kernel.Weight, distance kernel.Distance) (float64, error) {
	v, err := c.vendorByID(vendorID)
	if err != nil {
		return 0, err
	}
	return v.PriceFor(weight, distance)
}

// Estimate returns the price and the estimated transit days for one vendor.
// It implements the rate source used by the quote engine; the context lets a
// caller abandon a lookup that is part of a cancelled fan-out.
func (c *RateCatalog) Estimate(
	ctx context.Context,
	vendorID kernel.UUID,
	weight kernel.Weight,
	distance kernel.Distance,
) (float64, int, error) {
	if err := ctx.Err(); err != nil {
		return 0, 0, err
	}

	v, err := c.vendorByID(vendorID)
	if err != nil {
		return 0, 0, err
	}

	price, err := v.PriceFor(weight, distance)
	if err != nil {
		return 0, 0, err
	}
	return price, v.EstimateDays(distance), nil
}

func (c *RateCatalog) vendorByID(vendorID kernel.UUID) (*vendor.Vendor, error) {
	if err := vendorID.Validate(); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("vendorId", err)
	}

	v, ok := c.snapshot.Load().vendors[vendorID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrVendorNotFound, vendorID)
	}
	return v, nil
}
