package ports

import (
	"context"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/vendor"
)

// VendorRepository defines the persistence contract for vendor aggregates
// and their rate tiers. It backs the rate catalog, which holds the vendors
// read here as an in-memory snapshot.
type VendorRepository interface {
	// Add persists a new vendor together with its rate tiers.
	Add(ctx context.Context, aggregate *vendor.Vendor) error

	// Get retrieves a vendor with its full tier set.
	Get(ctx context.Context, id kernel.UUID) (*vendor.Vendor, error)

	// GetAll retrieves every vendor with its full tier set.
	// Used by the catalog reload to rebuild the snapshot.
	GetAll(ctx context.Context) ([]*vendor.Vendor, error)
}
