package commands

import (
	"context"

	"shipping/internal/core/domain/services"
)

// ReloadRateCatalogCommandHandler rebuilds the rate catalog snapshot from
// the vendor repository.
//
// The whole vendor set is loaded and revalidated before the swap; a broken
// vendor keeps the previous snapshot serving. Quoting keeps running against
// the old rates until the swap lands.
type ReloadRateCatalogCommandHandler struct {
	uowFactory VendorUoWFactory
	catalog    *services.RateCatalog
}

// NewReloadRateCatalogCommandHandler creates a handler for catalog reloads.
func NewReloadRateCatalogCommandHandler(
	uowFactory VendorUoWFactory,
	catalog *services.RateCatalog,
) ReloadRateCatalogCommandHandler {
	return ReloadRateCatalogCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
	}
}

// Handle loads all vendors and swaps the catalog snapshot.
func (h *ReloadRateCatalogCommandHandler) Handle(ctx context.Context, cmd ReloadRateCatalogCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	vendors, err := uow.VendorRepository().GetAll(ctx)
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return h.catalog.Replace(vendors)
}
