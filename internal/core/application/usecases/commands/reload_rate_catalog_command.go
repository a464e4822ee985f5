package commands

import (
	"errors"

	"shipping/internal/pkg/guard"
)

var ErrReloadRateCatalogCommandIsNotConstructed = errors.New(
	"ReloadRateCatalogCommand must be created via NewReloadRateCatalogCommand constructor",
)

// ReloadRateCatalogCommand represents one rebuild of the in-memory rate
// catalog from persisted vendors.
type ReloadRateCatalogCommand struct {
	guard guard.ConstructorGuard
}

// NewReloadRateCatalogCommand creates a command for one catalog reload.
func NewReloadRateCatalogCommand() (ReloadRateCatalogCommand, error) {
	return ReloadRateCatalogCommand{
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ReloadRateCatalogCommand) Validate() error {
	return c.guard.Validate(ErrReloadRateCatalogCommandIsNotConstructed)
}
