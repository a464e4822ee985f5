// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"shipping/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Handlers depend on the narrowest combination their operation touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// QuoteRepoFactory provides access to the quote repository within a transaction.
	QuoteRepoFactory interface {
		QuoteRepository() ports.QuoteRepository
	}

	// HistoryRepoFactory provides access to the history repository within a transaction.
	HistoryRepoFactory interface {
		HistoryRepository() ports.HistoryRepository
	}

	// VendorRepoFactory provides access to the vendor repository within a transaction.
	VendorRepoFactory interface {
		VendorRepository() ports.VendorRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// OrderQuoteUoW manages transactions spanning order and quote aggregates,
	// used by quotation and binding which read one and write the other.
	OrderQuoteUoW interface {
		TxManager
		OrderRepoFactory
		QuoteRepoFactory
	}

	// OrderQuoteUoWFactory creates new order+quote unit of work instances.
	OrderQuoteUoWFactory interface {
		Create() OrderQuoteUoW
	}

	// QuoteUoW manages transactions for quote-only operations such as the
	// expiry sweep.
	QuoteUoW interface {
		TxManager
		QuoteRepoFactory
	}

	// QuoteUoWFactory creates new quote unit of work instances.
	QuoteUoWFactory interface {
		Create() QuoteUoW
	}

	// HistoryUoW manages transactions spanning history and order aggregates,
	// used by delivery-event recording which appends a record and may advance
	// the order.
	HistoryUoW interface {
		TxManager
		HistoryRepoFactory
		OrderRepoFactory
	}

	// HistoryUoWFactory creates new history unit of work instances.
	HistoryUoWFactory interface {
		Create() HistoryUoW
	}

	// VendorUoW manages transactions for vendor reads feeding the catalog.
	VendorUoW interface {
		TxManager
		VendorRepoFactory
	}

	// VendorUoWFactory creates new vendor unit of work instances.
	VendorUoWFactory interface {
		Create() VendorUoW
	}
)
