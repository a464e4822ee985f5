package ports

import (
	"context"

	"shipping/internal/core/domain/model/history"
	"shipping/internal/core/domain/model/kernel"
)

// HistoryRepository defines the persistence contract for delivery history
// records. The store is append-only; records are never updated or removed.
type HistoryRepository interface {
	// Add appends a new history record.
	Add(ctx context.Context, record *history.Record) error

	// GetAllByOrder retrieves every record for one order in the sequence
	// they were recorded.
	GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*history.Record, error)
}
