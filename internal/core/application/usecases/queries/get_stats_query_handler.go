package queries

import (
	"context"
	"time"

	"shipping/internal/core/domain/model/history"
	"shipping/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetStatsQueryHandler computes a user's shipping statistics with plain SQL
// reads. The reads run outside any business transaction; they observe a
// snapshot and never block the write path.
type GetStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetStatsQueryHandler creates a handler for statistics queries.
func NewGetStatsQueryHandler(db *gorm.DB) GetStatsQueryHandler {
	return GetStatsQueryHandler{db: db}
}

// Handle executes the statistics reads.
//
// Aggregates over empty sets come back as zero via COALESCE, so a fresh user
// gets zeros rather than SQL NULLs.
func (h GetStatsQueryHandler) Handle(ctx context.Context, query GetStatsQuery) (GetStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetStatsQueryResponse{}, err
	}

	var resp GetStatsQueryResponse
	userID := query.UserID().Bytes()
	now := time.Now()
	windowStart := now.AddDate(0, 0, -query.WindowDays())

	err := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM orders
		WHERE user_id = ? AND status = ?
	`, userID, order.Pending.String()).Row().Scan(&resp.ActiveOrders)
	if err != nil {
		return GetStatsQueryResponse{}, err
	}

	err = h.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(h.shipping_price), 0)
		FROM history_records h
		JOIN orders o ON o.id = h.order_id
		WHERE o.user_id = ?
		  AND h.delivery_date IS NOT NULL
		  AND h.delivery_date BETWEEN ? AND ?
	`, userID, windowStart, now).Row().Scan(&resp.TrailingRevenue)
	if err != nil {
		return GetStatsQueryResponse{}, err
	}

	err = h.db.WithContext(ctx).Raw(`
		SELECT COALESCE(AVG(EXTRACT(EPOCH FROM (h.delivery_date - o.created_at)) / 86400.0), 0)
		FROM history_records h
		JOIN orders o ON o.id = h.order_id
		WHERE o.user_id = ?
		  AND h.status = ?
		  AND h.delivery_date IS NOT NULL
	`, userID, history.DeliveredStatus.String()).Row().Scan(&resp.AvgDeliveryLatencyDays)
	if err != nil {
		return GetStatsQueryResponse{}, err
	}

	return resp, nil
}
