package queries

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var (
	ErrGetStatsQueryIsNotConstructed = errors.New(
		"GetStatsQuery must be created via NewGetStatsQuery constructor",
	)
	ErrWindowDaysIsInvalid = errors.New("window days must be greater than 0")
)

// GetStatsQuery retrieves shipping activity statistics for one user.
// The revenue figure trails over a configurable window of days.
type GetStatsQuery struct { //nolint:recvcheck //using for validation
	userID     kernel.UUID
	windowDays int

	guard guard.ConstructorGuard
}

// NewGetStatsQuery creates a query for a user's shipping statistics.
func NewGetStatsQuery(userID kernel.UUID, windowDays int) (GetStatsQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetStatsQuery{}, err
	}
	if windowDays <= 0 {
		return GetStatsQuery{}, ErrWindowDaysIsInvalid
	}

	return GetStatsQuery{
		userID:     userID,
		windowDays: windowDays,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetStatsQueryIsNotConstructed)
}

// UserID returns the user the statistics are scoped to.
func (q GetStatsQuery) UserID() kernel.UUID {
	return q.userID
}

// WindowDays returns the trailing revenue window in days.
func (q GetStatsQuery) WindowDays() int {
	return q.windowDays
}

// GetStatsQueryResponse carries a user's shipping statistics.
//
// AvgDeliveryLatencyDays is the mean time from order creation to delivery
// over the user's delivered history records; it is zero when nothing has
// been delivered yet.
type GetStatsQueryResponse struct {
	ActiveOrders           int64
	TrailingRevenue        float64
	AvgDeliveryLatencyDays float64
}
