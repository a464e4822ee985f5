package quoterepo

import (
	"context"
	"errors"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/quote"
	"shipping/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormQuoteRepository implements QuoteRepository using GORM.
type GormQuoteRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormQuoteRepository creates a new GORM quote repository.
func NewGormQuoteRepository(db *gorm.DB, tracker aggregateTracker) *GormQuoteRepository {
	return &GormQuoteRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new quote to the database.
func (r *GormQuoteRepository) Add(ctx context.Context, aggregate *quote.Quote) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// AddAll saves a batch of quotes issued by one quotation request.
func (r *GormQuoteRepository) AddAll(ctx context.Context, aggregates []*quote.Quote) error {
	if len(aggregates) == 0 {
		return nil
	}

	dtos := make([]QuoteDTO, 0, len(aggregates))
	for _, aggregate := range aggregates {
		if err := aggregate.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, fromDomain(aggregate))
	}

	if err := r.db.WithContext(ctx).Create(&dtos).Error; err != nil {
		return err
	}

	for _, aggregate := range aggregates {
		r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	}
	return nil
}

// Get retrieves a quote by ID.
func (r *GormQuoteRepository) Get(ctx context.Context, id kernel.UUID) (*quote.Quote, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto QuoteDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("quote", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetValidByOrder retrieves the still-valid quotes for an order ranked by
// price, estimated days, then vendor ID.
func (r *GormQuoteRepository) GetValidByOrder(
	ctx context.Context,
	orderID kernel.UUID,
	now time.Time,
) ([]*quote.Quote, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []QuoteDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ? AND status = ? AND valid_until > ?",
			orderID.Bytes(), quote.Valid.String(), now).
		Order("price, estimated_days, vendor_id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	quotes := make([]*quote.Quote, 0, len(dtos))
	for _, dto := range dtos {
		q, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, q)
	}

	return quotes, nil
}

// ExpireAllPast flips every overdue valid quote to expired and returns the
// number of rows changed. The status guard in the WHERE clause makes the
// sweep race-safe: a quote flipped by a concurrent sweep no longer matches.
func (r *GormQuoteRepository) ExpireAllPast(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&QuoteDTO{}).
		Where("status = ? AND valid_until <= ?", quote.Valid.String(), now).
		Update("status", quote.Expired.String())
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
