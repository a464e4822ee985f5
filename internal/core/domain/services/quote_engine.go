package services

import (
	"context"
	"errors"
	"sort"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/quote"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

// ErrNoQuotesAvailable is returned when every queried vendor failed to
// produce a rate, whether by timeout, by missing tier coverage, or by being
// absent from the catalog.
var ErrNoQuotesAvailable = errors.New("no quotes available")

// ErrQuoteEngineIsNotConstructed is returned when a QuoteEngine instance was
// not created through NewQuoteEngine.
var ErrQuoteEngineIsNotConstructed = errors.New("QuoteEngine must be created via NewQuoteEngine")

// RateSource supplies per-vendor price and transit-day estimates.
// The production source is the RateCatalog; tests substitute slow or failing
// sources to exercise the fan-out behavior.
type RateSource interface {
	Estimate(ctx context.Context, vendorID kernel.UUID, weight kernel.Weight, distance kernel.Distance) (price float64, days int, err error)
}

// QuoteEngine is a domain service that produces ranked shipping quotes for an
// order by querying every candidate vendor concurrently.
//
// Fan-out semantics:
//   - One lookup per vendor, each under its own timeout derived from the
//     caller's context
//   - A vendor that fails or times out only removes itself from the result
//   - Every vendor failing yields ErrNoQuotesAvailable
//   - Caller cancellation abandons all in-flight lookups
//
// Results are stamped with one shared issue instant and validity window and
// sorted by price, then estimated days, then vendor ID.
type QuoteEngine struct {
	source        RateSource
	ttl           time.Duration
	vendorTimeout time.Duration

	guard guard.ConstructorGuard
}

// NewQuoteEngine creates a quote engine over the given rate source.
// ttl is the validity window stamped onto every issued quote; vendorTimeout
// bounds each individual vendor lookup.
func NewQuoteEngine(source RateSource, ttl, vendorTimeout time.Duration) (*QuoteEngine, error) {
	if source == nil {
		return nil, errs.NewValueIsRequiredError("source")
	}
	if ttl <= 0 {
		return nil, errs.NewValueIsInvalidError("ttl")
	}
	if vendorTimeout <= 0 {
		return nil, errs.NewValueIsInvalidError("vendorTimeout")
	}

	return &QuoteEngine{
		source:        source,
		ttl:           ttl,
		vendorTimeout: vendorTimeout,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the QuoteEngine instance was properly constructed.
func (e *QuoteEngine) Validate() error {
	if e == nil {
		return ErrQuoteEngineIsNotConstructed
	}
	return e.guard.Validate(ErrQuoteEngineIsNotConstructed)
}

type vendorEstimate struct {
	vendorID kernel.UUID
	price    float64
	days     int
	err      error
}

// Quote queries all candidate vendors concurrently and returns the surviving
// quotes ranked by (price, estimated days, vendor ID) ascending.
//
// Quotes are not persisted here; the caller owns storage and caching. Each
// returned quote is Valid with validUntil = issuedAt + ttl.
func (e *QuoteEngine) Quote(
	ctx context.Context,
	orderID kernel.UUID,
	weight kernel.Weight,
	distance kernel.Distance,
	vendorIDs []kernel.UUID,
) ([]*quote.Quote, error) {
	if err := errors.Join(orderID.Validate(), weight.Validate(), distance.Validate()); err != nil {
		return nil, err
	}
	if len(vendorIDs) == 0 {
		return nil, ErrNoQuotesAvailable
	}

	results := make(chan vendorEstimate, len(vendorIDs))
	for _, vendorID := range vendorIDs {
		go func(vendorID kernel.UUID) {
			vctx, cancel := context.WithTimeout(ctx, e.vendorTimeout)
			defer cancel()

			price, days, err := e.source.Estimate(vctx, vendorID, weight, distance)
			results <- vendorEstimate{vendorID: vendorID, price: price, days: days, err: err}
		}(vendorID)
	}

	estimates := make([]vendorEstimate, 0, len(vendorIDs))
	for range vendorIDs {
		// The channel is buffered for every vendor, so even on early
		// cancellation no lookup goroutine blocks forever.
		res := <-results
		if res.err == nil {
			estimates = append(estimates, res)
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(estimates) == 0 {
		return nil, ErrNoQuotesAvailable
	}

	issuedAt := time.Now()
	quotes := make([]*quote.Quote, 0, len(estimates))
	for _, est := range estimates {
		q, err := quote.NewQuote(
			kernel.NewUUID(), orderID, est.vendorID,
			est.price, est.days, issuedAt, e.ttl)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, q)
	}

	sortQuotes(quotes)
	return quotes, nil
}

func sortQuotes(quotes []*quote.Quote) {
	sort.Slice(quotes, func(i, j int) bool {
		a, b := quotes[i], quotes[j]
		if a.Price() != b.Price() {
			return a.Price() < b.Price()
		}
		if a.EstimatedDays() != b.EstimatedDays() {
			return a.EstimatedDays() < b.EstimatedDays()
		}
		return a.VendorID().String() < b.VendorID().String()
	})
}
