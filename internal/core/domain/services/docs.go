// Package services contains the pure domain services of the quoting core.
//
// RateCatalog holds the copy-on-write snapshot of vendor rate cards and
// resolves tiers, prices and transit estimates. QuoteEngine fans a quotation
// request out to every candidate vendor concurrently and ranks the surviving
// quotes. Both services are side-effect free; persistence and caching of
// their outputs belong to the application layer.
package services
