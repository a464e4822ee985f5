// Package quote provides the shipping-quote aggregate.
//
// A quote is an immutable priced offer from one vendor for one order, valid
// for a fixed window from issuance. The only mutation after issuance is the
// monotonic valid -> expired flip performed by the expiry sweep; bind-time
// validity is always decided by IsValidAt against the window, so the sweep is
// housekeeping rather than a correctness dependency.
package quote
