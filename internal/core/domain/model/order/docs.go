// Package order provides the shipment-order aggregate and its lifecycle
// state machine.
//
// The package includes:
//   - Order: the aggregate root managing identity, shipment details, the
//     exactly-once quote binding, and lifecycle transitions
//   - Status: a state machine enforcing pending -> shipped -> delivered with
//     cancellation from pending or shipped only
//
// Key business rules:
//   - Orders must have valid identifiers, a recipient, and a positive weight
//   - At most one quote is ever bound to an order, and only while pending
//   - Shipping requires a bound quote; delivered and cancelled are terminal
//   - Concurrent mutations of one order must be serialized by the caller
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
