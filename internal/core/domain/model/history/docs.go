// Package history provides the append-only delivery history of orders.
//
// A Record captures one carrier event: what was charged, how it is paid,
// and the reported delivery status. Records are immutable; the stream for an
// order is reconciled against the order lifecycle by the application layer,
// with DeliveryStatus.InducedOrderStatus naming the implied transition.
package history
