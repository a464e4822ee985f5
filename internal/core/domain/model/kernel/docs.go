// Package kernel provides shared value objects used across all domain
// aggregates in the shipping system.
//
// The package includes:
//   - UUID: validated unique identifiers for entities and aggregates
//   - Weight: strictly positive shipment weight in kilograms
//   - Distance: non-negative route distance in kilometres, with the
//     5 km increment arithmetic used by rate plans
//
// All kernel types are immutable value objects created through validating
// constructors; their zero values fail Validate so improperly constructed
// values are caught at the domain boundary.
package kernel
