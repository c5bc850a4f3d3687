// Package kernel provides shared value objects used across the settlement
// domain model. It contains the building blocks that individual aggregates
// compose: identifiers, monetary amounts, and geographic positions.
//
// The package includes:
//   - UUID: validated unique identifier for entities and aggregates
//   - Money: non-negative monetary amount in minor currency units
//   - GeoPosition: validated latitude/longitude pair
//   - SecureCompare: constant-time string comparison for secret codes
//
// All value objects are immutable, validate their inputs in constructors, and
// treat their zero value as invalid. This follows Domain-Driven Design
// principles for a shared kernel between bounded contexts.
package kernel
