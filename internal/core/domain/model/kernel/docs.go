// Package kernel provides core domain primitives for the shipping system.
// It implements fundamental building blocks following Domain-Driven Design
// principles that are used throughout the domain model.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - GeoPoint: A validated latitude/longitude pair with great-circle distance calculation
//   - TrackingID: The public package identifier printed on labels ("gbw" + 8 hex chars)
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
package kernel
