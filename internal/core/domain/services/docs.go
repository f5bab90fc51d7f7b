// Package services provides domain services that implement business logic
// spanning more than one aggregate in the shipping system.
//
// The package includes:
//   - Pricer: A domain service that prices parcels from their weight,
//     dimensions, and the distance between pickup and delivery countries
//
// Domain services are stateless; all inputs are passed explicitly so pricing
// stays deterministic and easy to test.
package services
