// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"swiftdrop/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ParcelRepoFactory provides access to the parcel repository within a transaction.
	ParcelRepoFactory interface {
		ParcelRepository() ports.ParcelRepository
	}

	// CheckoutRepoFactory provides access to the checkout repository within a transaction.
	CheckoutRepoFactory interface {
		CheckoutRepository() ports.CheckoutRepository
	}

	// ContactRepoFactory provides access to the contact repository within a transaction.
	ContactRepoFactory interface {
		ContactRepository() ports.ContactRepository
	}

	// ShipmentRepoFactory provides access to the shipment repository within a transaction.
	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	// DistanceRepoFactory provides access to the distance repository within a transaction.
	DistanceRepoFactory interface {
		DistanceRepository() ports.DistanceRepository
	}

	// QuoteUoW manages transactions for quote calculation.
	// Persists the provisional parcel and the memoized route distance.
	QuoteUoW interface {
		TxManager
		ParcelRepoFactory
		DistanceRepoFactory
	}

	// QuoteUoWFactory creates new quote unit of work instances.
	QuoteUoWFactory interface {
		Create() QuoteUoW
	}

	// CheckoutStartUoW manages transactions for checkout start.
	// Creates the tracked parcel and the partial checkout atomically.
	CheckoutStartUoW interface {
		TxManager
		ParcelRepoFactory
		CheckoutRepoFactory
		DistanceRepoFactory
	}

	// CheckoutStartUoWFactory creates new checkout-start unit of work instances.
	CheckoutStartUoWFactory interface {
		Create() CheckoutStartUoW
	}

	// ContactUoW manages transactions for the contact-details step.
	// Sweeps provisional parcels, completes the checkout, and refreshes the
	// address-book contact in one transaction.
	ContactUoW interface {
		TxManager
		ParcelRepoFactory
		CheckoutRepoFactory
		ContactRepoFactory
	}

	// ContactUoWFactory creates new contact unit of work instances.
	ContactUoWFactory interface {
		Create() ContactUoW
	}

	// CommitUoW manages the draft-commit transaction at the payment step.
	// Reads the parcel and checkout and writes the shipment with its owned records.
	CommitUoW interface {
		TxManager
		ParcelRepoFactory
		CheckoutRepoFactory
		ShipmentRepoFactory
	}

	// CommitUoWFactory creates new commit unit of work instances.
	CommitUoWFactory interface {
		Create() CommitUoW
	}

	// ShipmentUoW manages transactions for shipment-only operations.
	ShipmentUoW interface {
		TxManager
		ShipmentRepoFactory
	}

	// ShipmentUoWFactory creates new shipment unit of work instances.
	ShipmentUoWFactory interface {
		Create() ShipmentUoW
	}
)
