// Package postgres provides the GORM-based implementation of the Unit of Work
// pattern. A unit of work scopes one business transaction: repositories
// obtained from it share the same database transaction, and every aggregate
// they persist is tracked for post-commit processing.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.ParcelRepository().Add(ctx, parcel); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
package postgres

import (
	"context"

	"gorm.io/gorm"

	"swiftdrop/internal/adapters/out/postgres/checkoutrepo"
	"swiftdrop/internal/adapters/out/postgres/distancerepo"
	"swiftdrop/internal/adapters/out/postgres/parcelrepo"
	"swiftdrop/internal/adapters/out/postgres/shipmentrepo"
	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/core/ports"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate interface{}
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one GORM
// database connection. Each business operation gets a fresh instance with its
// own transaction state, isolated from concurrent operations.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork instance ready for transaction management.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates database transactions and tracks aggregate
// changes for business operations. Repositories returned by the getters run
// inside the active transaction when one has been started via Begin, and on
// the main connection otherwise.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction. Calling Begin again on an
// instance with an active transaction is a no-op, transactions never nest.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// After commit the transaction is closed and cannot be reused.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// After rollback the transaction is closed and cannot be reused.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// ParcelRepository returns a parcel repository bound to the current
// transaction.
func (uow *GormUnitOfWork) ParcelRepository() ports.ParcelRepository {
	return parcelrepo.NewGormParcelRepository(uow.conn(), uow)
}

// CheckoutRepository returns a checkout repository bound to the current
// transaction.
func (uow *GormUnitOfWork) CheckoutRepository() ports.CheckoutRepository {
	return checkoutrepo.NewGormCheckoutRepository(uow.conn(), uow)
}

// ContactRepository returns a contact repository bound to the current
// transaction.
func (uow *GormUnitOfWork) ContactRepository() ports.ContactRepository {
	return checkoutrepo.NewGormContactRepository(uow.conn(), uow)
}

// ShipmentRepository returns a shipment repository bound to the current
// transaction.
func (uow *GormUnitOfWork) ShipmentRepository() ports.ShipmentRepository {
	return shipmentrepo.NewGormShipmentRepository(uow.conn(), uow)
}

// DistanceRepository returns a country-distance repository bound to the
// current transaction.
func (uow *GormUnitOfWork) DistanceRepository() ports.DistanceRepository {
	return distancerepo.NewGormDistanceRepository(uow.conn())
}

// TrackAggregate registers a domain aggregate as modified within this unit of
// work. Repository implementations call this when aggregates are added or
// updated; the tracked set is available via GetTrackedAggregates after the
// transaction completes.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// GetTrackedAggregates returns every aggregate persisted through this unit of
// work, in the order they were tracked.
func (uow *GormUnitOfWork) GetTrackedAggregates() []trackedAggregate {
	return uow.trackedAggregates
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
