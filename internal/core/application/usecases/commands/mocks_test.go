package commands_test

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/stretchr/testify/mock"

	"swiftdrop/internal/core/application/usecases/commands"
	"swiftdrop/internal/core/domain/model/checkout"
	"swiftdrop/internal/core/domain/model/distance"
	"swiftdrop/internal/core/domain/model/draft"
	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/core/domain/model/parcel"
	"swiftdrop/internal/core/domain/model/shipment"
	"swiftdrop/internal/core/ports"
	"swiftdrop/internal/pkg/errs"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type MockParcelRepository struct{ mock.Mock }

func (m *MockParcelRepository) Add(ctx context.Context, p *parcel.Parcel) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockParcelRepository) Update(ctx context.Context, p *parcel.Parcel) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockParcelRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Parcel), args.Error(1)
}

func (m *MockParcelRepository) GetByTrackingID(ctx context.Context, id kernel.TrackingID) (*parcel.Parcel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Parcel), args.Error(1)
}

func (m *MockParcelRepository) ExistsByTrackingID(ctx context.Context, id kernel.TrackingID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockParcelRepository) DeleteProvisional(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockCheckoutRepository struct{ mock.Mock }

func (m *MockCheckoutRepository) Add(ctx context.Context, c *checkout.Checkout) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCheckoutRepository) Update(ctx context.Context, c *checkout.Checkout) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCheckoutRepository) Get(ctx context.Context, id kernel.UUID) (*checkout.Checkout, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*checkout.Checkout), args.Error(1)
}

type MockContactRepository struct{ mock.Mock }

func (m *MockContactRepository) Add(ctx context.Context, c *checkout.Contact) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockContactRepository) Update(ctx context.Context, c *checkout.Contact) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockContactRepository) GetByUserAndName(
	ctx context.Context,
	userID kernel.UUID,
	name string,
) (*checkout.Contact, error) {
	args := m.Called(ctx, userID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*checkout.Contact), args.Error(1)
}

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShipmentRepository) Update(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) GetByTrackingID(
	ctx context.Context,
	id kernel.TrackingID,
) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) FindPaymentByFingerprint(
	ctx context.Context,
	fingerprint string,
) (*shipment.Payment, error) {
	args := m.Called(ctx, fingerprint)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Payment), args.Error(1)
}

type MockDistanceRepository struct{ mock.Mock }

func (m *MockDistanceRepository) Upsert(ctx context.Context, record *distance.CountryDistance) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockDistanceRepository) Get(
	ctx context.Context,
	pickupCountry, deliveryCountry string,
) (*distance.CountryDistance, error) {
	args := m.Called(ctx, pickupCountry, deliveryCountry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*distance.CountryDistance), args.Error(1)
}

// MockUoW satisfies every command unit-of-work interface at once.
type MockUoW struct {
	mock.Mock

	Parcels   *MockParcelRepository
	Checkouts *MockCheckoutRepository
	Contacts  *MockContactRepository
	Shipments *MockShipmentRepository
	Distances *MockDistanceRepository
}

func NewMockUoW() *MockUoW {
	return &MockUoW{
		Parcels:   new(MockParcelRepository),
		Checkouts: new(MockCheckoutRepository),
		Contacts:  new(MockContactRepository),
		Shipments: new(MockShipmentRepository),
		Distances: new(MockDistanceRepository),
	}
}

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) ParcelRepository() ports.ParcelRepository       { return m.Parcels }
func (m *MockUoW) CheckoutRepository() ports.CheckoutRepository   { return m.Checkouts }
func (m *MockUoW) ContactRepository() ports.ContactRepository     { return m.Contacts }
func (m *MockUoW) ShipmentRepository() ports.ShipmentRepository   { return m.Shipments }
func (m *MockUoW) DistanceRepository() ports.DistanceRepository   { return m.Distances }
func (m *MockUoW) AssertExpectationsForAll(t mock.TestingT) bool {
	return m.AssertExpectations(t) &&
		m.Parcels.AssertExpectations(t) &&
		m.Checkouts.AssertExpectations(t) &&
		m.Contacts.AssertExpectations(t) &&
		m.Shipments.AssertExpectations(t) &&
		m.Distances.AssertExpectations(t)
}

type fakeQuoteUoWFactory struct{ uow commands.QuoteUoW }

func (f fakeQuoteUoWFactory) Create() commands.QuoteUoW { return f.uow }

type fakeCheckoutStartUoWFactory struct{ uow commands.CheckoutStartUoW }

func (f fakeCheckoutStartUoWFactory) Create() commands.CheckoutStartUoW { return f.uow }

type fakeContactUoWFactory struct{ uow commands.ContactUoW }

func (f fakeContactUoWFactory) Create() commands.ContactUoW { return f.uow }

type fakeCommitUoWFactory struct{ uow commands.CommitUoW }

func (f fakeCommitUoWFactory) Create() commands.CommitUoW { return f.uow }

type fakeShipmentUoWFactory struct{ uow commands.ShipmentUoW }

func (f fakeShipmentUoWFactory) Create() commands.ShipmentUoW { return f.uow }

// stubGeocoder resolves from a fixed map; unknown places are misses.
type stubGeocoder struct {
	points map[string]kernel.GeoPoint
	err    error
}

func (g stubGeocoder) Resolve(_ context.Context, place string) (kernel.GeoPoint, bool, error) {
	if g.err != nil {
		return kernel.GeoPoint{}, false, g.err
	}
	point, ok := g.points[place]
	return point, ok, nil
}

// memDraftStore is a plain in-memory draft store for handler tests.
type memDraftStore struct {
	drafts map[string]*draft.Draft
}

func newMemDraftStore() *memDraftStore {
	return &memDraftStore{drafts: make(map[string]*draft.Draft)}
}

func (s *memDraftStore) Put(_ context.Context, d *draft.Draft) error {
	s.drafts[d.ID().String()] = d
	return nil
}

func (s *memDraftStore) Get(_ context.Context, id kernel.TrackingID) (*draft.Draft, error) {
	d, ok := s.drafts[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("draftId", id.String())
	}
	return d, nil
}

func (s *memDraftStore) Update(_ context.Context, d *draft.Draft) error {
	if _, ok := s.drafts[d.ID().String()]; !ok {
		return errs.NewObjectNotFoundError("draftId", d.ID().String())
	}
	s.drafts[d.ID().String()] = d
	return nil
}

func (s *memDraftStore) Remove(_ context.Context, id kernel.TrackingID) error {
	delete(s.drafts, id.String())
	return nil
}

func (s *memDraftStore) ExpireOlderThan(_ context.Context, cutoff time.Time) (int, error) {
	dropped := 0
	for key, d := range s.drafts {
		if d.UpdatedAt().Before(cutoff) {
			delete(s.drafts, key)
			dropped++
		}
	}
	return dropped, nil
}

// stubAuthorizer approves or declines every payment.
type stubAuthorizer struct {
	approve bool
	err     error
}

func (a stubAuthorizer) Authorize(_ context.Context, _ *shipment.Payment) (bool, error) {
	return a.approve, a.err
}
