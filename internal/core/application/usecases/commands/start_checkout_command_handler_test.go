package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"swiftdrop/internal/core/application/usecases/commands"
	"swiftdrop/internal/core/domain/model/draft"
	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/core/domain/model/parcel"
	"swiftdrop/internal/core/domain/services"
)

func TestStartCheckoutCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	senderID := kernel.NewUUID()
	cmd, err := commands.NewStartCheckoutCommand(
		senderID, "United States", "73301", "France", "75001", 2, 10, 10, 10)
	require.NoError(t, err)

	var tracked *parcel.Parcel

	uow := NewMockUoW()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.Parcels.On("ExistsByTrackingID", mock.Anything, mock.AnythingOfType("kernel.TrackingID")).
		Return(false, nil).Once()
	uow.Parcels.On("Add", mock.Anything, mock.AnythingOfType("*parcel.Parcel")).
		Run(func(args mock.Arguments) { tracked = args.Get(1).(*parcel.Parcel) }).
		Return(nil).Once()
	uow.Checkouts.On("Add", mock.Anything, mock.AnythingOfType("*checkout.Checkout")).Return(nil).Once()
	uow.Distances.On("Upsert", mock.Anything, mock.AnythingOfType("*distance.CountryDistance")).Return(nil).Once()

	geocoder := stubGeocoder{points: map[string]kernel.GeoPoint{
		"United States": geoPoint(t, 39.78, -100.45),
		"France":        geoPoint(t, 46.23, 2.21),
	}}
	store := newMemDraftStore()

	h := commands.NewStartCheckoutCommandHandler(
		fakeCheckoutStartUoWFactory{uow: uow}, store, geocoder, services.NewPricer(), testLogger())

	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NoError(t, result.DraftID.Validate())
	require.NotNil(t, result.DistanceKm)

	require.NotNil(t, tracked)
	assert.True(t, tracked.IsTracked())
	assert.True(t, tracked.TrackingID().IsEqual(result.DraftID))

	d, err := store.Get(ctx, result.DraftID)
	require.NoError(t, err)
	assert.Equal(t, draft.Quoted, d.Step())
	assert.True(t, d.SenderID().IsEqual(senderID))
	assert.True(t, d.ParcelID().IsEqual(tracked.ID()))
	assert.InDelta(t, result.Price, d.Quote().Price, 1e-9)

	uow.AssertExpectationsForAll(t)
}

func TestStartCheckoutCommandHandler_Handle_RegeneratesCollidingTrackingID(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewStartCheckoutCommand(
		kernel.NewUUID(), "United States", "", "France", "", 2, 10, 10, 10)
	require.NoError(t, err)

	uow := NewMockUoW()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.Parcels.On("ExistsByTrackingID", mock.Anything, mock.AnythingOfType("kernel.TrackingID")).
		Return(true, nil).Once()
	uow.Parcels.On("ExistsByTrackingID", mock.Anything, mock.AnythingOfType("kernel.TrackingID")).
		Return(false, nil).Once()
	uow.Parcels.On("Add", mock.Anything, mock.AnythingOfType("*parcel.Parcel")).Return(nil).Once()
	uow.Checkouts.On("Add", mock.Anything, mock.AnythingOfType("*checkout.Checkout")).Return(nil).Once()

	h := commands.NewStartCheckoutCommandHandler(
		fakeCheckoutStartUoWFactory{uow: uow}, newMemDraftStore(), stubGeocoder{},
		services.NewPricer(), testLogger())

	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Nil(t, result.DistanceKm)
	uow.AssertExpectationsForAll(t)
}

func TestStartCheckoutCommandHandler_Handle_TrackingIDExhausted(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewStartCheckoutCommand(
		kernel.NewUUID(), "United States", "", "France", "", 2, 10, 10, 10)
	require.NoError(t, err)

	uow := NewMockUoW()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.Parcels.On("ExistsByTrackingID", mock.Anything, mock.AnythingOfType("kernel.TrackingID")).
		Return(true, nil).Times(5)

	h := commands.NewStartCheckoutCommandHandler(
		fakeCheckoutStartUoWFactory{uow: uow}, newMemDraftStore(), stubGeocoder{},
		services.NewPricer(), testLogger())

	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrTrackingIDExhausted)
	uow.AssertExpectationsForAll(t)
}
