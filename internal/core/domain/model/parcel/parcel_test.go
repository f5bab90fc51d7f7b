package parcel_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/core/domain/model/parcel"
	"swiftdrop/internal/pkg/errs"
)

func validParcel(t *testing.T) *parcel.Parcel {
	t.Helper()

	p, err := parcel.NewParcel(
		kernel.NewUUID(), kernel.NewUUID(),
		"United States", "France",
		2, 10, 10, 10,
	)
	require.NoError(t, err)
	return p
}

func TestNewParcel(t *testing.T) {
	t.Run("valid parcel is provisional", func(t *testing.T) {
		p := validParcel(t)

		require.NoError(t, p.Validate())
		assert.False(t, p.IsTracked())
		assert.Nil(t, p.TrackingID())
		assert.Equal(t, "United States", p.PickupCountry())
		assert.Equal(t, "France", p.DeliveryCountry())
		assert.InDelta(t, 2.0, p.WeightKg(), 0)
		assert.WithinDuration(t, time.Now().UTC(), p.CreatedAt(), time.Minute)
	})

	t.Run("measurements must be positive", func(t *testing.T) {
		tests := []struct {
			name                            string
			weight, length, width, height   float64
		}{
			{"zero weight", 0, 10, 10, 10},
			{"negative weight", -1, 10, 10, 10},
			{"zero length", 2, 0, 10, 10},
			{"negative width", 2, 10, -3, 10},
			{"zero height", 2, 10, 10, 0},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := parcel.NewParcel(
					kernel.NewUUID(), kernel.NewUUID(),
					"United States", "France",
					tt.weight, tt.length, tt.width, tt.height,
				)

				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			})
		}
	})

	t.Run("countries are required", func(t *testing.T) {
		_, err := parcel.NewParcel(kernel.NewUUID(), kernel.NewUUID(), "", "France", 2, 10, 10, 10)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = parcel.NewParcel(kernel.NewUUID(), kernel.NewUUID(), "United States", "", 2, 10, 10, 10)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("invalid identifiers are rejected", func(t *testing.T) {
		var zero kernel.UUID

		_, err := parcel.NewParcel(zero, kernel.NewUUID(), "United States", "France", 2, 10, 10, 10)
		require.Error(t, err)

		_, err = parcel.NewParcel(kernel.NewUUID(), zero, "United States", "France", 2, 10, 10, 10)
		require.Error(t, err)
	})
}

func TestParcel_Validate(t *testing.T) {
	t.Run("zero value is not constructed", func(t *testing.T) {
		var p parcel.Parcel

		require.ErrorIs(t, p.Validate(), parcel.ErrParcelIsNotConstructed)
	})

	t.Run("nil parcel is not constructed", func(t *testing.T) {
		var p *parcel.Parcel

		require.ErrorIs(t, p.Validate(), parcel.ErrParcelIsNotConstructed)
	})
}

func TestParcel_AssignTracking(t *testing.T) {
	t.Run("assigns tracking ID once", func(t *testing.T) {
		p := validParcel(t)
		id := kernel.NewTrackingID()

		require.NoError(t, p.AssignTracking(id))

		assert.True(t, p.IsTracked())
		assert.True(t, p.TrackingID().IsEqual(id))
	})

	t.Run("tracking ID is immutable once assigned", func(t *testing.T) {
		p := validParcel(t)
		first := kernel.NewTrackingID()
		require.NoError(t, p.AssignTracking(first))

		err := p.AssignTracking(kernel.NewTrackingID())

		require.ErrorIs(t, err, parcel.ErrTrackingAlreadyAssigned)
		assert.True(t, p.TrackingID().IsEqual(first))
	})

	t.Run("rejects unconstructed tracking ID", func(t *testing.T) {
		p := validParcel(t)
		var zero kernel.TrackingID

		require.Error(t, p.AssignTracking(zero))
		assert.False(t, p.IsTracked())
	})
}

func TestRestoreParcel(t *testing.T) {
	t.Run("restores tracked parcel", func(t *testing.T) {
		id := kernel.NewUUID()
		sender := kernel.NewUUID()
		tracking := kernel.NewTrackingID()
		createdAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

		p, err := parcel.RestoreParcel(id, sender, "United States", "France",
			2, 10, 10, 10, &tracking, createdAt)

		require.NoError(t, err)
		assert.True(t, p.IsTracked())
		assert.Equal(t, createdAt, p.CreatedAt())
		assert.True(t, p.ID().IsEqual(id))
	})

	t.Run("restores provisional parcel", func(t *testing.T) {
		p, err := parcel.RestoreParcel(kernel.NewUUID(), kernel.NewUUID(),
			"United States", "France", 2, 10, 10, 10, nil, time.Now().UTC())

		require.NoError(t, err)
		assert.False(t, p.IsTracked())
	})

	t.Run("rejects invalid measurements", func(t *testing.T) {
		_, err := parcel.RestoreParcel(kernel.NewUUID(), kernel.NewUUID(),
			"United States", "France", -2, 10, 10, 10, nil, time.Now().UTC())

		require.Error(t, err)
	})
}

func TestParcel_IsEqual(t *testing.T) {
	p := validParcel(t)
	other := validParcel(t)

	assert.True(t, p.IsEqual(p))
	assert.False(t, p.IsEqual(other))
	assert.False(t, p.IsEqual(nil))
}
