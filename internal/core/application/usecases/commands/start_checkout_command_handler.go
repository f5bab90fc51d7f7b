package commands

import (
	"context"
	"errors"
	"log/slog"

	"swiftdrop/internal/core/domain/model/checkout"
	"swiftdrop/internal/core/domain/model/draft"
	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/core/domain/model/parcel"
	"swiftdrop/internal/core/domain/services"
	"swiftdrop/internal/core/ports"
)

// trackingIDAttempts bounds regeneration when a freshly minted tracking id
// collides with an existing parcel.
const trackingIDAttempts = 5

// ErrTrackingIDExhausted is returned when no unique tracking id could be
// generated within the attempt budget.
var ErrTrackingIDExhausted = errors.New("could not generate a unique tracking id")

// StartCheckoutResult carries the new draft id and the quote snapshot the
// checkout was opened with.
type StartCheckoutResult struct {
	DraftID      kernel.TrackingID
	Price        float64
	DistanceKm   *float64
	TransitHours *float64
}

// StartCheckoutCommandHandler opens a checkout: it re-prices the parcel,
// assigns a unique tracking id, persists the tracked parcel and the partial
// checkout in one transaction, and seeds a draft in the Quoted step.
type StartCheckoutCommandHandler struct {
	uowFactory CheckoutStartUoWFactory
	draftStore ports.DraftStore
	resolver   routeDistanceResolver
	pricer     services.Pricer
}

// NewStartCheckoutCommandHandler creates a handler for checkout start.
func NewStartCheckoutCommandHandler(
	uowFactory CheckoutStartUoWFactory,
	draftStore ports.DraftStore,
	geocoder ports.Geocoder,
	pricer services.Pricer,
	logger *slog.Logger,
) StartCheckoutCommandHandler {
	return StartCheckoutCommandHandler{
		uowFactory: uowFactory,
		draftStore: draftStore,
		resolver:   newRouteDistanceResolver(geocoder, logger),
		pricer:     pricer,
	}
}

// Handle opens the checkout and returns the draft id the client uses for the
// remaining steps.
func (h *StartCheckoutCommandHandler) Handle(ctx context.Context, cmd StartCheckoutCommand) (StartCheckoutResult, error) {
	if err := cmd.Validate(); err != nil {
		return StartCheckoutResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return StartCheckoutResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	distanceKm := h.resolver.resolve(ctx, cmd.PickupCountry(), cmd.DeliveryCountry())

	quote, err := h.pricer.Quote(cmd.WeightKg(), cmd.LengthCm(), cmd.WidthCm(), cmd.HeightCm(), distanceKm)
	if err != nil {
		return StartCheckoutResult{}, err
	}

	trackingID, err := h.uniqueTrackingID(ctx, uow.ParcelRepository())
	if err != nil {
		return StartCheckoutResult{}, err
	}

	tracked, err := parcel.NewParcel(
		kernel.NewUUID(), cmd.SenderID(),
		cmd.PickupCountry(), cmd.DeliveryCountry(),
		cmd.WeightKg(), cmd.LengthCm(), cmd.WidthCm(), cmd.HeightCm(),
	)
	if err != nil {
		return StartCheckoutResult{}, err
	}
	if err = tracked.AssignTracking(trackingID); err != nil {
		return StartCheckoutResult{}, err
	}

	partial, err := checkout.NewCheckout(
		kernel.NewUUID(), tracked.ID(),
		cmd.PickupCountry(), cmd.PickupZip(),
		cmd.DeliveryCountry(), cmd.DeliveryZip(),
	)
	if err != nil {
		return StartCheckoutResult{}, err
	}

	if err = uow.ParcelRepository().Add(ctx, tracked); err != nil {
		return StartCheckoutResult{}, err
	}
	if err = uow.CheckoutRepository().Add(ctx, partial); err != nil {
		return StartCheckoutResult{}, err
	}

	if quote.DistanceKm != nil {
		h.resolver.memoize(ctx, uow.DistanceRepository(),
			cmd.PickupCountry(), cmd.DeliveryCountry(), *quote.DistanceKm)
	}

	if err = uow.Commit(ctx); err != nil {
		return StartCheckoutResult{}, err
	}

	d, err := draft.NewDraft(trackingID, cmd.SenderID(), tracked.ID(), partial.ID(), draft.QuoteSnapshot{
		Price:        quote.Price,
		DistanceKm:   quote.DistanceKm,
		TransitHours: quote.TransitHours,
	})
	if err != nil {
		return StartCheckoutResult{}, err
	}

	if err = h.draftStore.Put(ctx, d); err != nil {
		return StartCheckoutResult{}, err
	}

	return StartCheckoutResult{
		DraftID:      trackingID,
		Price:        quote.Price,
		DistanceKm:   quote.DistanceKm,
		TransitHours: quote.TransitHours,
	}, nil
}

func (h *StartCheckoutCommandHandler) uniqueTrackingID(
	ctx context.Context,
	parcels ports.ParcelRepository,
) (kernel.TrackingID, error) {
	for range trackingIDAttempts {
		trackingID := kernel.NewTrackingID()

		exists, err := parcels.ExistsByTrackingID(ctx, trackingID)
		if err != nil {
			return kernel.TrackingID{}, err
		}
		if !exists {
			return trackingID, nil
		}
	}

	return kernel.TrackingID{}, ErrTrackingIDExhausted
}
