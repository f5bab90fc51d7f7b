package commands

import (
	"context"
	"log/slog"

	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/core/domain/model/parcel"
	"swiftdrop/internal/core/domain/services"
	"swiftdrop/internal/core/ports"
)

// QuoteResult carries the priced quote back to the caller. DistanceKm and
// TransitHours are nil when the route could not be resolved; the price then
// covers the base component only.
type QuoteResult struct {
	ParcelID     kernel.UUID
	Price        float64
	DistanceKm   *float64
	TransitHours *float64
}

// CalculateQuoteCommandHandler prices a prospective shipment and records a
// provisional parcel so the quote can later be turned into a checkout.
// Geocoding problems never fail the quote; the price degrades to the base
// component instead.
type CalculateQuoteCommandHandler struct {
	uowFactory QuoteUoWFactory
	resolver   routeDistanceResolver
	pricer     services.Pricer
}

// NewCalculateQuoteCommandHandler creates a handler for quote calculation.
func NewCalculateQuoteCommandHandler(
	uowFactory QuoteUoWFactory,
	geocoder ports.Geocoder,
	pricer services.Pricer,
	logger *slog.Logger,
) CalculateQuoteCommandHandler {
	return CalculateQuoteCommandHandler{
		uowFactory: uowFactory,
		resolver:   newRouteDistanceResolver(geocoder, logger),
		pricer:     pricer,
	}
}

// Handle prices the parcel and persists it in provisional state, together
// with the memoized route distance when one was resolved.
func (h *CalculateQuoteCommandHandler) Handle(ctx context.Context, cmd CalculateQuoteCommand) (QuoteResult, error) {
	if err := cmd.Validate(); err != nil {
		return QuoteResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return QuoteResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	distanceKm := h.resolver.resolve(ctx, cmd.PickupCountry(), cmd.DeliveryCountry())

	quote, err := h.pricer.Quote(cmd.WeightKg(), cmd.LengthCm(), cmd.WidthCm(), cmd.HeightCm(), distanceKm)
	if err != nil {
		return QuoteResult{}, err
	}

	provisional, err := parcel.NewParcel(
		kernel.NewUUID(), cmd.SenderID(),
		cmd.PickupCountry(), cmd.DeliveryCountry(),
		cmd.WeightKg(), cmd.LengthCm(), cmd.WidthCm(), cmd.HeightCm(),
	)
	if err != nil {
		return QuoteResult{}, err
	}

	if err = uow.ParcelRepository().Add(ctx, provisional); err != nil {
		return QuoteResult{}, err
	}

	if quote.DistanceKm != nil {
		h.resolver.memoize(ctx, uow.DistanceRepository(),
			cmd.PickupCountry(), cmd.DeliveryCountry(), *quote.DistanceKm)
	}

	if err = uow.Commit(ctx); err != nil {
		return QuoteResult{}, err
	}

	return QuoteResult{
		ParcelID:     provisional.ID(),
		Price:        quote.Price,
		DistanceKm:   quote.DistanceKm,
		TransitHours: quote.TransitHours,
	}, nil
}
