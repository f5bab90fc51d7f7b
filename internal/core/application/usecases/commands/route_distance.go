package commands

import (
	"context"
	"log/slog"

	"swiftdrop/internal/core/domain/model/distance"
	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/core/ports"
)

// routeDistanceResolver turns a country pair into a great-circle distance.
// Geocoding failures are logged and yield no distance; pricing then falls
// back to the base component.
type routeDistanceResolver struct {
	geocoder ports.Geocoder
	logger   *slog.Logger
}

func newRouteDistanceResolver(geocoder ports.Geocoder, logger *slog.Logger) routeDistanceResolver {
	return routeDistanceResolver{geocoder: geocoder, logger: logger}
}

// resolve returns the distance between two countries, or nil when either
// country cannot be geocoded. Distances are never read back from the memoized
// records; those exist for reporting only.
func (r routeDistanceResolver) resolve(
	ctx context.Context,
	pickupCountry string,
	deliveryCountry string,
) *float64 {
	if km, ok := r.geocode(ctx, pickupCountry, deliveryCountry); ok {
		return &km
	}

	return nil
}

// memoize stores a freshly resolved distance, overwriting any previous value.
func (r routeDistanceResolver) memoize(
	ctx context.Context,
	distances ports.DistanceRepository,
	pickupCountry string,
	deliveryCountry string,
	distanceKm float64,
) {
	record, err := distance.NewCountryDistance(pickupCountry, deliveryCountry, distanceKm)
	if err != nil {
		r.logger.WarnContext(ctx, "skipping distance memoization",
			slog.String("pickup", pickupCountry),
			slog.String("delivery", deliveryCountry),
			slog.Any("error", err))
		return
	}

	if err = distances.Upsert(ctx, record); err != nil {
		r.logger.WarnContext(ctx, "failed to memoize distance",
			slog.String("pickup", pickupCountry),
			slog.String("delivery", deliveryCountry),
			slog.Any("error", err))
	}
}

func (r routeDistanceResolver) geocode(ctx context.Context, pickupCountry, deliveryCountry string) (float64, bool) {
	origin, ok := r.resolvePlace(ctx, pickupCountry)
	if !ok {
		return 0, false
	}

	destination, ok := r.resolvePlace(ctx, deliveryCountry)
	if !ok {
		return 0, false
	}

	km, err := origin.DistanceKm(destination)
	if err != nil {
		r.logger.WarnContext(ctx, "distance calculation failed, pricing without distance",
			slog.String("pickup", pickupCountry),
			slog.String("delivery", deliveryCountry),
			slog.Any("error", err))
		return 0, false
	}

	return km, true
}

func (r routeDistanceResolver) resolvePlace(ctx context.Context, place string) (kernel.GeoPoint, bool) {
	point, found, err := r.geocoder.Resolve(ctx, place)
	if err != nil {
		r.logger.WarnContext(ctx, "geocoding failed, pricing without distance",
			slog.String("place", place),
			slog.Any("error", err))
		return kernel.GeoPoint{}, false
	}
	if !found {
		r.logger.InfoContext(ctx, "place not found by geocoder",
			slog.String("place", place))
		return kernel.GeoPoint{}, false
	}

	return point, true
}
