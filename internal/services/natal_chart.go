package services

import (
	"context"
	"fmt"
	"natal-position-service/internal/domain"
	"natal-position-service/internal/platform/obs"
	"natal-position-service/internal/ports"
)

type ChartRequest struct {
	Instant  domain.CivilInstant
	Location domain.GeoCoordinate
}

// CalculateChart validates the request, normalizes the civil time and
// resolves every roster body. Invalid dates and coordinates are returned
// before the provider is touched; ephemeris failures only degrade the chart.
func CalculateChart(
	ctx context.Context,
	req ChartRequest,
	provider ports.EphemerisProvider,
) (_ domain.NatalChart, err error) {
	defer obs.Time(ctx, "chart.Calculate")(&err)

	if err := req.Location.Validate(); err != nil {
		return domain.NatalChart{}, fmt.Errorf("calculate chart: %w", err)
	}

	jd, err := ToJulianDay(req.Instant)
	if err != nil {
		return domain.NatalChart{}, fmt.Errorf("calculate chart: %w", err)
	}

	return computePositions(ctx, jd, req.Location, provider), nil
}
