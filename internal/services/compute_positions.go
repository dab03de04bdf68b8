package services

import (
	"context"
	"fmt"
	"math"
	"natal-position-service/internal/domain"
	"natal-position-service/internal/platform/obs"
	"natal-position-service/internal/ports"

	"go.uber.org/zap"
)

// ComputePositions resolves every roster body at jd in a single pass.
//
// A failed lookup never aborts the chart: the body gets a placeholder carrying
// a *domain.EphemerisUnavailableError and the remaining bodies are still
// resolved. The returned chart therefore always has one entry per roster
// body. A nil provider behaves like an ephemeris that is entirely down.
//
// No timeout is applied here; ctx is handed to the provider untouched.
func ComputePositions(ctx context.Context, jd domain.JulianDay, provider ports.EphemerisProvider) domain.NatalChart {
	return computePositions(ctx, jd, domain.GeoCoordinate{}, provider)
}

func computePositions(
	ctx context.Context,
	jd domain.JulianDay,
	loc domain.GeoCoordinate,
	provider ports.EphemerisProvider,
) domain.NatalChart {
	placements := make([]domain.SignPlacement, 0, domain.RosterSize)

	for _, body := range domain.Roster {
		p, err := resolveBody(ctx, jd, body, provider)
		if err != nil {
			zap.L().Warn("ephemeris lookup failed",
				zap.String("req_id", obs.RequestID(ctx)),
				zap.String("body", body.Name()),
				zap.Float64("jd", float64(jd)),
				zap.Error(err),
			)
			p = domain.Placeholder(body, &domain.EphemerisUnavailableError{Body: body, Err: err})
		}
		placements = append(placements, p)
	}

	return domain.NewNatalChart(jd, loc, placements)
}

func resolveBody(
	ctx context.Context,
	jd domain.JulianDay,
	body domain.CelestialBody,
	provider ports.EphemerisProvider,
) (domain.SignPlacement, error) {
	if provider == nil {
		return domain.SignPlacement{}, fmt.Errorf("no ephemeris provider configured: %w", domain.ErrEphemerisSystem)
	}

	lon, err := provider.EclipticLongitude(ctx, jd, body.Code())
	if err != nil {
		return domain.SignPlacement{}, err
	}
	if math.IsNaN(lon) || math.IsInf(lon, 0) {
		return domain.SignPlacement{}, fmt.Errorf("non-finite longitude %v", lon)
	}

	return ClassifyLongitude(body, lon), nil
}
