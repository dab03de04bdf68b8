package services

import (
	"context"
	"errors"
	"fmt"
	"natal-position-service/internal/domain"
	"natal-position-service/internal/ports"

	"golang.org/x/sync/errgroup"
)

var ErrSunUnavailable = errors.New("sun placement unavailable")

// Compatibility is the element-based score between two sun signs.
type Compatibility struct {
	SignA    domain.Sign
	SignB    domain.Sign
	ElementA domain.Element
	ElementB domain.Element
	Score    int
	Rating   string
}

// SignCompatibility scores two signs by their elements: same element 85,
// fire/air or earth/water pairings 75, anything else 60.
func SignCompatibility(a, b domain.Sign) (Compatibility, error) {
	ea, ok := a.Element()
	if !ok {
		return Compatibility{}, fmt.Errorf("sign compatibility: invalid sign %d", a)
	}
	eb, ok := b.Element()
	if !ok {
		return Compatibility{}, fmt.Errorf("sign compatibility: invalid sign %d", b)
	}

	score := 60
	switch {
	case ea == eb:
		score = 85
	case active(ea) == active(eb):
		score = 75
	}

	return Compatibility{
		SignA:    a,
		SignB:    b,
		ElementA: ea,
		ElementB: eb,
		Score:    score,
		Rating:   rating(score),
	}, nil
}

// Fire and air are the active elements; earth and water the receptive ones.
func active(e domain.Element) bool { return e == domain.Fire || e == domain.Air }

func rating(score int) string {
	switch {
	case score >= 80:
		return "Excelente"
	case score >= 70:
		return "Boa"
	default:
		return "Moderada"
	}
}

// CompareCharts computes both charts concurrently and scores their sun signs.
// The provider must be safe for concurrent use.
func CompareCharts(
	ctx context.Context,
	a, b ChartRequest,
	provider ports.EphemerisProvider,
) (Compatibility, [2]domain.NatalChart, error) {
	var charts [2]domain.NatalChart

	g, gctx := errgroup.WithContext(ctx)
	for i, req := range [2]ChartRequest{a, b} {
		i, req := i, req
		g.Go(func() error {
			c, err := CalculateChart(gctx, req, provider)
			if err != nil {
				return fmt.Errorf("chart %d: %w", i+1, err)
			}
			charts[i] = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Compatibility{}, charts, fmt.Errorf("compare charts: %w", err)
	}

	var suns [2]domain.Sign
	for i, c := range charts {
		sun, _ := c.Placement(domain.Sun)
		if sun.Failed() {
			return Compatibility{}, charts, fmt.Errorf("compare charts: chart %d: %w: %v", i+1, ErrSunUnavailable, sun.Err)
		}
		suns[i] = sun.Sign
	}

	comp, err := SignCompatibility(suns[0], suns[1])
	if err != nil {
		return Compatibility{}, charts, fmt.Errorf("compare charts: %w", err)
	}
	return comp, charts, nil
}
