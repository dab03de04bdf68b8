package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNatalChartFillsMissingBodies(t *testing.T) {
	loc := GeoCoordinate{Lat: -30.03, Lon: -51.23}
	chart := NewNatalChart(2447893.0, loc, []SignPlacement{
		{Body: Sun, Sign: Capricorn, DegreeInSign: 10.5, Longitude: 280.5},
	})

	all := chart.Placements()
	require.Len(t, all, RosterSize)
	assert.Equal(t, Sun, all[0].Body)
	assert.False(t, all[0].Failed())

	for _, p := range all[1:] {
		assert.True(t, p.Failed(), "%s should be a placeholder", p.Body)
		assert.Equal(t, SignError, p.Sign)
		assert.True(t, errors.Is(p.Err, ErrEphemerisSystem))
	}

	assert.Equal(t, JulianDay(2447893.0), chart.JulianDay())
	assert.Equal(t, loc, chart.Location())
	assert.False(t, chart.Degraded())
	assert.Len(t, chart.Failed(), RosterSize-1)
}

func TestNatalChartPlacementsAreCopies(t *testing.T) {
	chart := NewNatalChart(0, GeoCoordinate{}, []SignPlacement{
		{Body: Moon, Sign: Leo, DegreeInSign: 1, Longitude: 121},
	})

	ps := chart.Placements()
	ps[1].Sign = Pisces

	moon, ok := chart.Placement(Moon)
	require.True(t, ok)
	assert.Equal(t, Leo, moon.Sign)

	_, ok = chart.Placement(CelestialBody(99))
	assert.False(t, ok)
}

func TestNatalChartDegraded(t *testing.T) {
	chart := NewNatalChart(0, GeoCoordinate{}, nil)
	assert.True(t, chart.Degraded())
}

func TestSignPlacementRounding(t *testing.T) {
	p := SignPlacement{Body: Venus, Sign: Libra, DegreeInSign: 12.3456, Longitude: 192.3456}
	assert.Equal(t, 12.35, p.RoundedDegree())
	assert.Equal(t, 192.35, p.RoundedLongitude())
	assert.Equal(t, 12.3456, p.DegreeInSign)
}
