package services

import (
	"math"
	"natal-position-service/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyLongitudeBoundaries(t *testing.T) {
	tests := []struct {
		lon        float64
		wantSign   domain.Sign
		wantDegree float64
	}{
		{0, domain.Aries, 0},
		{29.999999, domain.Aries, 29.999999},
		{30.0, domain.Taurus, 0},
		{280.5, domain.Capricorn, 10.5},
		{359.999999, domain.Pisces, 29.999999},
		{360.0, domain.Aries, 0},
		{720.25, domain.Aries, 0.25},
		{-0.5, domain.Pisces, 29.5},
		{-360, domain.Aries, 0},
		{-1e-20, domain.Aries, 0},
	}

	for _, tt := range tests {
		p := ClassifyLongitude(domain.Sun, tt.lon)
		assert.Equal(t, tt.wantSign, p.Sign, "lon=%v", tt.lon)
		assert.InDelta(t, tt.wantDegree, p.DegreeInSign, 1e-9, "lon=%v", tt.lon)
		assert.GreaterOrEqual(t, p.Longitude, 0.0)
		assert.Less(t, p.Longitude, 360.0)
		assert.False(t, p.Failed())
	}
}

func TestClassifyLongitudeRoundTrip(t *testing.T) {
	for l := 0.0; l < 360; l += 0.0137 {
		p := ClassifyLongitude(domain.Moon, l)

		assert.True(t, p.Sign.Valid())
		assert.GreaterOrEqual(t, p.DegreeInSign, 0.0)
		assert.Less(t, p.DegreeInSign, 30.0)
		if math.Abs(p.Sign.Start()+p.DegreeInSign-l) > 1e-6 {
			t.Fatalf("round trip lon=%v: sign=%d degree=%v", l, p.Sign, p.DegreeInSign)
		}
	}
}

func TestClassifyLongitudeKeepsUnroundedValues(t *testing.T) {
	p := ClassifyLongitude(domain.Venus, 200.123456)

	assert.Equal(t, domain.Libra, p.Sign)
	assert.InDelta(t, 20.123456, p.DegreeInSign, 1e-9)
	assert.Equal(t, 20.12, p.RoundedDegree())
	assert.Equal(t, 200.12, p.RoundedLongitude())
}
