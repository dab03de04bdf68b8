package ephemeris

import (
	"context"
	"fmt"
	"natal-position-service/internal/domain"
	"sync"
)

// MockProvider answers from a fixed table, independent of the Julian Day.
// It records every call and is safe for concurrent use.
type MockProvider struct {
	mu         sync.Mutex
	longitudes map[domain.BodyCode]float64
	failures   map[domain.BodyCode]error
	calls      []domain.BodyCode
}

func NewMockProvider(longitudes map[domain.BodyCode]float64) *MockProvider {
	m := make(map[domain.BodyCode]float64, len(longitudes))
	for k, v := range longitudes {
		m[k] = v
	}
	return &MockProvider{longitudes: m, failures: map[domain.BodyCode]error{}}
}

// Fail makes every lookup for code return err.
func (p *MockProvider) Fail(code domain.BodyCode, err error) *MockProvider {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.failures[code] = err
	return p
}

func (p *MockProvider) EclipticLongitude(ctx context.Context, jd domain.JulianDay, code domain.BodyCode) (float64, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.calls = append(p.calls, code)

	if err, ok := p.failures[code]; ok {
		return 0, err
	}
	lon, ok := p.longitudes[code]
	if !ok {
		return 0, fmt.Errorf("missing body code %d", code)
	}
	return lon, nil
}

// Calls returns the body codes requested so far, in call order.
func (p *MockProvider) Calls() []domain.BodyCode {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]domain.BodyCode(nil), p.calls...)
}
