package ephemeris

import (
	"context"
	"errors"
	"fmt"
	"natal-position-service/internal/domain"
	"natal-position-service/internal/ports"
	"strings"
)

// ChainError lists the failure of every provider tried, in order.
type ChainError struct {
	Attempts []error
}

func (e *ChainError) Error() string {
	parts := make([]string, 0, len(e.Attempts))
	for i, err := range e.Attempts {
		parts = append(parts, fmt.Sprintf("provider %d: %v", i+1, err))
	}
	return "all ephemeris providers failed: " + strings.Join(parts, "; ")
}

// Unwrap exposes the individual failures to errors.Is / errors.As.
func (e *ChainError) Unwrap() []error { return e.Attempts }

// ChainProvider tries providers in order and returns the first answer.
type ChainProvider struct {
	providers []ports.EphemerisProvider
}

func NewChainProvider(providers ...ports.EphemerisProvider) (*ChainProvider, error) {
	kept := make([]ports.EphemerisProvider, 0, len(providers))
	for _, p := range providers {
		if p != nil {
			kept = append(kept, p)
		}
	}
	if len(kept) == 0 {
		return nil, errors.New("ephemeris chain: no providers")
	}
	return &ChainProvider{providers: kept}, nil
}

func (c *ChainProvider) EclipticLongitude(ctx context.Context, jd domain.JulianDay, code domain.BodyCode) (float64, error) {
	attempts := make([]error, 0, len(c.providers))
	for _, p := range c.providers {
		if err := ctx.Err(); err != nil {
			attempts = append(attempts, err)
			break
		}

		lon, err := p.EclipticLongitude(ctx, jd, code)
		if err == nil {
			return lon, nil
		}
		attempts = append(attempts, err)
	}
	return 0, &ChainError{Attempts: attempts}
}
