package ephemeris

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"natal-position-service/internal/domain"
	"natal-position-service/internal/platform/httpx"
	"natal-position-service/internal/platform/obs"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

type longitudeResponse struct {
	Longitude *float64 `json:"longitude"`
	Error     string   `json:"error"`
}

// HTTPProvider implements EphemerisProvider against a remote ephemeris
// service exposing
//
//	GET {base}/v1/longitude?jd=<julian day>&body=<body code>
//	200 {"longitude": <degrees>}
//
// Transport failures are reported as domain.ErrEphemerisSystem so callers can
// tell an unreachable service from a body the service refuses.
// The provider is safe for concurrent use.
type HTTPProvider struct {
	client  *httpx.Client
	baseURL string
}

func NewHTTPProvider(baseURL, apiKey string, timeout time.Duration) (*HTTPProvider, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("ephemeris base url is empty")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("parse ephemeris base url: %w", err)
	}

	client := httpx.NewClient(timeout)
	if apiKey != "" {
		client.Headers.Set("Authorization", apiKey)
	}

	return &HTTPProvider{client: client, baseURL: baseURL}, nil
}

// WithMaxAttempts caps the number of tries per request, including the first.
func (p *HTTPProvider) WithMaxAttempts(n int) *HTTPProvider {
	if n > 0 {
		p.client.MaxAttempts = n
	}
	return p
}

// WithBackoff overrides the initial retry backoff.
func (p *HTTPProvider) WithBackoff(d time.Duration) *HTTPProvider {
	p.client.Backoff = d
	return p
}

func (p *HTTPProvider) EclipticLongitude(
	ctx context.Context,
	jd domain.JulianDay,
	code domain.BodyCode,
) (_ float64, err error) {
	defer obs.Time(ctx, "ephemeris.http.EclipticLongitude")(&err)

	endpoint := p.baseURL + "/v1/longitude"
	q := url.Values{}
	q.Set("jd", strconv.FormatFloat(float64(jd), 'f', 8, 64))
	q.Set("body", strconv.Itoa(int(code)))

	resp, err := p.client.DoWithRetry(ctx, func() (*http.Request, error) {
		req, err := p.client.NewRequest(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		req.URL.RawQuery = q.Encode()
		return req, nil
	})
	if err != nil {
		if httpx.Unreachable(err) {
			return 0, fmt.Errorf("ephemeris request body=%d: %w: %v", code, domain.ErrEphemerisSystem, err)
		}
		return 0, fmt.Errorf("ephemeris request body=%d: %w", code, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var decoded longitudeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return 0, fmt.Errorf("decode longitude response: %w", err)
	}

	if decoded.Error != "" {
		return 0, fmt.Errorf("ephemeris body=%d: %s", code, decoded.Error)
	}
	if decoded.Longitude == nil {
		return 0, fmt.Errorf("ephemeris body=%d: response has no longitude", code)
	}
	if math.IsNaN(*decoded.Longitude) || math.IsInf(*decoded.Longitude, 0) {
		return 0, fmt.Errorf("ephemeris body=%d: non-finite longitude", code)
	}

	return *decoded.Longitude, nil
}
