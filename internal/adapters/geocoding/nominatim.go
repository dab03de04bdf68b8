package geocoding

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"natal-position-service/internal/domain"
	"natal-position-service/internal/platform/httpx"
	"natal-position-service/internal/platform/obs"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const DefaultNominatimURL = "https://nominatim.openstreetmap.org"

type nominatimResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// NominatimGeocoder resolves "city, country" through the OpenStreetMap
// Nominatim search API. Nominatim requires an identifying User-Agent.
type NominatimGeocoder struct {
	client  *httpx.Client
	baseURL string
}

func NewNominatimGeocoder(baseURL, userAgent string, timeout time.Duration) (*NominatimGeocoder, error) {
	if strings.TrimSpace(userAgent) == "" {
		return nil, errors.New("nominatim user agent is empty")
	}

	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultNominatimURL
	}

	client := httpx.NewClient(timeout)
	client.Headers.Set("User-Agent", userAgent)

	return &NominatimGeocoder{client: client, baseURL: baseURL}, nil
}

func (n *NominatimGeocoder) WithBackoff(d time.Duration) *NominatimGeocoder {
	n.client.Backoff = d
	return n
}

func (n *NominatimGeocoder) Geocode(ctx context.Context, q domain.PlaceQuery) (_ domain.Place, err error) {
	defer obs.Time(ctx, "nominatim.Geocode")(&err)

	city := strings.TrimSpace(q.City)
	if city == "" {
		return domain.Place{}, errors.New("geocode: city must be non-empty")
	}

	text := city
	if c := strings.TrimSpace(q.Country); c != "" {
		text = city + ", " + c
	}

	endpoint := n.baseURL + "/search"
	params := url.Values{}
	params.Set("q", text)
	params.Set("format", "json")
	params.Set("limit", "1")

	resp, err := n.client.DoWithRetry(ctx, func() (*http.Request, error) {
		req, err := n.client.NewRequest(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		req.URL.RawQuery = params.Encode()
		return req, nil
	})
	if err != nil {
		return domain.Place{}, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	var decoded []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.Place{}, fmt.Errorf("decode geocode response: %w", err)
	}

	if len(decoded) == 0 {
		return domain.Place{}, fmt.Errorf("no geocode results for %q: %w", text, domain.ErrPlaceNotFound)
	}

	lat, err := strconv.ParseFloat(decoded[0].Lat, 64)
	if err != nil {
		return domain.Place{}, fmt.Errorf("invalid latitude for %q: %w", text, err)
	}
	lon, err := strconv.ParseFloat(decoded[0].Lon, 64)
	if err != nil {
		return domain.Place{}, fmt.Errorf("invalid longitude for %q: %w", text, err)
	}

	coord := domain.GeoCoordinate{Lat: lat, Lon: lon}.Rounded()
	if err := coord.Validate(); err != nil {
		return domain.Place{}, fmt.Errorf("geocode %q: %w", text, err)
	}

	name := decoded[0].DisplayName
	if name == "" {
		name = text
	}

	return domain.Place{Name: name, Coordinate: coord}, nil
}
