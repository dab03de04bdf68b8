package handlers

import (
	"context"
	"errors"
	"fmt"
	"natal-position-service/internal/api/dto"
	"natal-position-service/internal/domain"
	"natal-position-service/internal/ports"
	"natal-position-service/internal/services"
	"net/http"
	"strings"
)

// requestError carries the HTTP status a handler should answer with.
type requestError struct {
	status int
	msg    string
}

func (e *requestError) Error() string { return e.msg }

func badRequest(format string, args ...any) *requestError {
	return &requestError{status: http.StatusBadRequest, msg: fmt.Sprintf(format, args...)}
}

// chartResolver turns a chart DTO into a service request, geocoding the city
// when no coordinates are given.
type chartResolver struct {
	Geocoder       ports.Geocoder
	DefaultCountry string
}

func (cr chartResolver) resolve(ctx context.Context, in dto.ChartRequest) (services.ChartRequest, string, *requestError) {
	instant, err := dto.ParseInstant(in.Date, in.Time)
	if err != nil {
		return services.ChartRequest{}, "", badRequest("date must be YYYY-MM-DD and time HH:MM[:SS]")
	}

	switch {
	case in.Latitude != nil && in.Longitude != nil:
		loc := domain.GeoCoordinate{Lat: *in.Latitude, Lon: *in.Longitude}
		return services.ChartRequest{Instant: instant, Location: loc}, "", nil
	case in.Latitude != nil || in.Longitude != nil:
		return services.ChartRequest{}, "", badRequest("latitude and longitude must be given together")
	}

	city := strings.TrimSpace(in.City)
	if city == "" {
		return services.ChartRequest{}, "", badRequest("latitude/longitude or city is required")
	}
	if cr.Geocoder == nil {
		return services.ChartRequest{}, "", badRequest("city lookup is not available; send latitude and longitude")
	}

	country := strings.TrimSpace(in.Country)
	if country == "" {
		country = cr.DefaultCountry
	}

	place, err := cr.Geocoder.Geocode(ctx, domain.PlaceQuery{City: city, Country: country})
	if err != nil {
		return services.ChartRequest{}, "", geocodeError(city, err)
	}
	return services.ChartRequest{Instant: instant, Location: place.Coordinate}, place.Name, nil
}

func geocodeError(city string, err error) *requestError {
	if errors.Is(err, domain.ErrPlaceNotFound) {
		return &requestError{status: http.StatusNotFound, msg: fmt.Sprintf("place %q not found", city)}
	}
	return &requestError{status: http.StatusBadGateway, msg: "geocoding failed"}
}

// chartError maps a chart calculation failure to a response.
func chartError(err error) *requestError {
	switch {
	case errors.Is(err, domain.ErrInvalidDate), errors.Is(err, domain.ErrInvalidCoordinate):
		return badRequest("%v", err)
	default:
		return &requestError{status: http.StatusInternalServerError, msg: "chart calculation failed"}
	}
}
