package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDate marks civil instants outside the supported calendar.
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidCoordinate marks latitudes or longitudes out of range.
	ErrInvalidCoordinate = errors.New("invalid coordinate")

	// ErrEphemerisSystem marks a provider that cannot answer for any body
	// (not configured, unreachable).
	ErrEphemerisSystem = errors.New("ephemeris system unavailable")

	// ErrPlaceNotFound is returned by geocoders when nothing matches.
	ErrPlaceNotFound = errors.New("place not found")
)

// InvalidDateError reports which component of a CivilInstant is out of range.
type InvalidDateError struct {
	Field string
	Value any
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date: %s out of range: %v", e.Field, e.Value)
}

func (e *InvalidDateError) Is(target error) bool { return target == ErrInvalidDate }

type InvalidCoordinateError struct {
	Field string
	Value float64
}

func (e *InvalidCoordinateError) Error() string {
	return fmt.Sprintf("invalid coordinate: %s out of range: %v", e.Field, e.Value)
}

func (e *InvalidCoordinateError) Is(target error) bool { return target == ErrInvalidCoordinate }

// EphemerisUnavailableError records a failed longitude lookup for one body.
// It is kept on the placeholder placement and never aborts a chart.
type EphemerisUnavailableError struct {
	Body CelestialBody
	Err  error
}

func (e *EphemerisUnavailableError) Error() string {
	return fmt.Sprintf("ephemeris unavailable for %s: %v", e.Body, e.Err)
}

func (e *EphemerisUnavailableError) Unwrap() error { return e.Err }
