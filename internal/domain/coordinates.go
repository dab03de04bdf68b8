package domain

import "math"

// Immutable geographic coordinates (latitude, longitude) in degrees.
// Only carried through the chart today; house computation will need Lat.
type GeoCoordinate struct {
	Lat float64
	Lon float64
}

// Validate range-checks both components.
func (c GeoCoordinate) Validate() error {
	if math.IsNaN(c.Lat) || c.Lat < -90 || c.Lat > 90 {
		return &InvalidCoordinateError{Field: "latitude", Value: c.Lat}
	}
	if math.IsNaN(c.Lon) || c.Lon < -180 || c.Lon > 180 {
		return &InvalidCoordinateError{Field: "longitude", Value: c.Lon}
	}
	return nil
}

// Return coordinates rounded to 4 decimals, the precision geocoders report.
func (c GeoCoordinate) Rounded() GeoCoordinate {
	return GeoCoordinate{
		Lat: math.Round(c.Lat*1e4) / 1e4,
		Lon: math.Round(c.Lon*1e4) / 1e4,
	}
}

// PlaceQuery is a free-text place lookup, typically a city plus its country.
type PlaceQuery struct {
	City    string
	Country string
}

// Place is a resolved PlaceQuery.
type Place struct {
	Name       string
	Coordinate GeoCoordinate
}
