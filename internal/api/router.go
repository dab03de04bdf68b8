package api

import (
	"natal-position-service/internal/api/handlers"
	"natal-position-service/internal/ports"
	"net/http"
)

// Deps are the adapters the HTTP layer needs. Geocoder and Places may be nil;
// charts then require explicit coordinates.
type Deps struct {
	Provider       ports.EphemerisProvider
	Geocoder       ports.Geocoder
	Places         handlers.PlaceLister
	DefaultCountry string
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(d Deps) http.Handler {
	mux := http.NewServeMux()

	chartHandler := &handlers.ChartHandler{
		Provider:       d.Provider,
		Geocoder:       d.Geocoder,
		DefaultCountry: d.DefaultCountry,
	}
	compatHandler := &handlers.CompatibilityHandler{
		Provider:       d.Provider,
		Geocoder:       d.Geocoder,
		DefaultCountry: d.DefaultCountry,
	}
	placeHandler := &handlers.PlaceHandler{
		Geocoder:       d.Geocoder,
		Lister:         d.Places,
		DefaultCountry: d.DefaultCountry,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/charts", chartHandler.Create)
	mux.HandleFunc("/compatibility", compatHandler.Score)
	mux.HandleFunc("/places", placeHandler.Lookup)

	return requestIDMiddleware(loggingMiddleware(mux))
}
