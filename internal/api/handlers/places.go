package handlers

import (
	"natal-position-service/internal/api/dto"
	"natal-position-service/internal/domain"
	"natal-position-service/internal/platform/obs"
	"natal-position-service/internal/ports"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// PlaceLister exposes the places resolvable without a network lookup.
type PlaceLister interface {
	Suggestions() []domain.Place
}

type PlaceHandler struct {
	Geocoder       ports.Geocoder
	Lister         PlaceLister
	DefaultCountry string
}

// Lookup geocodes ?city=&country=. Without a city it lists the known places.
func (h *PlaceHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	if !allowOnly(w, r, http.MethodGet) {
		return
	}

	city := strings.TrimSpace(r.URL.Query().Get("city"))
	if city == "" {
		res := dto.ListPlacesResponse{Places: []dto.PlaceResponse{}}
		if h.Lister != nil {
			for _, p := range h.Lister.Suggestions() {
				res.Places = append(res.Places, placeResponse(p))
			}
		}
		writeJSON(w, r, http.StatusOK, res)
		return
	}

	if h.Geocoder == nil {
		writeError(w, r, http.StatusNotFound, "city lookup is not available")
		return
	}

	country := strings.TrimSpace(r.URL.Query().Get("country"))
	if country == "" {
		country = h.DefaultCountry
	}

	place, err := h.Geocoder.Geocode(r.Context(), domain.PlaceQuery{City: city, Country: country})
	if err != nil {
		rerr := geocodeError(city, err)
		if rerr.status != http.StatusNotFound {
			zap.L().Warn("geocode failed", zap.String("req_id", obs.RequestID(r.Context())), zap.Error(err))
		}
		writeError(w, r, rerr.status, rerr.msg)
		return
	}

	writeJSON(w, r, http.StatusOK, placeResponse(place))
}

func placeResponse(p domain.Place) dto.PlaceResponse {
	return dto.PlaceResponse{Name: p.Name, Latitude: p.Coordinate.Lat, Longitude: p.Coordinate.Lon}
}
