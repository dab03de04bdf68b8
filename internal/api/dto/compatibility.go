package dto

import "natal-position-service/internal/services"

// CompatibilityRequest carries either two sign names or two chart requests.
type CompatibilityRequest struct {
	Sign1  string        `json:"sign1"`
	Sign2  string        `json:"sign2"`
	First  *ChartRequest `json:"first"`
	Second *ChartRequest `json:"second"`
}

type CompatibilityResponse struct {
	Sign1    string          `json:"sign1"`
	Sign2    string          `json:"sign2"`
	Element1 string          `json:"element1"`
	Element2 string          `json:"element2"`
	Score    int             `json:"score"`
	Rating   string          `json:"rating"`
	Charts   []ChartResponse `json:"charts,omitempty"`
}

func NewCompatibilityResponse(c services.Compatibility) CompatibilityResponse {
	return CompatibilityResponse{
		Sign1:    c.SignA.String(),
		Sign2:    c.SignB.String(),
		Element1: c.ElementA.String(),
		Element2: c.ElementB.String(),
		Score:    c.Score,
		Rating:   c.Rating,
	}
}

type PlaceResponse struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type ListPlacesResponse struct {
	Places []PlaceResponse `json:"places"`
}
