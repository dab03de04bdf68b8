package dto

import (
	"bytes"
	"encoding/json"
	"natal-position-service/internal/domain"
)

// ChartRequest is the body of POST /charts. Coordinates win over the city
// when both are given.
type ChartRequest struct {
	Date      string   `json:"date"`
	Time      string   `json:"time"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	City      string   `json:"city"`
	Country   string   `json:"country"`
}

type PositionResponse struct {
	Sign      string  `json:"sign"`
	Degree    float64 `json:"degree"`
	Longitude float64 `json:"longitude"`
	Error     string  `json:"error,omitempty"`
}

// Positions marshals as a JSON object keyed by body name, in roster order.
type Positions []NamedPosition

type NamedPosition struct {
	Body string
	PositionResponse
}

func (p Positions) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, np := range p {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(np.Body)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(np.PositionResponse)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

type LocationResponse struct {
	Name      string  `json:"name,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type ChartResponse struct {
	JulianDay float64          `json:"julian_day"`
	Location  LocationResponse `json:"location"`
	Positions Positions        `json:"positions"`
	Failed    []string         `json:"failed,omitempty"`
	Degraded  bool             `json:"degraded"`
}

// NewChartResponse renders a chart with 2-decimal display values.
func NewChartResponse(c domain.NatalChart, placeName string) ChartResponse {
	loc := c.Location()
	res := ChartResponse{
		JulianDay: float64(c.JulianDay()),
		Location:  LocationResponse{Name: placeName, Latitude: loc.Lat, Longitude: loc.Lon},
		Degraded:  c.Degraded(),
	}

	for _, p := range c.Placements() {
		pos := PositionResponse{
			Sign:      p.Sign.String(),
			Degree:    p.RoundedDegree(),
			Longitude: p.RoundedLongitude(),
		}
		if p.Failed() {
			pos.Error = p.Err.Error()
		}
		res.Positions = append(res.Positions, NamedPosition{Body: p.Body.Name(), PositionResponse: pos})
	}

	for _, b := range c.Failed() {
		res.Failed = append(res.Failed, b.Name())
	}
	return res
}
