package geocoding

import (
	"context"
	"fmt"
	"natal-position-service/internal/domain"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultCountry is assumed when a query names no country.
const DefaultCountry = "Brasil"

// StaticPlace is one entry of the offline place table.
type StaticPlace struct {
	Name    string  `yaml:"name"`
	Country string  `yaml:"country"`
	Lat     float64 `yaml:"lat"`
	Lon     float64 `yaml:"lon"`
}

// Capitals and large cities of Brazil, resolvable without network access.
var brazilianCities = []StaticPlace{
	{"Porto Alegre, RS", DefaultCountry, -30.0346, -51.2177},
	{"São Paulo, SP", DefaultCountry, -23.5505, -46.6333},
	{"Rio de Janeiro, RJ", DefaultCountry, -22.9068, -43.1729},
	{"Brasília, DF", DefaultCountry, -15.7939, -47.8828},
	{"Salvador, BA", DefaultCountry, -12.9714, -38.5014},
	{"Fortaleza, CE", DefaultCountry, -3.7172, -38.5433},
	{"Belo Horizonte, MG", DefaultCountry, -19.9167, -43.9345},
	{"Manaus, AM", DefaultCountry, -3.1190, -60.0217},
	{"Curitiba, PR", DefaultCountry, -25.4284, -49.2733},
	{"Recife, PE", DefaultCountry, -8.0476, -34.8770},
	{"Goiânia, GO", DefaultCountry, -16.6869, -49.2648},
	{"Belém, PA", DefaultCountry, -1.4558, -48.5039},
	{"Guarulhos, SP", DefaultCountry, -23.4538, -46.5333},
	{"Campinas, SP", DefaultCountry, -22.9099, -47.0626},
	{"São Luís, MA", DefaultCountry, -2.5307, -44.3068},
	{"Maceió, AL", DefaultCountry, -9.6498, -35.7089},
	{"Natal, RN", DefaultCountry, -5.7945, -35.2110},
	{"Campo Grande, MS", DefaultCountry, -20.4428, -54.6464},
	{"João Pessoa, PB", DefaultCountry, -7.1195, -34.8450},
	{"Teresina, PI", DefaultCountry, -5.0919, -42.8034},
	{"Florianópolis, SC", DefaultCountry, -27.5954, -48.5480},
	{"Vitória, ES", DefaultCountry, -20.3155, -40.3128},
	{"Cuiabá, MT", DefaultCountry, -15.6014, -56.0979},
}

// StaticGeocoder resolves places from an in-memory table. A query matches an
// entry by its full name ("Natal, RN") or by the city part alone ("natal").
type StaticGeocoder struct {
	places  []StaticPlace
	byKey   map[string]int
	country string
}

// NewStaticGeocoder indexes the built-in Brazilian cities plus extra.
// Later entries win on key collisions.
func NewStaticGeocoder(defaultCountry string, extra ...StaticPlace) (*StaticGeocoder, error) {
	if strings.TrimSpace(defaultCountry) == "" {
		defaultCountry = DefaultCountry
	}

	g := &StaticGeocoder{byKey: map[string]int{}, country: defaultCountry}
	for _, p := range append(append([]StaticPlace(nil), brazilianCities...), extra...) {
		if err := g.add(p); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func (g *StaticGeocoder) add(p StaticPlace) error {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return fmt.Errorf("static place: empty name")
	}
	if err := (domain.GeoCoordinate{Lat: p.Lat, Lon: p.Lon}).Validate(); err != nil {
		return fmt.Errorf("static place %q: %w", name, err)
	}
	if strings.TrimSpace(p.Country) == "" {
		p.Country = g.country
	}

	g.places = append(g.places, p)
	idx := len(g.places) - 1

	g.byKey[QueryKey(name, p.Country)] = idx
	if city, _, ok := strings.Cut(name, ","); ok {
		g.byKey[QueryKey(city, p.Country)] = idx
	}
	return nil
}

// LoadStaticPlaces reads extra places from a YAML list:
//
//	- name: Lisboa
//	  country: Portugal
//	  lat: 38.7223
//	  lon: -9.1393
func LoadStaticPlaces(path string) ([]StaticPlace, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load static places: read %q: %w", path, err)
	}

	var places []StaticPlace
	if err := yaml.Unmarshal(data, &places); err != nil {
		return nil, fmt.Errorf("load static places: parse yaml: %w", err)
	}
	return places, nil
}

func (g *StaticGeocoder) Geocode(ctx context.Context, q domain.PlaceQuery) (domain.Place, error) {
	country := q.Country
	if strings.TrimSpace(country) == "" {
		country = g.country
	}

	idx, ok := g.byKey[QueryKey(q.City, country)]
	if !ok {
		return domain.Place{}, fmt.Errorf("static geocoder %q: %w", q.City, domain.ErrPlaceNotFound)
	}

	p := g.places[idx]
	return domain.Place{Name: p.Name, Coordinate: domain.GeoCoordinate{Lat: p.Lat, Lon: p.Lon}}, nil
}

// Suggestions lists every known place in table order.
func (g *StaticGeocoder) Suggestions() []domain.Place {
	out := make([]domain.Place, 0, len(g.places))
	for _, p := range g.places {
		out = append(out, domain.Place{Name: p.Name, Coordinate: domain.GeoCoordinate{Lat: p.Lat, Lon: p.Lon}})
	}
	return out
}
