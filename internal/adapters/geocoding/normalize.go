package geocoding

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeKey folds accents, case and whitespace so "São  Paulo" and
// "sao paulo" share a cache entry.
func NormalizeKey(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(strings.Join(strings.Fields(folded), " "))
}

// QueryKey is the cache key of a place query.
func QueryKey(city, country string) string {
	return NormalizeKey(city) + "|" + NormalizeKey(country)
}
