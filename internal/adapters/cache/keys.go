package cache

import (
	"fmt"
	"natal-position-service/internal/domain"
	"strconv"
)

// jdKey renders a Julian Day with 8 decimals (about 1ms), the same
// precision sent to the ephemeris service.
func jdKey(jd domain.JulianDay) string {
	return strconv.FormatFloat(float64(jd), 'f', 8, 64)
}

func longitudeKey(prefix string, jd domain.JulianDay, code domain.BodyCode) string {
	return fmt.Sprintf("%slon:%s:%d", prefix, jdKey(jd), code)
}

func placeKey(prefix, key string) string {
	return prefix + "place:" + key
}
