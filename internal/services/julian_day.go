package services

import (
	"fmt"
	"natal-position-service/internal/domain"
)

// ToJulianDay converts a Gregorian civil instant to a Julian Day.
//
// The integer day number is computed with the Fliegel–Van Flandern closed
// form in integer arithmetic, so only the time-of-day fraction is subject to
// floating rounding. Julian Day numbers start at noon, hence the -0.5.
func ToJulianDay(instant domain.CivilInstant) (domain.JulianDay, error) {
	if err := instant.Validate(); err != nil {
		return 0, fmt.Errorf("to julian day: %w", err)
	}

	jdn := julianDayNumber(instant.Year, instant.Month, instant.Day)
	jd := float64(jdn) - 0.5 + instant.DecimalHour()/24.0

	return domain.JulianDay(jd), nil
}

// julianDayNumber returns the Julian Day Number of the day starting at noon
// on the given Gregorian date. Inputs must already be validated.
func julianDayNumber(year, month, day int) int64 {
	a := int64((14 - month) / 12)
	y := int64(year) + 4800 - a
	m := int64(month) + 12*a - 3

	return int64(day) + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045
}
