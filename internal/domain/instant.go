package domain

import "time"

const (
	MinYear = 1
	MaxYear = 9999
)

// CivilInstant is a Gregorian calendar date plus a clock time.
// No timezone conversion is applied: the clock time is taken to already be
// in the frame the ephemeris expects.
type CivilInstant struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Second float64
}

// CivilInstantFromTime reads the wall-clock fields of t in its own location.
func CivilInstantFromTime(t time.Time) CivilInstant {
	return CivilInstant{
		Year:   t.Year(),
		Month:  int(t.Month()),
		Day:    t.Day(),
		Hour:   t.Hour(),
		Minute: t.Minute(),
		Second: float64(t.Second()) + float64(t.Nanosecond())/1e9,
	}
}

// DecimalHour folds minutes and seconds into a single fractional hour.
func (c CivilInstant) DecimalHour() float64 {
	return float64(c.Hour) + float64(c.Minute)/60.0 + c.Second/3600.0
}

// Validate checks every component against the proleptic Gregorian calendar.
func (c CivilInstant) Validate() error {
	if c.Year < MinYear || c.Year > MaxYear {
		return &InvalidDateError{Field: "year", Value: c.Year}
	}
	if c.Month < 1 || c.Month > 12 {
		return &InvalidDateError{Field: "month", Value: c.Month}
	}
	if c.Day < 1 || c.Day > DaysIn(c.Year, c.Month) {
		return &InvalidDateError{Field: "day", Value: c.Day}
	}
	if c.Hour < 0 || c.Hour > 23 {
		return &InvalidDateError{Field: "hour", Value: c.Hour}
	}
	if c.Minute < 0 || c.Minute > 59 {
		return &InvalidDateError{Field: "minute", Value: c.Minute}
	}
	// Written as a negated range so NaN is rejected too.
	if !(c.Second >= 0 && c.Second < 60) {
		return &InvalidDateError{Field: "second", Value: c.Second}
	}
	return nil
}

func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysIn returns the number of days in month of year, or 0 for an invalid month.
func DaysIn(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	}
	return 0
}

// JulianDay is a continuous count of days used as the ephemeris time scale.
type JulianDay float64
