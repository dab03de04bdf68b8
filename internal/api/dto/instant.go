package dto

import (
	"errors"
	"fmt"
	"natal-position-service/internal/domain"
	"strconv"
	"strings"
)

var ErrMalformedInstant = errors.New("malformed date or time")

// ParseInstant reads "YYYY-MM-DD" and "HH:MM[:SS[.fff]]" into a CivilInstant.
// Only the shape is checked here; calendar ranges are validated by the chart
// calculation so "1990-02-30" surfaces as an invalid date, not a parse error.
func ParseInstant(date, clock string) (domain.CivilInstant, error) {
	dparts := strings.Split(strings.TrimSpace(date), "-")
	if len(dparts) != 3 {
		return domain.CivilInstant{}, fmt.Errorf("date %q: %w", date, ErrMalformedInstant)
	}
	var ymd [3]int
	for i, part := range dparts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return domain.CivilInstant{}, fmt.Errorf("date %q: %w", date, ErrMalformedInstant)
		}
		ymd[i] = n
	}

	tparts := strings.Split(strings.TrimSpace(clock), ":")
	if len(tparts) < 2 || len(tparts) > 3 {
		return domain.CivilInstant{}, fmt.Errorf("time %q: %w", clock, ErrMalformedInstant)
	}
	hour, err := strconv.Atoi(tparts[0])
	if err != nil {
		return domain.CivilInstant{}, fmt.Errorf("time %q: %w", clock, ErrMalformedInstant)
	}
	minute, err := strconv.Atoi(tparts[1])
	if err != nil {
		return domain.CivilInstant{}, fmt.Errorf("time %q: %w", clock, ErrMalformedInstant)
	}
	var second float64
	if len(tparts) == 3 {
		second, err = strconv.ParseFloat(tparts[2], 64)
		if err != nil {
			return domain.CivilInstant{}, fmt.Errorf("time %q: %w", clock, ErrMalformedInstant)
		}
	}

	return domain.CivilInstant{
		Year:   ymd[0],
		Month:  ymd[1],
		Day:    ymd[2],
		Hour:   hour,
		Minute: minute,
		Second: second,
	}, nil
}
