package schedule

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrMalformedSchedule = errors.New("malformed opening hours")
	ErrInvalidInterval   = errors.New("slot interval must be positive")
)

const hourLayout = "15:04"

// ParseOpeningHours combines the date with every HH:MM token of a weekday
// schedule. It returns no boundaries when the resource is closed that day,
// two for "HH:MM-HH:MM" and four for "HH:MM-HH:MM-HH:MM-HH:MM".
func ParseOpeningHours(hours string, date time.Time) ([]time.Time, error) {
	hours = strings.TrimSpace(hours)

	switch strings.Count(hours, "-") {
	case 0:
		return nil, nil
	case 1, 3:
	default:
		return nil, fmt.Errorf("%w: %q has an unexpected number of separators", ErrMalformedSchedule, hours)
	}

	tokens := strings.Split(hours, "-")
	boundaries := make([]time.Time, 0, len(tokens))

	for _, tok := range tokens {
		hm, err := time.Parse(hourLayout, tok)
		if err != nil || len(tok) != len(hourLayout) {
			return nil, fmt.Errorf("%w: %q is not HH:MM in %q", ErrMalformedSchedule, tok, hours)
		}

		b := time.Date(
			date.Year(), date.Month(), date.Day(),
			hm.Hour(), hm.Minute(), 0, 0,
			date.Location(),
		)

		if n := len(boundaries); n > 0 && b.Before(boundaries[n-1]) {
			return nil, fmt.Errorf("%w: %q is not in ascending order", ErrMalformedSchedule, hours)
		}

		boundaries = append(boundaries, b)
	}

	return boundaries, nil
}

// ValidateOpeningHours is the write-time check. It is stricter than
// ParseOpeningHours: only the empty string means closed, any other text
// must carry one or three separators.
func ValidateOpeningHours(hours string) error {
	trimmed := strings.TrimSpace(hours)
	if trimmed == "" {
		return nil
	}
	if !strings.Contains(trimmed, "-") {
		return fmt.Errorf("%w: %q has no separator", ErrMalformedSchedule, hours)
	}
	_, err := ParseOpeningHours(trimmed, time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC))
	return err
}

// WorkingIntervals splits parsed boundaries into the intervals slots are cut
// from. Four boundaries produce open/break/close where the break is blocked.
func WorkingIntervals(boundaries []time.Time) []Interval {
	switch len(boundaries) {
	case 2:
		return []Interval{
			{Start: boundaries[0], End: boundaries[1], Free: true},
		}
	case 4:
		return []Interval{
			{Start: boundaries[0], End: boundaries[1], Free: true},
			{Start: boundaries[1], End: boundaries[2], Free: false},
			{Start: boundaries[2], End: boundaries[3], Free: true},
		}
	default:
		return nil
	}
}
