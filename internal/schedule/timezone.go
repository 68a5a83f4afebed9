package schedule

import (
	"fmt"
	"time"
)

// ToAbsolute reinterprets the wall-clock fields of local in the given IANA
// zone and returns the corresponding UTC instant. DST transitions are
// resolved by the zone database: a nonexistent wall-clock time (spring
// forward) maps to the instant the clock jumps to, matching time.Date.
func ToAbsolute(local time.Time, timezone string) (time.Time, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimezone, timezone)
	}
	t := time.Date(local.Year(), local.Month(), local.Day(),
		local.Hour(), local.Minute(), local.Second(), local.Nanosecond(), loc)
	return t.UTC(), nil
}

// ToLocal converts an absolute instant to wall-clock time in the given
// IANA zone.
func ToLocal(instant time.Time, timezone string) (time.Time, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimezone, timezone)
	}
	return instant.In(loc), nil
}
