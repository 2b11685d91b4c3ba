package appointment

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidTimeOfDay = errors.New("invalid time of day")

// TimeOfDay is a wall-clock time in the fixed-width HH:MM form.
type TimeOfDay string

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
	}
	return TimeOfDay(t.Format("15:04")), nil
}

func (t TimeOfDay) String() string {
	return string(t)
}

// Offset returns the duration since midnight.
func (t TimeOfDay) Offset() time.Duration {
	parsed, err := time.Parse("15:04", string(t))
	if err != nil {
		return 0
	}
	return time.Duration(parsed.Hour())*time.Hour + time.Duration(parsed.Minute())*time.Minute
}
