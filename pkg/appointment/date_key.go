package appointment

import (
	"errors"
	"fmt"
	"time"
)

const dateKeyLayout = "2006-01-02"

var ErrInvalidDateKey = errors.New("invalid date key")

// DateKey is a calendar date in the fixed YYYY-MM-DD form. Because the form is fixed-width,
// lexical order equals chronological order.
type DateKey string

// ParseDateKey validates s as a real calendar date and returns it as a DateKey.
func ParseDateKey(s string) (DateKey, error) {
	t, err := time.Parse(dateKeyLayout, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDateKey, s)
	}
	return DateKey(t.Format(dateKeyLayout)), nil
}

// DateKeyOf returns the key of the calendar date t falls on, in t's own location.
func DateKeyOf(t time.Time) DateKey {
	return DateKey(t.Format(dateKeyLayout))
}

func (k DateKey) String() string {
	return string(k)
}

// Time returns midnight of the date in loc. A malformed key yields the zero time.
func (k DateKey) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(dateKeyLayout, string(k), loc)
	if err != nil {
		return time.Time{}
	}
	return t
}

func (k DateKey) Before(other DateKey) bool {
	return k < other
}

func (k DateKey) After(other DateKey) bool {
	return k > other
}

// Label renders the long form used as the day-detail heading, e.g. "Friday, January 17, 2025".
func (k DateKey) Label() string {
	t := k.Time(time.UTC)
	if t.IsZero() {
		return string(k)
	}
	return t.Format("Monday, January 2, 2006")
}
