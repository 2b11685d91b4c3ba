package calendar

import (
	"errors"
	"fmt"
	"time"

	"github.com/bookwell/bookwell/pkg/appointment"
)

const daysPerWeek = 7

const (
	minYear = 1
	maxYear = 9999
)

var (
	ErrInvalidMonth = errors.New("month must be between 1 and 12")
	ErrInvalidYear  = errors.New("year out of range")
)

var weekdayNames = [daysPerWeek]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// EventLookup answers per-date event queries. *appointment.Index satisfies it.
type EventLookup interface {
	EventsOn(date appointment.DateKey) []appointment.Event
	HasEvents(date appointment.DateKey) bool
}

// Day is one cell of the month grid.
type Day struct {
	Key        appointment.DateKey
	DayOfMonth int
	Weekday    time.Weekday
	InMonth    bool
	IsToday    bool
	HasEvents  bool
}

// Month is a Sunday-start grid covering whole weeks around a reference month.
type Month struct {
	Year     int
	Month    time.Month
	Title    string
	Weekdays []string
	Days     []Day
}

// BuildMonth lays out the reference month padded to whole weeks: it starts on the Sunday
// on or before the 1st and ends on the Saturday on or after the last day. Dates are
// computed with time.Date normalization so month and year rollover need no special cases.
func BuildMonth(year int, month time.Month, today appointment.DateKey, lookup EventLookup) (Month, error) {
	if month < time.January || month > time.December {
		return Month{}, fmt.Errorf("%w: got %d", ErrInvalidMonth, month)
	}
	if year < minYear || year > maxYear {
		return Month{}, fmt.Errorf("%w: %d is not between %d and %d", ErrInvalidYear, year, minYear, maxYear)
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC)
	start := first.AddDate(0, 0, -int(first.Weekday()))
	end := last.AddDate(0, 0, int(time.Saturday-last.Weekday()))
	// Keys are four-digit years; the padding week of December 9999 would need five.
	if end.Year() > maxYear {
		return Month{}, fmt.Errorf("%w: %s %d pads into year %d", ErrInvalidYear, month, year, end.Year())
	}

	days := make([]Day, 0, 6*daysPerWeek)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		key := appointment.DateKeyOf(d)
		days = append(days, Day{
			Key:        key,
			DayOfMonth: d.Day(),
			Weekday:    d.Weekday(),
			InMonth:    d.Month() == month,
			IsToday:    key == today,
			HasEvents:  lookup != nil && lookup.HasEvents(key),
		})
	}

	return Month{
		Year:     year,
		Month:    month,
		Title:    fmt.Sprintf("%s %d", month, year),
		Weekdays: append([]string(nil), weekdayNames[:]...),
		Days:     days,
	}, nil
}

// Weeks splits the grid into rows of seven days.
func (m Month) Weeks() [][]Day {
	weeks := make([][]Day, 0, len(m.Days)/daysPerWeek)
	for i := 0; i+daysPerWeek <= len(m.Days); i += daysPerWeek {
		weeks = append(weeks, m.Days[i:i+daysPerWeek])
	}
	return weeks
}

// First and Last return the grid boundaries.
func (m Month) First() Day {
	return m.Days[0]
}

func (m Month) Last() Day {
	return m.Days[len(m.Days)-1]
}

// ShiftMonth moves a reference month by delta months, rolling the year over as needed.
// The day is pinned to the 1st so that e.g. January 31 never skips February.
func ShiftMonth(year int, month time.Month, delta int) (int, time.Month) {
	t := time.Date(year, month+time.Month(delta), 1, 0, 0, 0, 0, time.UTC)
	return t.Year(), t.Month()
}
