package utils

import "time"

// Clock supplies the current instant. Views derive "today" from it.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in Location (time.Local when nil).
type SystemClock struct {
	Location *time.Location
}

func (s SystemClock) Now() time.Time {
	if s.Location == nil {
		return time.Now()
	}
	return time.Now().In(s.Location)
}

// FixedClock always reports the same instant. It pins the demo to a date that has
// scheduled events.
type FixedClock struct {
	At time.Time
}

func (f FixedClock) Now() time.Time {
	return f.At
}

type MockClock struct {
	FixedNow time.Time
}

func (m *MockClock) Now() time.Time {
	return m.FixedNow
}

func (m *MockClock) SetNow(now time.Time) {
	m.FixedNow = now
}

// NewClock returns a FixedClock at midnight of pinnedDate when it is set, otherwise a
// SystemClock in loc.
func NewClock(pinnedDate string, loc *time.Location) (Clock, error) {
	if loc == nil {
		loc = time.Local
	}
	if pinnedDate == "" {
		return SystemClock{Location: loc}, nil
	}
	at, err := time.ParseInLocation("2006-01-02", pinnedDate, loc)
	if err != nil {
		return nil, err
	}
	return FixedClock{At: at}, nil
}
