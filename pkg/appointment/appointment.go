package appointment

import (
	"errors"
	"fmt"
	"time"
)

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusPending   Status = "pending"
	StatusCancelled Status = "cancelled"
)

var ErrInvalidStatus = errors.New("invalid appointment status")

func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
	return status, nil
}

func (s Status) Valid() bool {
	switch s {
	case StatusConfirmed, StatusPending, StatusCancelled:
		return true
	}
	return false
}

// BadgeClass is the style hint the shell uses for the status badge.
func (s Status) BadgeClass() string {
	switch s {
	case StatusConfirmed:
		return "status-confirmed"
	case StatusPending:
		return "status-pending"
	case StatusCancelled:
		return "status-cancelled"
	}
	return ""
}

// Event is a single scheduled appointment. Client and Worker hold display names, not
// identifiers; nothing checks that a client or worker with that name exists.
type Event struct {
	ID     string
	Title  string
	Client string
	Worker string
	Date   DateKey
	Time   TimeOfDay
	// Duration in minutes, always positive.
	Duration int
	Status   Status
}

// Start returns the event start in loc.
func (e Event) Start(loc *time.Location) time.Time {
	return e.Date.Time(loc).Add(e.Time.Offset())
}

func (e Event) End(loc *time.Location) time.Time {
	return e.Start(loc).Add(time.Duration(e.Duration) * time.Minute)
}

// ValidateEvents checks every event the way ParseDateKey, ParseTimeOfDay and ParseStatus
// would, and that durations are positive. All failures are reported together.
func ValidateEvents(events []Event) error {
	var errs []error
	for _, e := range events {
		if _, err := ParseDateKey(string(e.Date)); err != nil {
			errs = append(errs, fmt.Errorf("event %s: %w", e.ID, err))
		}
		if _, err := ParseTimeOfDay(string(e.Time)); err != nil {
			errs = append(errs, fmt.Errorf("event %s: %w", e.ID, err))
		}
		if _, err := ParseStatus(string(e.Status)); err != nil {
			errs = append(errs, fmt.Errorf("event %s: %w", e.ID, err))
		}
		if e.Duration <= 0 {
			errs = append(errs, fmt.Errorf("event %s: duration must be positive, got %d", e.ID, e.Duration))
		}
	}
	return errors.Join(errs...)
}
