package worker

import (
	"errors"
	"fmt"

	"github.com/bookwell/bookwell/internal/search"
)

type Status string

const (
	StatusAvailable Status = "available"
	StatusBusy      Status = "busy"
	StatusOffline   Status = "offline"
)

var ErrInvalidStatus = errors.New("invalid worker status")

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusAvailable, StatusBusy, StatusOffline:
		return Status(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

func (s Status) BadgeClass() string {
	switch s {
	case StatusAvailable:
		return "status-confirmed"
	case StatusBusy:
		return "status-pending"
	case StatusOffline:
		return "bg-muted text-muted-foreground"
	}
	return ""
}

// IndicatorClass styles the presence dot on the worker avatar.
func (s Status) IndicatorClass() string {
	switch s {
	case StatusAvailable:
		return "bg-accent"
	case StatusBusy:
		return "bg-warning"
	}
	return "bg-muted-foreground"
}

type Worker struct {
	ID             string
	Name           string
	Email          string
	Phone          string
	Specialization string
	// Rating is between 0 and 5.
	Rating            float64
	TotalClients      int
	TodayAppointments int
	WeeklyHours       int
	Status            Status
}

type StatusCounts struct {
	Available int
	Busy      int
	Offline   int
}

// Filter returns the workers whose name, specialization or email contains term, ignoring case.
func Filter(workers []Worker, term string) []Worker {
	return search.Filter(workers, term, func(w Worker) []string {
		return []string{w.Name, w.Specialization, w.Email}
	})
}

func CountByStatus(workers []Worker) StatusCounts {
	var counts StatusCounts
	for _, w := range workers {
		switch w.Status {
		case StatusAvailable:
			counts.Available++
		case StatusBusy:
			counts.Busy++
		case StatusOffline:
			counts.Offline++
		}
	}
	return counts
}

// Validate reports workers with an unknown status or a rating outside 0..5.
func Validate(workers []Worker) error {
	var errs []error
	for _, w := range workers {
		if _, err := ParseStatus(string(w.Status)); err != nil {
			errs = append(errs, fmt.Errorf("worker %s: %w", w.ID, err))
		}
		if w.Rating < 0 || w.Rating > 5 {
			errs = append(errs, fmt.Errorf("worker %s: rating %.1f out of range", w.ID, w.Rating))
		}
	}
	return errors.Join(errs...)
}
