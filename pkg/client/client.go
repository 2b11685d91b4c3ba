package client

import (
	"errors"
	"fmt"

	"github.com/bookwell/bookwell/internal/search"
	"github.com/bookwell/bookwell/pkg/appointment"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusNew      Status = "new"
)

var ErrInvalidStatus = errors.New("invalid client status")

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusActive, StatusInactive, StatusNew:
		return Status(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

func (s Status) BadgeClass() string {
	switch s {
	case StatusActive:
		return "status-confirmed"
	case StatusInactive:
		return "bg-muted text-muted-foreground"
	case StatusNew:
		return "status-pending"
	}
	return ""
}

type Client struct {
	ID                string
	Name              string
	Email             string
	Phone             string
	LastAppointment   *appointment.DateKey
	NextAppointment   *appointment.DateKey
	TotalAppointments int
	Status            Status
}

type StatusCounts struct {
	Active   int
	New      int
	Inactive int
}

// Filter returns the clients whose name or email contains term, ignoring case.
func Filter(clients []Client, term string) []Client {
	return search.Filter(clients, term, func(c Client) []string {
		return []string{c.Name, c.Email}
	})
}

func CountByStatus(clients []Client) StatusCounts {
	var counts StatusCounts
	for _, c := range clients {
		switch c.Status {
		case StatusActive:
			counts.Active++
		case StatusNew:
			counts.New++
		case StatusInactive:
			counts.Inactive++
		}
	}
	return counts
}

// Validate reports clients with an unknown status.
func Validate(clients []Client) error {
	var errs []error
	for _, c := range clients {
		if _, err := ParseStatus(string(c.Status)); err != nil {
			errs = append(errs, fmt.Errorf("client %s: %w", c.ID, err))
		}
	}
	return errors.Join(errs...)
}
