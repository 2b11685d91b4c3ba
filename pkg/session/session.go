package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/bookwell/bookwell/pkg/appointment"
	"github.com/bookwell/bookwell/pkg/calendar"
)

var ErrUnknownView = errors.New("view has no search")

// Session is the transient UI state of one client of the shell. It is owned by the Store
// and only changed through Store.Update.
type Session struct {
	Id           string
	ActiveTab    Tab
	SelectedDate appointment.DateKey
	Year         int
	Month        time.Month
	ClientSearch string
	WorkerSearch string
}

// Select switches the active tab. Every tab is reachable from every other tab.
func (s *Session) Select(tab Tab) error {
	if _, err := ParseTab(string(tab)); err != nil {
		return err
	}
	s.ActiveTab = tab
	return nil
}

func (s *Session) SelectDate(date appointment.DateKey) {
	s.SelectedDate = date
}

func (s *Session) ShiftMonth(delta int) {
	s.Year, s.Month = calendar.ShiftMonth(s.Year, s.Month, delta)
}

// SetSearch stores the search term of a list view; only clients and workers have one.
func (s *Session) SetSearch(view Tab, term string) error {
	switch view {
	case TabClients:
		s.ClientSearch = term
	case TabWorkers:
		s.WorkerSearch = term
	default:
		return fmt.Errorf("%w: %q", ErrUnknownView, view)
	}
	return nil
}
