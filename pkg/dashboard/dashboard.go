package dashboard

import (
	"github.com/bookwell/bookwell/pkg/appointment"
)

type Counts struct {
	Today    int
	Upcoming int
	Pending  int
	Total    int
}

type View struct {
	Today    appointment.DateKey
	Counts   Counts
	Todays   []appointment.Event
	Upcoming []appointment.Event
}

// Build derives the dashboard from events ordered by date then time. Upcoming means
// strictly after today; the pending count covers every event regardless of date.
func Build(events []appointment.Event, today appointment.DateKey) View {
	view := View{
		Today:    today,
		Todays:   []appointment.Event{},
		Upcoming: []appointment.Event{},
	}
	for _, e := range events {
		switch {
		case e.Date == today:
			view.Todays = append(view.Todays, e)
		case e.Date.After(today):
			view.Upcoming = append(view.Upcoming, e)
		}
		if e.Status == appointment.StatusPending {
			view.Counts.Pending++
		}
	}
	view.Counts.Today = len(view.Todays)
	view.Counts.Upcoming = len(view.Upcoming)
	view.Counts.Total = len(events)
	return view
}
