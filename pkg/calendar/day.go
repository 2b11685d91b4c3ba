package calendar

import "github.com/bookwell/bookwell/pkg/appointment"

// DayDetail is the list shown under the grid for the selected date.
type DayDetail struct {
	Key    appointment.DateKey
	Label  string
	Events []appointment.Event
}

func (d DayDetail) Empty() bool {
	return len(d.Events) == 0
}

func BuildDayDetail(key appointment.DateKey, lookup EventLookup) DayDetail {
	events := []appointment.Event{}
	if lookup != nil {
		events = lookup.EventsOn(key)
	}
	return DayDetail{
		Key:    key,
		Label:  key.Label(),
		Events: events,
	}
}
