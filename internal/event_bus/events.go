package event_bus

import "time"

const (
	TabSelected   EventType = "session.tab_selected"
	DateSelected  EventType = "session.date_selected"
	MonthShifted  EventType = "session.month_shifted"
	SearchChanged EventType = "session.search_changed"
)

type TabSelectedEvent struct {
	SessionId string
	From      string
	To        string
}

type DateSelectedEvent struct {
	SessionId string
	Date      string
}

type MonthShiftedEvent struct {
	SessionId string
	Year      int
	Month     time.Month
}

type SearchChangedEvent struct {
	SessionId string
	View      string
	Term      string
}
