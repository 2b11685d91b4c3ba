package appointment

import (
	"sort"

	log "github.com/sirupsen/logrus"
)

// Index maps calendar dates to the events scheduled on them. It is built once and never
// mutated, so it is safe for concurrent readers.
type Index struct {
	byDate map[DateKey][]Event
	dates  []DateKey
	total  int
}

// NewIndex groups events by date. Each day's list is ordered by time of day; events
// sharing a time keep their input order.
func NewIndex(events []Event) *Index {
	byDate := make(map[DateKey][]Event)
	for _, e := range events {
		byDate[e.Date] = append(byDate[e.Date], e)
	}

	dates := make([]DateKey, 0, len(byDate))
	for date, dayEvents := range byDate {
		sort.SliceStable(dayEvents, func(i, j int) bool {
			return dayEvents[i].Time < dayEvents[j].Time
		})
		dates = append(dates, date)
	}
	sort.Slice(dates, func(i, j int) bool {
		return dates[i] < dates[j]
	})

	log.Debugf("event index built: %d events on %d dates", len(events), len(dates))
	return &Index{byDate: byDate, dates: dates, total: len(events)}
}

// EventsOn returns the events on date ordered by time. An unknown date yields an empty,
// non-nil slice. The returned slice is a copy.
func (idx *Index) EventsOn(date DateKey) []Event {
	dayEvents := idx.byDate[date]
	out := make([]Event, len(dayEvents))
	copy(out, dayEvents)
	return out
}

func (idx *Index) HasEvents(date DateKey) bool {
	return len(idx.byDate[date]) > 0
}

// All returns every event ordered by date, then time.
func (idx *Index) All() []Event {
	out := make([]Event, 0, idx.total)
	for _, date := range idx.dates {
		out = append(out, idx.byDate[date]...)
	}
	return out
}

func (idx *Index) Len() int {
	return idx.total
}
