package appointment

import (
	"fmt"
	"time"

	ical "github.com/arran4/golang-ical"
)

const icsProductId = "-//bookwell//appointments//EN"

func icsStatus(s Status) ical.ObjectStatus {
	switch s {
	case StatusConfirmed:
		return ical.ObjectStatusConfirmed
	case StatusCancelled:
		return ical.ObjectStatusCancelled
	}
	return ical.ObjectStatusTentative
}

// ExportICS serializes events as an iCalendar feed. Event times are wall-clock times in loc.
func ExportICS(events []Event, loc *time.Location, stamp time.Time) (string, error) {
	if loc == nil {
		loc = time.UTC
	}
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(icsProductId)

	for _, e := range events {
		if e.Duration <= 0 {
			return "", fmt.Errorf("event %s: non-positive duration %d", e.ID, e.Duration)
		}
		ve := cal.AddEvent(fmt.Sprintf("%s-%s@bookwell", e.Date, e.ID))
		ve.SetDtStampTime(stamp)
		ve.SetStartAt(e.Start(loc))
		ve.SetEndAt(e.End(loc))
		ve.SetSummary(e.Title)
		ve.SetDescription(fmt.Sprintf("%s with %s", e.Client, e.Worker))
		ve.SetStatus(icsStatus(e.Status))
	}
	return cal.Serialize(), nil
}
