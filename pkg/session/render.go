package session

import (
	"github.com/bookwell/bookwell/pkg/calendar"
	"github.com/bookwell/bookwell/pkg/client"
	"github.com/bookwell/bookwell/pkg/dashboard"
	"github.com/bookwell/bookwell/pkg/worker"
)

type CalendarView struct {
	Month    calendar.Month
	Selected calendar.DayDetail
}

type SettingsView struct {
	Title       string
	Description string
	Message     string
}

// Content is the rendered body of the active tab. Exactly one view field is set.
type Content struct {
	Tab       Tab
	Dashboard *dashboard.View
	Calendar  *CalendarView
	Clients   *client.ListView
	Workers   *worker.ListView
	Settings  *SettingsView
}

var settingsPlaceholder = SettingsView{
	Title:       "Settings",
	Description: "Configure your application preferences",
	Message:     "Settings page coming soon...",
}

// Renderer builds the content for a session's active tab.
type Renderer struct {
	dashboard *dashboard.Service
	calendar  *calendar.Service
	clients   *client.Service
	workers   *worker.Service
}

func NewRenderer(d *dashboard.Service, c *calendar.Service, cl *client.Service, w *worker.Service) *Renderer {
	return &Renderer{dashboard: d, calendar: c, clients: cl, workers: w}
}

func (r *Renderer) Render(s Session) (Content, error) {
	content := Content{Tab: s.ActiveTab}
	switch s.ActiveTab {
	case TabDashboard:
		view := r.dashboard.View()
		content.Dashboard = &view
	case TabCalendar:
		month, err := r.calendar.Month(s.Year, s.Month)
		if err != nil {
			return Content{}, err
		}
		content.Calendar = &CalendarView{
			Month:    month,
			Selected: r.calendar.Day(s.SelectedDate),
		}
	case TabClients:
		view := r.clients.List(s.ClientSearch)
		content.Clients = &view
	case TabWorkers:
		view := r.workers.List(s.WorkerSearch)
		content.Workers = &view
	case TabSettings:
		view := settingsPlaceholder
		content.Settings = &view
	default:
		return Content{}, ErrUnknownTab
	}
	return content, nil
}
