package app

import (
	"fmt"

	"github.com/bookwell/bookwell/internal/config"
	"github.com/bookwell/bookwell/internal/event_bus"
	"github.com/bookwell/bookwell/internal/utils"
	"github.com/bookwell/bookwell/pkg/appointment"
	"github.com/bookwell/bookwell/pkg/calendar"
	"github.com/bookwell/bookwell/pkg/client"
	"github.com/bookwell/bookwell/pkg/dashboard"
	"github.com/bookwell/bookwell/pkg/session"
	"github.com/bookwell/bookwell/pkg/shell"
	"github.com/bookwell/bookwell/pkg/worker"
	log "github.com/sirupsen/logrus"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	Clock    utils.Clock
	EventBus *event_bus.EventBus

	EventIndex *appointment.Index

	CalendarService *calendar.Service
	CalendarHandler *calendar.Handler

	DashboardService *dashboard.Service
	DashboardHandler *dashboard.Handler

	ClientService *client.Service
	ClientHandler *client.Handler

	WorkerService *worker.Service
	WorkerHandler *worker.Handler

	SessionStore   *session.Store
	SessionService *session.Service
	SessionHandler *session.Handler
	TabStats       *session.TabStats
	ShellHandler   *shell.Handler
	RateLimiter    *RateLimiter
	unsubscribers  []func()
}

// BuildDependencies initializes and wires all application services and handlers over
// the static demo records.
func BuildDependencies(cfg config.Application) (*Dependencies, error) {
	loc, err := cfg.Calendar.Location()
	if err != nil {
		return nil, fmt.Errorf("invalid calendar timezone: %w", err)
	}
	selectedDate, err := appointment.ParseDateKey(cfg.Calendar.SelectedDate)
	if err != nil {
		return nil, fmt.Errorf("invalid default selected date: %w", err)
	}

	deps := &Dependencies{}

	deps.Clock, err = utils.NewClock(cfg.Calendar.Today, loc)
	if err != nil {
		return nil, fmt.Errorf("invalid pinned date: %w", err)
	}
	deps.EventBus = event_bus.NewEventBus()

	events := appointment.MockEvents()
	if err := appointment.ValidateEvents(events); err != nil {
		return nil, fmt.Errorf("invalid appointment records: %w", err)
	}
	deps.EventIndex = appointment.NewIndex(events)
	log.Infof("Loaded %d appointments", deps.EventIndex.Len())

	deps.CalendarService = calendar.NewService(deps.EventIndex, deps.Clock, loc)
	deps.CalendarHandler = calendar.NewHandler(deps.CalendarService)

	deps.DashboardService = dashboard.NewService(deps.EventIndex, deps.CalendarService)
	deps.DashboardHandler = dashboard.NewHandler(deps.DashboardService)

	clients := client.MockClients()
	if err := client.Validate(clients); err != nil {
		return nil, fmt.Errorf("invalid client records: %w", err)
	}
	deps.ClientService = client.NewService(clients)
	deps.ClientHandler = client.NewHandler(deps.ClientService)

	workers := worker.MockWorkers()
	if err := worker.Validate(workers); err != nil {
		return nil, fmt.Errorf("invalid worker records: %w", err)
	}
	deps.WorkerService = worker.NewService(workers)
	deps.WorkerHandler = worker.NewHandler(deps.WorkerService)

	renderer := session.NewRenderer(deps.DashboardService, deps.CalendarService, deps.ClientService, deps.WorkerService)
	deps.SessionStore = session.NewStore()
	deps.SessionService = session.NewService(deps.SessionStore, renderer, deps.CalendarService, deps.EventBus, selectedDate)
	deps.SessionHandler = session.NewHandler(deps.SessionService)

	deps.ShellHandler = shell.NewHandler(cfg.Shell)

	if cfg.RateLimit.Enabled {
		deps.RateLimiter = NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}

	deps.unsubscribers = subscribeSessionLogging(deps.EventBus)
	deps.TabStats = session.NewTabStats()
	deps.unsubscribers = append(deps.unsubscribers, deps.TabStats.Subscribe(deps.EventBus))

	return deps, nil
}

func subscribeSessionLogging(bus *event_bus.EventBus) []func() {
	return []func(){
		event_bus.SubscribeTyped(bus, event_bus.TabSelected, func(e event_bus.EventT[event_bus.TabSelectedEvent]) error {
			log.Debugf("session %s: tab %s -> %s", e.Data.SessionId, e.Data.From, e.Data.To)
			return nil
		}),
		event_bus.SubscribeTyped(bus, event_bus.DateSelected, func(e event_bus.EventT[event_bus.DateSelectedEvent]) error {
			log.Debugf("session %s: selected %s", e.Data.SessionId, e.Data.Date)
			return nil
		}),
		event_bus.SubscribeTyped(bus, event_bus.MonthShifted, func(e event_bus.EventT[event_bus.MonthShiftedEvent]) error {
			log.Debugf("session %s: showing %s %d", e.Data.SessionId, e.Data.Month, e.Data.Year)
			return nil
		}),
		event_bus.SubscribeTyped(bus, event_bus.SearchChanged, func(e event_bus.EventT[event_bus.SearchChangedEvent]) error {
			log.Debugf("session %s: %s search %q", e.Data.SessionId, e.Data.View, e.Data.Term)
			return nil
		}),
	}
}

// Close releases bus subscriptions and background workers.
func (d *Dependencies) Close() {
	for _, unsubscribe := range d.unsubscribers {
		unsubscribe()
	}
	if d.RateLimiter != nil {
		d.RateLimiter.Stop()
	}
}
