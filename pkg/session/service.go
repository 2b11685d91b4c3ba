package session

import (
	"context"
	"fmt"
	"time"

	"github.com/bookwell/bookwell/internal/event_bus"
	"github.com/bookwell/bookwell/pkg/appointment"
	log "github.com/sirupsen/logrus"
)

// MonthProvider is satisfied by calendar.Service.
type MonthProvider interface {
	CurrentMonth() (int, time.Month)
}

type Service struct {
	store        *Store
	renderer     *Renderer
	months       MonthProvider
	eventBus     *event_bus.EventBus
	selectedDate appointment.DateKey
}

// NewService creates sessions that start on the dashboard with selectedDate chosen in
// the calendar and the current month as reference month.
func NewService(store *Store, renderer *Renderer, months MonthProvider, eventBus *event_bus.EventBus, selectedDate appointment.DateKey) *Service {
	return &Service{
		store:        store,
		renderer:     renderer,
		months:       months,
		eventBus:     eventBus,
		selectedDate: selectedDate,
	}
}

func (s *Service) Create(ctx context.Context) Session {
	year, month := s.months.CurrentMonth()
	return s.store.Create(Session{
		ActiveTab:    TabDashboard,
		SelectedDate: s.selectedDate,
		Year:         year,
		Month:        month,
	})
}

// Close forgets the session.
func (s *Service) Close(ctx context.Context, id string) error {
	if err := s.store.Delete(id); err != nil {
		return err
	}
	log.Debugf("session %s closed, %d open", id, s.store.Len())
	return nil
}

func (s *Service) Get(ctx context.Context, id string) (Session, error) {
	return s.store.Get(id)
}

func (s *Service) SelectTab(ctx context.Context, id string, tab Tab) (Session, error) {
	var from Tab
	updated, err := s.store.Update(id, func(sess *Session) error {
		from = sess.ActiveTab
		return sess.Select(tab)
	})
	if err != nil {
		return Session{}, err
	}
	s.publish(ctx, event_bus.TabSelected, event_bus.TabSelectedEvent{
		SessionId: id,
		From:      string(from),
		To:        string(tab),
	})
	return updated, nil
}

func (s *Service) SelectDate(ctx context.Context, id string, date appointment.DateKey) (Session, error) {
	updated, err := s.store.Update(id, func(sess *Session) error {
		sess.SelectDate(date)
		return nil
	})
	if err != nil {
		return Session{}, err
	}
	s.publish(ctx, event_bus.DateSelected, event_bus.DateSelectedEvent{SessionId: id, Date: date.String()})
	return updated, nil
}

func (s *Service) ShiftMonth(ctx context.Context, id string, delta int) (Session, error) {
	updated, err := s.store.Update(id, func(sess *Session) error {
		sess.ShiftMonth(delta)
		return nil
	})
	if err != nil {
		return Session{}, err
	}
	s.publish(ctx, event_bus.MonthShifted, event_bus.MonthShiftedEvent{SessionId: id, Year: updated.Year, Month: updated.Month})
	return updated, nil
}

func (s *Service) SetSearch(ctx context.Context, id string, view Tab, term string) (Session, error) {
	updated, err := s.store.Update(id, func(sess *Session) error {
		return sess.SetSearch(view, term)
	})
	if err != nil {
		return Session{}, err
	}
	s.publish(ctx, event_bus.SearchChanged, event_bus.SearchChangedEvent{SessionId: id, View: string(view), Term: term})
	return updated, nil
}

// Render returns the content of the session's active tab.
func (s *Service) Render(ctx context.Context, id string) (Content, error) {
	sess, err := s.store.Get(id)
	if err != nil {
		return Content{}, err
	}
	content, err := s.renderer.Render(sess)
	if err != nil {
		return Content{}, fmt.Errorf("failed to render %s: %w", sess.ActiveTab, err)
	}
	return content, nil
}

// publish notifies subscribers. The state change already happened, so subscriber
// failures are logged and not returned.
func (s *Service) publish(ctx context.Context, eventType event_bus.EventType, data any) {
	if s.eventBus == nil {
		return
	}
	if err := s.eventBus.Publish(event_bus.NewEvent(ctx, eventType, data)); err != nil {
		log.Warnf("failed to publish %s: %v", eventType, err)
	}
}
