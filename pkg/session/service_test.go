package session

import (
	"context"
	"testing"
	"time"

	"github.com/bookwell/bookwell/internal/event_bus"
	"github.com/bookwell/bookwell/internal/utils"
	"github.com/bookwell/bookwell/pkg/appointment"
	"github.com/bookwell/bookwell/pkg/calendar"
	"github.com/bookwell/bookwell/pkg/client"
	"github.com/bookwell/bookwell/pkg/dashboard"
	"github.com/bookwell/bookwell/pkg/worker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ctx = context.Background()

func setupService(t *testing.T) (*Service, *event_bus.EventBus) {
	t.Helper()
	index := appointment.NewIndex(appointment.MockEvents())
	clock := &utils.MockClock{}
	clock.SetNow(time.Date(2025, 1, 17, 8, 0, 0, 0, time.UTC))
	calendarService := calendar.NewService(index, clock, time.UTC)
	renderer := NewRenderer(
		dashboard.NewService(index, calendarService),
		calendarService,
		client.NewService(client.MockClients()),
		worker.NewService(worker.MockWorkers()),
	)
	bus := event_bus.NewEventBus()
	return NewService(NewStore(), renderer, calendarService, bus, "2025-01-17"), bus
}

func TestService_Create(t *testing.T) {
	service, _ := setupService(t)

	sess := service.Create(ctx)

	assert.NotEmpty(t, sess.Id)
	assert.Equal(t, TabDashboard, sess.ActiveTab)
	assert.Equal(t, appointment.DateKey("2025-01-17"), sess.SelectedDate)
	assert.Equal(t, 2025, sess.Year)
	assert.Equal(t, time.January, sess.Month)
}

func TestService_SelectTabPublishesEvent(t *testing.T) {
	service, bus := setupService(t)
	var published []event_bus.TabSelectedEvent
	event_bus.SubscribeTyped(bus, event_bus.TabSelected, func(e event_bus.EventT[event_bus.TabSelectedEvent]) error {
		published = append(published, e.Data)
		return nil
	})
	sess := service.Create(ctx)

	updated, err := service.SelectTab(ctx, sess.Id, TabWorkers)

	require.NoError(t, err)
	assert.Equal(t, TabWorkers, updated.ActiveTab)
	require.Len(t, published, 1)
	assert.Equal(t, event_bus.TabSelectedEvent{SessionId: sess.Id, From: "dashboard", To: "workers"}, published[0])
}

func TestService_SelectTabUnknownSession(t *testing.T) {
	service, _ := setupService(t)

	_, err := service.SelectTab(ctx, "missing", TabCalendar)

	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestService_Render(t *testing.T) {
	service, _ := setupService(t)
	sess := service.Create(ctx)

	t.Run("dashboard", func(t *testing.T) {
		content, err := service.Render(ctx, sess.Id)
		require.NoError(t, err)
		assert.Equal(t, TabDashboard, content.Tab)
		require.NotNil(t, content.Dashboard)
		assert.Equal(t, 2, content.Dashboard.Counts.Today)
		assert.Nil(t, content.Calendar)
	})

	t.Run("calendar follows reference month and selected date", func(t *testing.T) {
		_, err := service.SelectTab(ctx, sess.Id, TabCalendar)
		require.NoError(t, err)
		_, err = service.ShiftMonth(ctx, sess.Id, -1)
		require.NoError(t, err)
		_, err = service.SelectDate(ctx, sess.Id, "2025-01-18")
		require.NoError(t, err)

		content, err := service.Render(ctx, sess.Id)
		require.NoError(t, err)
		require.NotNil(t, content.Calendar)
		assert.Equal(t, "December 2024", content.Calendar.Month.Title)
		assert.Equal(t, appointment.DateKey("2025-01-18"), content.Calendar.Selected.Key)
		require.Len(t, content.Calendar.Selected.Events, 1)
	})

	t.Run("clients keep their search term", func(t *testing.T) {
		_, err := service.SetSearch(ctx, sess.Id, TabClients, "SARAH")
		require.NoError(t, err)
		_, err = service.SelectTab(ctx, sess.Id, TabClients)
		require.NoError(t, err)

		content, err := service.Render(ctx, sess.Id)
		require.NoError(t, err)
		require.NotNil(t, content.Clients)
		require.Len(t, content.Clients.Clients, 1)
		assert.Equal(t, "Sarah Johnson", content.Clients.Clients[0].Name)
	})

	t.Run("workers", func(t *testing.T) {
		_, err := service.SelectTab(ctx, sess.Id, TabWorkers)
		require.NoError(t, err)

		content, err := service.Render(ctx, sess.Id)
		require.NoError(t, err)
		require.NotNil(t, content.Workers)
		assert.Len(t, content.Workers.Workers, 4)
	})

	t.Run("settings", func(t *testing.T) {
		_, err := service.SelectTab(ctx, sess.Id, TabSettings)
		require.NoError(t, err)

		content, err := service.Render(ctx, sess.Id)
		require.NoError(t, err)
		require.NotNil(t, content.Settings)
		assert.Equal(t, "Settings page coming soon...", content.Settings.Message)
	})
}

func TestService_SetSearchRejectsViewWithoutSearch(t *testing.T) {
	service, _ := setupService(t)
	sess := service.Create(ctx)

	_, err := service.SetSearch(ctx, sess.Id, TabDashboard, "x")

	assert.ErrorIs(t, err, ErrUnknownView)
}

func TestService_Close(t *testing.T) {
	service, _ := setupService(t)
	sess := service.Create(ctx)

	require.NoError(t, service.Close(ctx, sess.Id))

	_, err := service.Get(ctx, sess.Id)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.ErrorIs(t, service.Close(ctx, sess.Id), ErrSessionNotFound)
}

func TestService_RenderMonthOutOfRange(t *testing.T) {
	service, _ := setupService(t)
	sess := service.Create(ctx)
	_, err := service.SelectTab(ctx, sess.Id, TabCalendar)
	require.NoError(t, err)

	_, err = service.ShiftMonth(ctx, sess.Id, (9999-2025)*12+11)
	require.NoError(t, err)

	_, err = service.Render(ctx, sess.Id)
	assert.ErrorIs(t, err, calendar.ErrInvalidYear)
}
