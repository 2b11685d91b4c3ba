package dashboard

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bookwell/bookwell/internal/utils"
	"github.com/bookwell/bookwell/pkg/appointment"
	"github.com/bookwell/bookwell/pkg/calendar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var index = appointment.NewIndex(appointment.MockEvents())

func TestBuild(t *testing.T) {
	tests := []struct {
		name  string
		today appointment.DateKey
		want  Counts
	}{
		{"day with two events", "2025-01-17", Counts{Today: 2, Upcoming: 1, Pending: 1, Total: 3}},
		{"last scheduled day", "2025-01-18", Counts{Today: 1, Upcoming: 0, Pending: 1, Total: 3}},
		{"before everything", "2025-01-01", Counts{Today: 0, Upcoming: 3, Pending: 1, Total: 3}},
		{"after everything", "2026-10-16", Counts{Today: 0, Upcoming: 0, Pending: 1, Total: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := Build(index.All(), tt.today)
			assert.Equal(t, tt.want, view.Counts)
			assert.Len(t, view.Todays, tt.want.Today)
			assert.Len(t, view.Upcoming, tt.want.Upcoming)
		})
	}
}

func TestBuild_OrdersTodayByTime(t *testing.T) {
	view := Build(index.All(), "2025-01-17")

	require.Len(t, view.Todays, 2)
	assert.Equal(t, "Sarah Johnson", view.Todays[0].Client)
	assert.Equal(t, "Mike Chen", view.Todays[1].Client)
	require.Len(t, view.Upcoming, 1)
	assert.Equal(t, "Follow-up", view.Upcoming[0].Title)
}

func TestHandler_Get(t *testing.T) {
	clock := &utils.MockClock{}
	clock.SetNow(time.Date(2025, 1, 17, 12, 0, 0, 0, time.UTC))
	calendarService := calendar.NewService(index, clock, time.UTC)
	handler := NewHandler(NewService(index, calendarService))

	w := httptest.NewRecorder()
	handler.Get(w, httptest.NewRequest(http.MethodGet, "/api/dashboard", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var dto ViewDTO
	require.NoError(t, json.NewDecoder(w.Body).Decode(&dto))
	assert.Equal(t, "2025-01-17", dto.Today)
	assert.Equal(t, CountsDTO{Today: 2, Upcoming: 1, Pending: 1, Total: 3}, dto.Counts)
	require.Len(t, dto.Todays, 2)
	assert.Equal(t, "Dr. Smith", dto.Todays[0].Worker)
}

func TestHandler_GetEmptyDay(t *testing.T) {
	clock := &utils.MockClock{}
	clock.SetNow(time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC))
	handler := NewHandler(NewService(index, calendar.NewService(index, clock, time.UTC)))

	w := httptest.NewRecorder()
	handler.Get(w, httptest.NewRequest(http.MethodGet, "/api/dashboard", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"todayAppointments":[]`)
	assert.Contains(t, w.Body.String(), `"upcomingAppointments":[]`)
}
