package worker

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(workers []Worker) []string {
	out := make([]string, 0, len(workers))
	for _, w := range workers {
		out = append(out, w.Name)
	}
	return out
}

func TestFilter(t *testing.T) {
	workers := MockWorkers()

	tests := []struct {
		name string
		term string
		want []string
	}{
		{"empty term keeps everything in order", "", []string{"Dr. Smith", "Lisa Wilson", "Michael Davis", "Sarah Lee"}},
		{"by name ignoring case", "LISA", []string{"Lisa Wilson"}},
		{"by specialization", "counseling", []string{"Lisa Wilson", "Sarah Lee"}},
		{"by email", "m.davis@", []string{"Michael Davis"}},
		{"no match", "dentist", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(workers, tt.term)
			assert.Equal(t, tt.want, names(got))
			assert.Equal(t, got, Filter(got, tt.term), "filter is idempotent")
		})
	}
}

func TestCountByStatus(t *testing.T) {
	assert.Equal(t, StatusCounts{Available: 2, Busy: 1, Offline: 1}, CountByStatus(MockWorkers()))
}

func TestStatusClasses(t *testing.T) {
	assert.Equal(t, "bg-accent", StatusAvailable.IndicatorClass())
	assert.Equal(t, "bg-warning", StatusBusy.IndicatorClass())
	assert.Equal(t, "bg-muted-foreground", StatusOffline.IndicatorClass())
	assert.Equal(t, "status-pending", StatusBusy.BadgeClass())

	_, err := ParseStatus("away")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestHandler_List(t *testing.T) {
	handler := NewHandler(NewService(MockWorkers()))

	w := httptest.NewRecorder()
	handler.List(w, httptest.NewRequest(http.MethodGet, "/api/workers?search=physio", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var dto ListDTO
	require.NoError(t, json.NewDecoder(w.Body).Decode(&dto))
	require.Len(t, dto.Workers, 1)
	assert.Equal(t, "Michael Davis", dto.Workers[0].Name)
	assert.InDelta(t, 4.7, dto.Workers[0].Rating, 0.001)
	assert.Equal(t, "physio", dto.Search)
	assert.Equal(t, StatusCountsDTO{Available: 2, Busy: 1, Offline: 1}, dto.Counts)
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate(MockWorkers()))

	workers := MockWorkers()
	workers[0].Status = "away"
	workers[1].Rating = 5.5
	err := Validate(workers)
	assert.ErrorIs(t, err, ErrInvalidStatus)
	assert.Contains(t, err.Error(), "rating 5.5 out of range")
}
