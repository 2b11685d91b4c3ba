package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndex_EventsOn(t *testing.T) {
	idx := NewIndex(MockEvents())

	t.Run("returns events ordered by time of day", func(t *testing.T) {
		events := idx.EventsOn("2025-01-17")

		require.Len(t, events, 2)
		assert.Equal(t, TimeOfDay("10:00"), events[0].Time)
		assert.Equal(t, "Consultation", events[0].Title)
		assert.Equal(t, TimeOfDay("14:30"), events[1].Time)
		assert.Equal(t, "Therapy Session", events[1].Title)
	})

	t.Run("unknown date yields empty slice", func(t *testing.T) {
		events := idx.EventsOn("2030-06-01")

		assert.NotNil(t, events)
		assert.Empty(t, events)
	})

	t.Run("returned slice is a copy", func(t *testing.T) {
		events := idx.EventsOn("2025-01-18")
		require.Len(t, events, 1)
		events[0].Title = "changed"

		assert.Equal(t, "Follow-up", idx.EventsOn("2025-01-18")[0].Title)
	})
}

func TestNewIndex_SortsUnorderedInput(t *testing.T) {
	events := []Event{
		{ID: "a", Date: "2025-03-01", Time: "16:00", Duration: 30, Status: StatusPending},
		{ID: "b", Date: "2025-03-01", Time: "08:15", Duration: 30, Status: StatusConfirmed},
		{ID: "c", Date: "2025-02-28", Time: "12:00", Duration: 30, Status: StatusCancelled},
		{ID: "d", Date: "2025-03-01", Time: "08:15", Duration: 45, Status: StatusConfirmed},
	}

	idx := NewIndex(events)

	day := idx.EventsOn("2025-03-01")
	require.Len(t, day, 3)
	assert.Equal(t, "b", day[0].ID)
	assert.Equal(t, "d", day[1].ID, "ties keep input order")
	assert.Equal(t, "a", day[2].ID)

	all := idx.All()
	require.Len(t, all, 4)
	assert.Equal(t, "c", all[0].ID)
	assert.Equal(t, 4, idx.Len())
	assert.True(t, idx.HasEvents("2025-02-28"))
	assert.False(t, idx.HasEvents("2025-02-27"))
}

func TestNewIndex_Empty(t *testing.T) {
	idx := NewIndex(nil)

	assert.Equal(t, 0, idx.Len())
	assert.Empty(t, idx.All())
	assert.Empty(t, idx.EventsOn("2025-01-17"))
}
