package calendar

import (
	"testing"
	"time"

	"github.com/bookwell/bookwell/pkg/appointment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var index = appointment.NewIndex(appointment.MockEvents())

func TestBuildMonth_January2025(t *testing.T) {
	grid, err := BuildMonth(2025, time.January, "2025-01-17", index)
	require.NoError(t, err)

	assert.Equal(t, "January 2025", grid.Title)
	assert.Equal(t, []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}, grid.Weekdays)
	require.Len(t, grid.Days, 35)
	assert.Equal(t, appointment.DateKey("2024-12-29"), grid.First().Key)
	assert.Equal(t, appointment.DateKey("2025-02-01"), grid.Last().Key)

	assert.False(t, grid.Days[0].InMonth, "December 29 belongs to the previous month")
	assert.True(t, grid.Days[3].InMonth)
	assert.Equal(t, 1, grid.Days[3].DayOfMonth)
	assert.False(t, grid.Last().InMonth)

	for _, d := range grid.Days {
		switch d.Key {
		case "2025-01-17":
			assert.True(t, d.IsToday)
			assert.True(t, d.HasEvents)
		case "2025-01-18":
			assert.False(t, d.IsToday)
			assert.True(t, d.HasEvents)
		default:
			assert.False(t, d.IsToday, d.Key)
			assert.False(t, d.HasEvents, d.Key)
		}
	}
}

func TestBuildMonth_WholeWeeks(t *testing.T) {
	for year := 2019; year <= 2031; year++ {
		for month := time.January; month <= time.December; month++ {
			grid, err := BuildMonth(year, month, "", nil)
			require.NoError(t, err)

			assert.Zero(t, len(grid.Days)%7, grid.Title)
			assert.Equal(t, time.Sunday, grid.First().Weekday, grid.Title)
			assert.Equal(t, time.Saturday, grid.Last().Weekday, grid.Title)
			assert.LessOrEqual(t, grid.First().Key, appointment.DateKey(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format("2006-01-02")))

			inMonth := 0
			for i, d := range grid.Days {
				if d.InMonth {
					inMonth++
				}
				if i > 0 {
					prev := grid.Days[i-1].Key.Time(time.UTC)
					assert.Equal(t, prev.AddDate(0, 0, 1), d.Key.Time(time.UTC), "consecutive dates")
				}
			}
			daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
			assert.Equal(t, daysInMonth, inMonth, grid.Title)
		}
	}
}

func TestBuildMonth_NoPadding(t *testing.T) {
	// February 2015 starts on a Sunday and ends on a Saturday.
	grid, err := BuildMonth(2015, time.February, "", nil)
	require.NoError(t, err)

	require.Len(t, grid.Days, 28)
	assert.Equal(t, appointment.DateKey("2015-02-01"), grid.First().Key)
	assert.Equal(t, appointment.DateKey("2015-02-28"), grid.Last().Key)
	for _, d := range grid.Days {
		assert.True(t, d.InMonth)
	}
}

func TestBuildMonth_YearRollover(t *testing.T) {
	grid, err := BuildMonth(2025, time.December, "", nil)
	require.NoError(t, err)

	assert.Equal(t, appointment.DateKey("2025-11-30"), grid.First().Key)
	assert.Equal(t, appointment.DateKey("2026-01-03"), grid.Last().Key)
}

func TestBuildMonth_InvalidMonth(t *testing.T) {
	_, err := BuildMonth(2025, 13, "", nil)
	assert.ErrorIs(t, err, ErrInvalidMonth)

	_, err = BuildMonth(2025, 0, "", nil)
	assert.ErrorIs(t, err, ErrInvalidMonth)
}

func TestBuildMonth_YearRange(t *testing.T) {
	tests := []struct {
		name    string
		year    int
		month   time.Month
		wantErr bool
	}{
		{"first representable month", 1, time.January, false},
		{"last month without overflow", 9999, time.November, false},
		{"december pads into a five-digit year", 9999, time.December, true},
		{"year zero", 0, time.January, true},
		{"negative year", -1, time.January, true},
		{"beyond time range", 1099511627776, time.January, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid, err := BuildMonth(tt.year, tt.month, "", nil)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidYear)
				return
			}
			require.NoError(t, err)
			for _, d := range grid.Days {
				parsed, err := appointment.ParseDateKey(d.Key.String())
				require.NoError(t, err, d.Key)
				assert.Equal(t, d.Key, parsed)
			}
		})
	}
}

func TestBuildMonth_WeekdaysAreIndependent(t *testing.T) {
	first, err := BuildMonth(2025, time.January, "", nil)
	require.NoError(t, err)
	first.Weekdays[0] = "changed"

	second, err := BuildMonth(2025, time.February, "", nil)
	require.NoError(t, err)
	assert.Equal(t, "Sun", second.Weekdays[0])
}

func TestMonth_Weeks(t *testing.T) {
	grid, err := BuildMonth(2025, time.March, "", nil)
	require.NoError(t, err)

	weeks := grid.Weeks()
	require.Len(t, weeks, 6)
	for _, week := range weeks {
		require.Len(t, week, 7)
		assert.Equal(t, time.Sunday, week[0].Weekday)
	}
}

func TestShiftMonth(t *testing.T) {
	tests := []struct {
		name      string
		year      int
		month     time.Month
		delta     int
		wantYear  int
		wantMonth time.Month
	}{
		{"next within year", 2025, time.January, 1, 2025, time.February},
		{"next across year", 2025, time.December, 1, 2026, time.January},
		{"previous across year", 2025, time.January, -1, 2024, time.December},
		{"far back", 2025, time.March, -15, 2023, time.December},
		{"no change", 2025, time.June, 0, 2025, time.June},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			year, month := ShiftMonth(tt.year, tt.month, tt.delta)
			assert.Equal(t, tt.wantYear, year)
			assert.Equal(t, tt.wantMonth, month)
		})
	}
}

func TestBuildDayDetail(t *testing.T) {
	detail := BuildDayDetail("2025-01-17", index)

	assert.Equal(t, "Friday, January 17, 2025", detail.Label)
	require.Len(t, detail.Events, 2)
	assert.Equal(t, appointment.TimeOfDay("10:00"), detail.Events[0].Time)
	assert.Equal(t, appointment.TimeOfDay("14:30"), detail.Events[1].Time)
	assert.False(t, detail.Empty())

	empty := BuildDayDetail("2025-01-19", index)
	assert.True(t, empty.Empty())
	assert.NotNil(t, empty.Events)
}
