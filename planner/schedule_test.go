package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	assert.Equal(t, ModeFullWeek, ParseMode("fullweek"))
	assert.Equal(t, ModeWeekdays, ParseMode("weekdays"))
	assert.Equal(t, ModeWeekdays, ParseMode(""))
	assert.Equal(t, ModeWeekdays, ParseMode("something-else"))
}

func TestBuildScheduleFullWeek(t *testing.T) {
	days := BuildSchedule(2026, ModeFullWeek)
	require.Len(t, days, 365)

	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), days[0].Date)
	assert.Equal(t, time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC), days[len(days)-1].Date)

	// leap year
	assert.Len(t, BuildSchedule(2024, ModeFullWeek), 366)
}

func TestBuildScheduleWeekdaysExcludesWeekends(t *testing.T) {
	days := BuildSchedule(2026, ModeWeekdays)
	require.NotEmpty(t, days)

	seen := map[string]int{}
	for _, d := range days {
		assert.NotEqual(t, time.Saturday, d.DayOfWeek)
		assert.NotEqual(t, time.Sunday, d.DayOfWeek)
		seen[d.Date.Format("2006-01-02")]++
	}

	// 2026-01-02 is a Friday, scheduled exactly once; 2026-01-03 is a
	// Saturday and must not appear.
	assert.Equal(t, 1, seen["2026-01-02"])
	assert.Zero(t, seen["2026-01-03"])
}

func TestBuildScheduleWeekNumbering(t *testing.T) {
	days := BuildSchedule(2026, ModeWeekdays)
	require.NotEmpty(t, days)

	// Jan 1 2026 is a Thursday: Thu and Fri belong to week 1, the following
	// Monday (Jan 5) to week 2. The weekend gap still advances the counter.
	assert.Equal(t, 1, days[0].Week)
	assert.Equal(t, 1, days[1].Week)
	assert.Equal(t, 2, days[2].Week)
	assert.Equal(t, time.Monday, days[2].DayOfWeek)

	prev := 0
	for _, d := range days {
		assert.GreaterOrEqual(t, d.Week, prev, "week numbers must never decrease")
		prev = d.Week
	}
}

func TestBuildScheduleMonths(t *testing.T) {
	for _, d := range BuildSchedule(2026, ModeFullWeek) {
		assert.Equal(t, int(d.Date.Month()), d.Month)
	}
}
