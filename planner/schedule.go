package planner

import "time"

// ScheduleMode selects which calendar days receive tasks.
type ScheduleMode string

const (
	// ModeWeekdays schedules Monday through Friday only.
	ModeWeekdays ScheduleMode = "weekdays"
	// ModeFullWeek schedules every day of the year.
	ModeFullWeek ScheduleMode = "fullweek"
)

// ParseMode normalizes a mode string, defaulting to weekdays.
func ParseMode(s string) ScheduleMode {
	if s == string(ModeFullWeek) {
		return ModeFullWeek
	}
	return ModeWeekdays
}

// ScheduledDay is one calendar slot in a plan. Immutable after generation.
type ScheduledDay struct {
	Date      time.Time
	DayOfWeek time.Weekday
	Month     int
	Week      int
}

// BuildSchedule walks every day of the target year in order and emits the
// days selected by mode. The week counter starts at 1 and increments each
// time the walk crosses a Sunday after at least one prior day, so weekday
// schedules still advance their week number over the excluded weekend.
func BuildSchedule(year int, mode ScheduleMode) []ScheduledDay {
	size := 366
	if mode == ModeWeekdays {
		size = 262
	}
	days := make([]ScheduledDay, 0, size)

	week := 1
	seen := 0
	d := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	for d.Year() == year {
		if d.Weekday() == time.Sunday && seen > 0 {
			week++
		}
		seen++

		if mode == ModeFullWeek || isWeekday(d.Weekday()) {
			days = append(days, ScheduledDay{
				Date:      d,
				DayOfWeek: d.Weekday(),
				Month:     int(d.Month()),
				Week:      week,
			})
		}
		d = d.AddDate(0, 0, 1)
	}
	return days
}

func isWeekday(w time.Weekday) bool {
	return w != time.Saturday && w != time.Sunday
}
