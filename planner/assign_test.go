package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lockin-app/lockin/models"
)

func someDays(n int) []ScheduledDay {
	days := make([]ScheduledDay, 0, n)
	d := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		days = append(days, ScheduledDay{
			Date:      d,
			DayOfWeek: d.Weekday(),
			Month:     int(d.Month()),
			Week:      1 + i/7,
		})
		d = d.AddDate(0, 0, 1)
	}
	return days
}

func TestAssignTasksStopsWhenTitlesRunOut(t *testing.T) {
	days := someDays(10)
	titles := []string{"a", "b", "c"}

	tasks := AssignTasks(days, titles, []string{"Theme"}, "regular")
	require.Len(t, tasks, 3, "assignment stops at the last title, trailing days stay empty")
	assert.Equal(t, "a", tasks[0].Title)
	assert.Equal(t, "c", tasks[2].Title)
}

func TestAssignTasksStopsWhenDaysRunOut(t *testing.T) {
	tasks := AssignTasks(someDays(2), []string{"a", "b", "c", "d"}, nil, "regular")
	require.Len(t, tasks, 2)
}

func TestAssignTasksDayNumbersAndDates(t *testing.T) {
	days := someDays(5)
	tasks := AssignTasks(days, []string{"a", "b", "c", "d", "e"}, nil, "regular")
	require.Len(t, tasks, 5)
	for i, task := range tasks {
		assert.Equal(t, i+1, task.Day)
		assert.Equal(t, days[i].Date, task.Date)
		assert.Equal(t, days[i].Month, task.Month)
		assert.Equal(t, days[i].Week, task.Week)
		assert.NotEmpty(t, task.TaskID)
	}
}

func TestAssignTasksTypeCycle(t *testing.T) {
	tasks := AssignTasks(someDays(6), []string{"a", "b", "c", "d", "e", "f"}, nil, "regular")
	require.Len(t, tasks, 6)

	expected := []string{
		models.TaskTypeLearn, models.TaskTypeLearn, models.TaskTypePractice,
		models.TaskTypeBuild, models.TaskTypeReview, models.TaskTypeLearn,
	}
	for i, task := range tasks {
		assert.Equal(t, expected[i], task.Type)
		assert.Equal(t, PointsFor(expected[i]), task.Points)
	}
}

func TestMinutesFor(t *testing.T) {
	assert.Equal(t, 30, MinutesFor("casual"))
	assert.Equal(t, 60, MinutesFor("regular"))
	assert.Equal(t, 90, MinutesFor("serious"))
	assert.Equal(t, 120, MinutesFor("intense"))
	assert.Equal(t, 60, MinutesFor(""), "unknown commitment defaults to regular")
}

func TestPointsFor(t *testing.T) {
	assert.Equal(t, 10, PointsFor(models.TaskTypeLearn))
	assert.Equal(t, 15, PointsFor(models.TaskTypePractice))
	assert.Equal(t, 25, PointsFor(models.TaskTypeBuild))
	assert.Equal(t, 10, PointsFor(models.TaskTypeReview))
	assert.Equal(t, 10, PointsFor("unknown"))
}

func TestGenerateDraft(t *testing.T) {
	draft := Generate(Request{
		Goal: "learn django and ship an api",
		Year: 2026,
		Mode: "fullweek",
	})

	assert.NotEmpty(t, draft.PlanID)
	assert.Equal(t, CategoryBackend, draft.Category)
	assert.Equal(t, "12 months of backend", draft.Title)
	assert.Equal(t, "learn django and ship an api", draft.Goal)
	assert.Equal(t, 2026, draft.Year)
	require.Len(t, draft.Themes, 12)
	assert.NotEmpty(t, draft.Tasks)

	// With a full-week calendar there are more days than curriculum titles,
	// so the task count equals the flattened title count.
	assert.Len(t, draft.Tasks, len(FlattenTitles(Track(CategoryBackend))))
}
