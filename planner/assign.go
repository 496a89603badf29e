package planner

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/lockin-app/lockin/models"
)

// Commitment levels and their daily minutes.
var commitmentMinutes = map[string]int{
	"casual":  30,
	"regular": 60,
	"serious": 90,
	"intense": 120,
}

// typePoints is the per-type completion reward.
var typePoints = map[string]int{
	models.TaskTypeLearn:    10,
	models.TaskTypePractice: 15,
	models.TaskTypeBuild:    25,
	models.TaskTypeReview:   10,
}

// typeCycle spreads task types over consecutive scheduled days: two days of
// new material, then practice, then building, then review.
var typeCycle = []string{
	models.TaskTypeLearn,
	models.TaskTypeLearn,
	models.TaskTypePractice,
	models.TaskTypeBuild,
	models.TaskTypeReview,
}

// MinutesFor maps a commitment level to estimated daily minutes, defaulting
// to the regular level for unknown input.
func MinutesFor(commitment string) int {
	if m, ok := commitmentMinutes[commitment]; ok {
		return m
	}
	return commitmentMinutes["regular"]
}

// PointsFor returns the completion reward for a task type.
func PointsFor(taskType string) int {
	if p, ok := typePoints[taskType]; ok {
		return p
	}
	return typePoints[models.TaskTypeLearn]
}

// AssignTasks zips the schedule with the ordered title list, one task per
// scheduled day. When the titles run out before the days do, assignment
// stops and the remaining days carry no task.
func AssignTasks(days []ScheduledDay, titles []string, themes []string, commitment string) []models.DailyTask {
	n := len(days)
	if len(titles) < n {
		n = len(titles)
	}

	minutes := MinutesFor(commitment)
	tasks := make([]models.DailyTask, 0, n)
	for i := 0; i < n; i++ {
		day := days[i]
		taskType := typeCycle[i%len(typeCycle)]
		theme := ""
		if day.Month >= 1 && day.Month <= len(themes) {
			theme = themes[day.Month-1]
		}
		tasks = append(tasks, models.DailyTask{
			TaskID:           uuid.NewString(),
			Day:              i + 1,
			Date:             day.Date,
			Title:            titles[i],
			Description:      taskDescription(titles[i], theme, taskType),
			Type:             taskType,
			EstimatedMinutes: minutes,
			Points:           PointsFor(taskType),
			Month:            day.Month,
			Week:             day.Week,
		})
	}
	return tasks
}

func taskDescription(title, theme, taskType string) string {
	verb := map[string]string{
		models.TaskTypeLearn:    "Study",
		models.TaskTypePractice: "Practice",
		models.TaskTypeBuild:    "Build",
		models.TaskTypeReview:   "Review",
	}[taskType]
	if theme == "" {
		return fmt.Sprintf("%s: %s", verb, title)
	}
	return fmt.Sprintf("%s: %s (part of %q)", verb, title, theme)
}
