package planner

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lockin-app/lockin/models"
)

// Request carries the user inputs for plan generation.
type Request struct {
	Goal       string
	Category   string // optional explicit category, overridden by goal keywords
	Title      string
	Year       int
	Mode       string
	Commitment string
}

// Draft is a fully generated plan before persistence.
type Draft struct {
	PlanID      string
	Title       string
	Description string
	Category    string
	Goal        string
	Year        int
	Mode        string
	Commitment  string
	Themes      []models.MonthlyTheme
	Tasks       []models.DailyTask
}

// Generate turns a learning goal into a year-long curriculum: resolve the
// category, build the calendar, and assign one curriculum task per
// scheduled day.
func Generate(req Request) Draft {
	year := req.Year
	if year == 0 {
		year = time.Now().Year()
	}
	mode := ParseMode(req.Mode)

	category := MatchCategory(req.Goal, req.Category)
	track := Track(category)
	titles := FlattenTitles(track)
	themeTitles := Themes(track)

	days := BuildSchedule(year, mode)
	tasks := AssignTasks(days, titles, themeTitles, req.Commitment)

	themes := make([]models.MonthlyTheme, 0, len(themeTitles))
	for i, t := range themeTitles {
		themes = append(themes, models.MonthlyTheme{Month: i + 1, Title: t})
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = fmt.Sprintf("12 months of %s", category)
	}

	return Draft{
		PlanID:      uuid.NewString(),
		Title:       title,
		Description: fmt.Sprintf("A %d-day %s curriculum generated for: %s", len(tasks), category, strings.TrimSpace(req.Goal)),
		Category:    category,
		Goal:        strings.TrimSpace(req.Goal),
		Year:        year,
		Mode:        string(mode),
		Commitment:  req.Commitment,
		Themes:      themes,
		Tasks:       tasks,
	}
}
