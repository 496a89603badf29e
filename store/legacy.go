package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/lockin-app/lockin/models"
)

// legacyPlanDoc is the V1 embedded plan document shape: one plan per user,
// tasks and completion map inlined. It only exists here; the rest of the
// codebase works with V2 rows.
type legacyPlanDoc struct {
	Title      string                      `json:"title"`
	Category   string                      `json:"category"`
	Goal       string                      `json:"goal"`
	Year       int                         `json:"year"`
	Mode       string                      `json:"mode"`
	Commitment string                      `json:"commitment"`
	Themes     []string                    `json:"themes"`
	Tasks      []legacyTask                `json:"tasks"`
	Completed  map[string]legacyCompletion `json:"completed_tasks"`
}

type legacyTask struct {
	TaskID           string `json:"task_id"`
	Day              int    `json:"day"`
	Date             string `json:"date"` // YYYY-MM-DD
	Title            string `json:"title"`
	Description      string `json:"description"`
	Type             string `json:"type"`
	EstimatedMinutes int    `json:"estimated_minutes"`
	Points           int    `json:"points"`
	Month            int    `json:"month"`
	Week             int    `json:"week"`
}

type legacyCompletion struct {
	Points      int        `json:"points"`
	CompletedAt time.Time  `json:"completed_at"`
	QuizScore   *int       `json:"quiz_score,omitempty"`
}

// upgradeIfLegacy expands a V1 user's embedded plan into plan/task/
// completion rows and bumps the schema version. Runs at most once per user;
// after it commits the legacy column is cleared.
func (s *UserStore) upgradeIfLegacy(user *models.User) error {
	if user.SchemaVersion >= models.SchemaV2 {
		return nil
	}

	if len(user.LegacyPlan) == 0 {
		// V1 user who never generated a plan: nothing to expand.
		user.SchemaVersion = models.SchemaV2
		return s.db.Model(user).Update("schema_version", models.SchemaV2).Error
	}

	var doc legacyPlanDoc
	if err := json.Unmarshal(user.LegacyPlan, &doc); err != nil {
		return fmt.Errorf("decode legacy plan for user %d: %w", user.ID, err)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		themes := make([]models.MonthlyTheme, 0, len(doc.Themes))
		for i, t := range doc.Themes {
			themes = append(themes, models.MonthlyTheme{Month: i + 1, Title: t})
		}
		themesJSON, err := json.Marshal(themes)
		if err != nil {
			return err
		}

		total := 0
		for _, c := range doc.Completed {
			total += c.Points
		}

		plan := models.Plan{
			PlanID:      uuid.NewString(),
			UserID:      user.ID,
			Title:       doc.Title,
			Description: doc.Goal,
			Category:    doc.Category,
			Goal:        doc.Goal,
			Year:        doc.Year,
			Mode:        doc.Mode,
			Commitment:  doc.Commitment,
			Status:      models.PlanStatusActive,
			TotalPoints: total,
			Themes:      datatypes.JSON(themesJSON),
		}
		if err := tx.Create(&plan).Error; err != nil {
			return err
		}

		for _, lt := range doc.Tasks {
			date, err := time.Parse("2006-01-02", lt.Date)
			if err != nil {
				return fmt.Errorf("legacy task %s has bad date %q: %w", lt.TaskID, lt.Date, err)
			}
			task := models.DailyTask{
				PlanRef:          plan.ID,
				TaskID:           lt.TaskID,
				Day:              lt.Day,
				Date:             date,
				Title:            lt.Title,
				Description:      lt.Description,
				Type:             lt.Type,
				EstimatedMinutes: lt.EstimatedMinutes,
				Points:           lt.Points,
				Month:            lt.Month,
				Week:             lt.Week,
			}
			if err := tx.Create(&task).Error; err != nil {
				return err
			}
		}

		for taskID, lc := range doc.Completed {
			completion := models.TaskCompletion{
				PlanRef:     plan.ID,
				TaskID:      taskID,
				Points:      lc.Points,
				QuizScore:   lc.QuizScore,
				CompletedAt: lc.CompletedAt,
			}
			if err := tx.Create(&completion).Error; err != nil {
				return err
			}
		}

		user.SchemaVersion = models.SchemaV2
		user.ActivePlanID = plan.PlanID
		user.LegacyPlan = nil
		return tx.Model(user).Updates(map[string]interface{}{
			"schema_version": models.SchemaV2,
			"active_plan_id": plan.PlanID,
			"legacy_plan":    nil,
		}).Error
	})
}
