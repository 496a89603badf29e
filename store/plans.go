package store

import (
	"encoding/json"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lockin-app/lockin/models"
	"github.com/lockin-app/lockin/planner"
)

// PlanStore wraps plan and task persistence. The active-plan cap is
// enforced here at the add/unarchive boundary.
type PlanStore struct {
	db        *gorm.DB
	maxActive int
}

// NewPlanStore creates a PlanStore with the given active-plan cap.
func NewPlanStore(db *gorm.DB, maxActive int) *PlanStore {
	if maxActive <= 0 {
		maxActive = 3
	}
	return &PlanStore{db: db, maxActive: maxActive}
}

// Add persists a generated draft for the user, honoring the active-plan
// cap. The new plan becomes active when the user has no active plan yet.
func (s *PlanStore) Add(user *models.User, draft planner.Draft) (*models.Plan, error) {
	count, err := s.activeCount(user.ID)
	if err != nil {
		return nil, err
	}
	if count >= int64(s.maxActive) {
		return nil, ErrPlanLimit
	}

	themesJSON, err := json.Marshal(draft.Themes)
	if err != nil {
		return nil, err
	}

	plan := models.Plan{
		PlanID:      draft.PlanID,
		UserID:      user.ID,
		Title:       draft.Title,
		Description: draft.Description,
		Category:    draft.Category,
		Goal:        draft.Goal,
		Year:        draft.Year,
		Mode:        draft.Mode,
		Commitment:  draft.Commitment,
		Status:      models.PlanStatusActive,
		Themes:      datatypes.JSON(themesJSON),
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&plan).Error; err != nil {
			return err
		}
		// Task rows are written in batches; a year of tasks in one insert
		// would exceed sensible packet sizes.
		tasks := draft.Tasks
		for i := range tasks {
			tasks[i].PlanRef = plan.ID
		}
		if len(tasks) > 0 {
			if err := tx.CreateInBatches(tasks, 100).Error; err != nil {
				return err
			}
		}
		if user.ActivePlanID == "" {
			user.ActivePlanID = plan.PlanID
			if err := tx.Model(user).Update("active_plan_id", plan.PlanID).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// ListByUser returns the user's plans, optionally including archived ones.
// Tasks are not loaded; use Get for the full document.
func (s *PlanStore) ListByUser(userID uint, includeArchived bool) ([]models.Plan, error) {
	q := s.db.Where("user_id = ?", userID).Order("created_at ASC")
	if !includeArchived {
		q = q.Where("status = ?", models.PlanStatusActive)
	}
	var plans []models.Plan
	if err := q.Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

// Get loads one plan with its task list.
func (s *PlanStore) Get(userID uint, planID string) (*models.Plan, error) {
	var plan models.Plan
	err := s.db.Preload("Tasks", func(db *gorm.DB) *gorm.DB {
		return db.Order("day ASC")
	}).Where("user_id = ? AND plan_id = ?", userID, planID).First(&plan).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &plan, nil
}

// Rename updates a plan's title.
func (s *PlanStore) Rename(userID uint, planID, title string) error {
	res := s.db.Model(&models.Plan{}).
		Where("user_id = ? AND plan_id = ?", userID, planID).
		Update("title", title)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Archive soft-deletes a plan. When the archived plan was the user's active
// one, the pointer moves to another active plan if any remain, otherwise it
// clears, leaving the user in the no-active-plan state.
func (s *PlanStore) Archive(user *models.User, planID string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		res := tx.Model(&models.Plan{}).
			Where("user_id = ? AND plan_id = ? AND status = ?", user.ID, planID, models.PlanStatusActive).
			Updates(map[string]interface{}{"status": models.PlanStatusArchived, "archived_at": now})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}

		var remaining []models.Plan
		err := tx.Where("user_id = ? AND status = ?", user.ID, models.PlanStatusActive).
			Order("created_at ASC").Find(&remaining).Error
		if err != nil {
			return err
		}

		next := resolveActiveAfterArchive(user.ActivePlanID, planID, remaining)
		if next == user.ActivePlanID {
			return nil
		}
		user.ActivePlanID = next
		return tx.Model(user).Update("active_plan_id", user.ActivePlanID).Error
	})
}

// resolveActiveAfterArchive returns the user's active-plan pointer after
// archivedID was archived, given the remaining active plans ordered oldest
// first. Archiving a non-active plan leaves the pointer alone; archiving
// the active one moves it to the oldest remaining plan, or clears it when
// none remain, leaving the user in the no-active-plan state.
func resolveActiveAfterArchive(currentActive, archivedID string, remaining []models.Plan) string {
	if currentActive != archivedID {
		return currentActive
	}
	if len(remaining) == 0 {
		return ""
	}
	return remaining[0].PlanID
}

// Unarchive restores an archived plan, subject to the active-plan cap.
func (s *PlanStore) Unarchive(user *models.User, planID string) error {
	count, err := s.activeCount(user.ID)
	if err != nil {
		return err
	}
	if count >= int64(s.maxActive) {
		return ErrPlanLimit
	}

	res := s.db.Model(&models.Plan{}).
		Where("user_id = ? AND plan_id = ? AND status = ?", user.ID, planID, models.PlanStatusArchived).
		Updates(map[string]interface{}{"status": models.PlanStatusActive, "archived_at": nil})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	if user.ActivePlanID == "" {
		user.ActivePlanID = planID
		return s.db.Model(user).Update("active_plan_id", planID).Error
	}
	return nil
}

// SwitchActive points the user at a different plan.
func (s *PlanStore) SwitchActive(user *models.User, planID string) error {
	var plan models.Plan
	err := s.db.Where("user_id = ? AND plan_id = ?", user.ID, planID).First(&plan).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if plan.Status != models.PlanStatusActive {
		return ErrPlanArchived
	}
	user.ActivePlanID = planID
	return s.db.Model(user).Update("active_plan_id", planID).Error
}

// Completions returns the completion records of a plan.
func (s *PlanStore) Completions(planRef uint) ([]models.TaskCompletion, error) {
	var rows []models.TaskCompletion
	if err := s.db.Where("plan_ref = ?", planRef).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// CompleteTask credits a task at most once. The second call with the same
// task ID reports credited=false and changes nothing.
func (s *PlanStore) CompleteTask(user *models.User, plan *models.Plan, taskID string, points int, quizScore *int) (bool, error) {
	credited := false
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var locked models.Plan
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&locked, plan.ID).Error; err != nil {
			return err
		}

		var existing int64
		err := tx.Model(&models.TaskCompletion{}).
			Where("plan_ref = ? AND task_id = ?", plan.ID, taskID).
			Count(&existing).Error
		if err != nil {
			return err
		}

		if !applyCredit(&locked, existing > 0, points) {
			return nil
		}

		completion := models.TaskCompletion{
			PlanRef:     plan.ID,
			TaskID:      taskID,
			Points:      points,
			QuizScore:   quizScore,
			CompletedAt: time.Now(),
		}
		if err := tx.Create(&completion).Error; err != nil {
			return err
		}

		if err := tx.Save(&locked).Error; err != nil {
			return err
		}
		plan.TotalPoints = locked.TotalPoints
		plan.Revision = locked.Revision

		user.Points += points
		if err := tx.Model(user).Update("points", user.Points).Error; err != nil {
			return err
		}
		credited = true
		return nil
	})
	return credited, err
}

// applyCredit awards a completion to the plan totals unless the task was
// already credited. A repeat completion leaves points and revision alone.
func applyCredit(plan *models.Plan, alreadyCredited bool, points int) bool {
	if alreadyCredited {
		return false
	}
	plan.TotalPoints += points
	plan.Revision++
	return true
}

// CompletionEntry is one record in a client progress sync payload.
type CompletionEntry struct {
	TaskID      string    `json:"task_id"`
	Points      int       `json:"points"`
	CompletedAt time.Time `json:"completed_at"`
	QuizScore   *int      `json:"quiz_score,omitempty"`
}

// SyncProgress merges a client-held completion map into the plan. The write
// is conditional on the client's base revision: a stale base is rejected
// with ErrStaleRevision instead of silently overwriting newer state.
// Completion rows already present are never altered; only missing entries
// are appended.
func (s *PlanStore) SyncProgress(user *models.User, plan *models.Plan, baseRevision int, entries []CompletionEntry) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var locked models.Plan
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&locked, plan.ID).Error; err != nil {
			return err
		}
		if locked.Revision != baseRevision {
			return ErrStaleRevision
		}

		added := 0
		for _, e := range entries {
			var existing models.TaskCompletion
			err := tx.Where("plan_ref = ? AND task_id = ?", plan.ID, e.TaskID).First(&existing).Error
			if err == nil {
				continue
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			completedAt := e.CompletedAt
			if completedAt.IsZero() {
				completedAt = time.Now()
			}
			completion := models.TaskCompletion{
				PlanRef:     plan.ID,
				TaskID:      e.TaskID,
				Points:      e.Points,
				QuizScore:   e.QuizScore,
				CompletedAt: completedAt,
			}
			if err := tx.Create(&completion).Error; err != nil {
				return err
			}
			locked.TotalPoints += e.Points
			user.Points += e.Points
			added++
		}

		if added > 0 {
			if err := tx.Model(user).Update("points", user.Points).Error; err != nil {
				return err
			}
		}
		locked.Revision++
		if err := tx.Save(&locked).Error; err != nil {
			return err
		}
		plan.TotalPoints = locked.TotalPoints
		plan.Revision = locked.Revision
		return nil
	})
}

func (s *PlanStore) activeCount(userID uint) (int64, error) {
	var count int64
	err := s.db.Model(&models.Plan{}).
		Where("user_id = ? AND status = ?", userID, models.PlanStatusActive).
		Count(&count).Error
	return count, err
}
