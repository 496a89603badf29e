package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lockin-app/lockin/models"
	"github.com/lockin-app/lockin/progress"
	"github.com/lockin-app/lockin/store"
	"github.com/lockin-app/lockin/utils"
)

// ProgressController handles task completion, check-ins, and streak state.
type ProgressController struct {
	plans *store.PlanStore
	users *store.UserStore
}

// NewProgressController creates a ProgressController.
func NewProgressController(plans *store.PlanStore, users *store.UserStore) *ProgressController {
	return &ProgressController{plans: plans, users: users}
}

// CompleteTask credits a task at most once. Completing an already-completed
// task succeeds with credited=false and awards nothing.
func (p *ProgressController) CompleteTask(ctx *gin.Context) {
	user, plan, ok := p.loadUserAndPlan(ctx)
	if !ok {
		return
	}

	type request struct {
		TaskID    string `json:"task_id" binding:"required"`
		QuizScore *int   `json:"quiz_score"`
	}
	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Fail(ctx, http.StatusBadRequest, "invalid request payload")
		return
	}

	task, found := findTask(plan, req.TaskID)
	if !found {
		utils.Fail(ctx, http.StatusNotFound, "task not found in plan")
		return
	}

	credited, err := p.plans.CompleteTask(user, plan, req.TaskID, task.Points, req.QuizScore)
	if err != nil {
		utils.Fail(ctx, http.StatusInternalServerError, "failed to record completion")
		return
	}

	invalidatePlanCache(user.ID, plan.PlanID)

	awarded := 0
	if credited {
		awarded = task.Points
	}
	utils.OK(ctx, gin.H{
		"task_id":      req.TaskID,
		"credited":     credited,
		"points":       awarded,
		"total_points": plan.TotalPoints,
		"user_points":  user.Points,
		"revision":     plan.Revision,
	})
}

// CheckIn records today's check-in and advances the streak. A repeat call on
// the same calendar day is a no-op that reports the unchanged state.
func (p *ProgressController) CheckIn(ctx *gin.Context) {
	user, ok := p.loadUser(ctx)
	if !ok {
		return
	}

	now := time.Now()
	state := streakState(user)
	result := progress.Advance(state, now)

	if result.Applied {
		db := p.users.DB()
		err := db.Transaction(func(tx *gorm.DB) error {
			record := models.CheckIn{
				UserID:         user.ID,
				Day:            models.DayKey(now),
				StreakAchieved: result.State.Current,
			}
			if err := tx.Create(&record).Error; err != nil {
				return err
			}
			applyStreakState(user, result.State)
			return tx.Model(user).Updates(map[string]interface{}{
				"current_streak":  user.CurrentStreak,
				"longest_streak":  user.LongestStreak,
				"last_checkin_at": user.LastCheckinAt,
			}).Error
		})
		if err != nil {
			utils.Fail(ctx, http.StatusInternalServerError, "failed to record check-in")
			return
		}
	}

	utils.OK(ctx, gin.H{
		"applied":        result.Applied,
		"current_streak": result.State.Current,
		"longest_streak": result.State.Longest,
		"day":            models.DayKey(now),
	})
}

// GetStreak returns the user's streak after sweeping a stale one to zero.
// The sweep write only happens when the value actually changed.
func (p *ProgressController) GetStreak(ctx *gin.Context) {
	user, ok := p.loadUser(ctx)
	if !ok {
		return
	}

	state := streakState(user)
	swept := progress.SweepReset(state, time.Now())
	if swept.Current != state.Current {
		user.CurrentStreak = swept.Current
		if err := p.users.DB().Model(user).Update("current_streak", swept.Current).Error; err != nil {
			utils.Fail(ctx, http.StatusInternalServerError, "failed to update streak")
			return
		}
	}

	utils.OK(ctx, gin.H{
		"current_streak":  swept.Current,
		"longest_streak":  swept.Longest,
		"last_checkin_at": user.LastCheckinAt,
	})
}

// GetProgress returns a plan's completion map alongside points and revision.
func (p *ProgressController) GetProgress(ctx *gin.Context) {
	user, plan, ok := p.loadUserAndPlan(ctx)
	if !ok {
		return
	}

	completions, err := p.plans.Completions(plan.ID)
	if err != nil {
		utils.Fail(ctx, http.StatusInternalServerError, "failed to load progress")
		return
	}

	completed := make(map[string]gin.H, len(completions))
	for _, c := range completions {
		completed[c.TaskID] = gin.H{
			"points":       c.Points,
			"completed_at": c.CompletedAt,
			"quiz_score":   c.QuizScore,
		}
	}

	utils.OK(ctx, gin.H{
		"plan_id":      plan.PlanID,
		"revision":     plan.Revision,
		"total_points": plan.TotalPoints,
		"completed":    completed,
		"user_points":  user.Points,
	})
}

// SyncProgress merges a client-held completion set into the plan. The client
// sends the revision it last saw; a stale one is rejected with 409 so the
// client can refetch and retry instead of clobbering newer state.
func (p *ProgressController) SyncProgress(ctx *gin.Context) {
	user, plan, ok := p.loadUserAndPlan(ctx)
	if !ok {
		return
	}

	type request struct {
		BaseRevision int                     `json:"base_revision"`
		Completions  []store.CompletionEntry `json:"completions" binding:"required"`
	}
	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Fail(ctx, http.StatusBadRequest, "invalid request payload")
		return
	}

	for _, e := range req.Completions {
		if _, found := findTask(plan, e.TaskID); !found {
			utils.Fail(ctx, http.StatusBadRequest, "unknown task in completion set: "+e.TaskID)
			return
		}
	}

	if err := p.plans.SyncProgress(user, plan, req.BaseRevision, req.Completions); err != nil {
		if errors.Is(err, store.ErrStaleRevision) {
			utils.Fail(ctx, http.StatusConflict, "plan changed since base revision, refetch and retry")
			return
		}
		utils.Fail(ctx, http.StatusInternalServerError, "failed to sync progress")
		return
	}

	invalidatePlanCache(user.ID, plan.PlanID)
	utils.OK(ctx, gin.H{
		"plan_id":      plan.PlanID,
		"revision":     plan.Revision,
		"total_points": plan.TotalPoints,
		"user_points":  user.Points,
	})
}

// Stats aggregates the dashboard numbers: points, streaks, completion counts.
func (p *ProgressController) Stats(ctx *gin.Context) {
	user, ok := p.loadUser(ctx)
	if !ok {
		return
	}

	plans, err := p.plans.ListByUser(user.ID, true)
	if err != nil {
		utils.Fail(ctx, http.StatusInternalServerError, "failed to load plans")
		return
	}

	var totalCompleted int64
	db := p.users.DB()
	for _, plan := range plans {
		var count int64
		if err := db.Model(&models.TaskCompletion{}).Where("plan_ref = ?", plan.ID).Count(&count).Error; err != nil {
			utils.Fail(ctx, http.StatusInternalServerError, "failed to count completions")
			return
		}
		totalCompleted += count
	}

	var checkIns int64
	if err := db.Model(&models.CheckIn{}).Where("user_id = ?", user.ID).Count(&checkIns).Error; err != nil {
		utils.Fail(ctx, http.StatusInternalServerError, "failed to count check-ins")
		return
	}

	utils.OK(ctx, gin.H{
		"points":          user.Points,
		"current_streak":  user.CurrentStreak,
		"longest_streak":  user.LongestStreak,
		"plans":           len(plans),
		"tasks_completed": totalCompleted,
		"check_ins":       checkIns,
		"active_plan_id":  user.ActivePlanID,
	})
}

func (p *ProgressController) loadUser(ctx *gin.Context) (*models.User, bool) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Fail(ctx, http.StatusUnauthorized, "unauthorized")
		return nil, false
	}
	user, err := p.users.GetByID(userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.Fail(ctx, http.StatusNotFound, "user not found")
		} else {
			utils.Fail(ctx, http.StatusInternalServerError, "failed to load user")
		}
		return nil, false
	}
	return user, true
}

func (p *ProgressController) loadUserAndPlan(ctx *gin.Context) (*models.User, *models.Plan, bool) {
	user, ok := p.loadUser(ctx)
	if !ok {
		return nil, nil, false
	}
	plan, err := p.plans.Get(user.ID, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.Fail(ctx, http.StatusNotFound, "plan not found")
		} else {
			utils.Fail(ctx, http.StatusInternalServerError, "failed to load plan")
		}
		return nil, nil, false
	}
	return user, plan, true
}

func findTask(plan *models.Plan, taskID string) (*models.DailyTask, bool) {
	for i := range plan.Tasks {
		if plan.Tasks[i].TaskID == taskID {
			return &plan.Tasks[i], true
		}
	}
	return nil, false
}

func streakState(user *models.User) progress.State {
	state := progress.State{
		Current: user.CurrentStreak,
		Longest: user.LongestStreak,
	}
	if user.LastCheckinAt != nil {
		state.LastCheckIn = *user.LastCheckinAt
	}
	return state
}

func applyStreakState(user *models.User, state progress.State) {
	user.CurrentStreak = state.Current
	user.LongestStreak = state.Longest
	last := state.LastCheckIn
	user.LastCheckinAt = &last
}
