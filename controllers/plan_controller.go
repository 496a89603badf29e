package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lockin-app/lockin/ai"
	"github.com/lockin-app/lockin/models"
	"github.com/lockin-app/lockin/planner"
	"github.com/lockin-app/lockin/store"
	"github.com/lockin-app/lockin/utils"
)

// PlanController exposes plan generation and lifecycle endpoints.
type PlanController struct {
	plans *store.PlanStore
	users *store.UserStore
	ai    *ai.Client
}

// NewPlanController creates a PlanController. The AI client may be nil, in
// which case plan generation skips goal analysis.
func NewPlanController(plans *store.PlanStore, users *store.UserStore, aiClient *ai.Client) *PlanController {
	return &PlanController{plans: plans, users: users, ai: aiClient}
}

// Generate builds a year-long plan from a free-text goal and stores it.
func (p *PlanController) Generate(ctx *gin.Context) {
	user, ok := p.loadUser(ctx)
	if !ok {
		return
	}

	type request struct {
		Goal       string `json:"goal" binding:"required,min=3,max=500"`
		Category   string `json:"category"`
		Title      string `json:"title"`
		Year       int    `json:"year"`
		Mode       string `json:"mode"`
		Commitment string `json:"commitment"`
	}
	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Fail(ctx, http.StatusBadRequest, "invalid request payload")
		return
	}

	draft := planner.Generate(planner.Request{
		Goal:       utils.Sanitize(strings.TrimSpace(req.Goal)),
		Category:   req.Category,
		Title:      utils.Sanitize(strings.TrimSpace(req.Title)),
		Year:       req.Year,
		Mode:       req.Mode,
		Commitment: req.Commitment,
	})

	// Goal analysis is advisory: a model failure never blocks plan creation.
	var analysis *ai.GoalAnalysis
	if p.ai != nil {
		if result, err := p.ai.AnalyzeGoal(ctx.Request.Context(), draft.Goal); err == nil {
			analysis = result
		} else {
			utils.Sugar.Warnf("goal analysis skipped: %v", err)
		}
	}

	plan, err := p.plans.Add(user, draft)
	if err != nil {
		if errors.Is(err, store.ErrPlanLimit) {
			utils.Fail(ctx, http.StatusConflict, "active plan limit reached, archive a plan first")
			return
		}
		utils.Fail(ctx, http.StatusInternalServerError, "failed to store plan")
		return
	}

	payload := gin.H{"plan": planSummary(plan), "task_count": len(plan.Tasks)}
	if analysis != nil {
		payload["analysis"] = analysis
	}
	utils.OK(ctx, payload)
}

// List returns the user's plans. Archived plans are included when the
// include_archived query flag is set.
func (p *PlanController) List(ctx *gin.Context) {
	user, ok := p.loadUser(ctx)
	if !ok {
		return
	}

	includeArchived := ctx.Query("include_archived") == "true"
	plans, err := p.plans.ListByUser(user.ID, includeArchived)
	if err != nil {
		utils.Fail(ctx, http.StatusInternalServerError, "failed to list plans")
		return
	}

	summaries := make([]gin.H, 0, len(plans))
	for i := range plans {
		summaries = append(summaries, planSummary(&plans[i]))
	}
	utils.OK(ctx, gin.H{"plans": summaries, "active_plan_id": user.ActivePlanID})
}

// Get returns a single plan with its full task list. The response is cached
// briefly in Redis since task rows only change on completion writes.
func (p *PlanController) Get(ctx *gin.Context) {
	user, ok := p.loadUser(ctx)
	if !ok {
		return
	}
	planID := ctx.Param("id")

	cacheKey := planCacheKey(user.ID, planID)
	if b, hit := utils.CacheGetBytes(cacheKey); hit {
		var cached planDetail
		if err := json.Unmarshal(b, &cached); err == nil {
			utils.OK(ctx, cached)
			return
		}
	}

	plan, err := p.plans.Get(user.ID, planID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.Fail(ctx, http.StatusNotFound, "plan not found")
			return
		}
		utils.Fail(ctx, http.StatusInternalServerError, "failed to load plan")
		return
	}

	detail := planDetail{Plan: planSummary(plan), Tasks: plan.Tasks}
	utils.CacheSetJSON(cacheKey, detail, 2*time.Minute)
	utils.OK(ctx, detail)
}

// Rename updates a plan's title.
func (p *PlanController) Rename(ctx *gin.Context) {
	user, ok := p.loadUser(ctx)
	if !ok {
		return
	}
	planID := ctx.Param("id")

	type request struct {
		Title string `json:"title" binding:"required,min=1,max=120"`
	}
	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Fail(ctx, http.StatusBadRequest, "invalid request payload")
		return
	}

	title := utils.Sanitize(strings.TrimSpace(req.Title))
	if title == "" {
		utils.Fail(ctx, http.StatusBadRequest, "title cannot be empty")
		return
	}

	if err := p.plans.Rename(user.ID, planID, title); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.Fail(ctx, http.StatusNotFound, "plan not found")
			return
		}
		utils.Fail(ctx, http.StatusInternalServerError, "failed to rename plan")
		return
	}

	invalidatePlanCache(user.ID, planID)
	utils.OK(ctx, gin.H{"plan_id": planID, "title": title})
}

// Archive soft-archives a plan. Tasks and completion history are kept.
func (p *PlanController) Archive(ctx *gin.Context) {
	user, ok := p.loadUser(ctx)
	if !ok {
		return
	}
	planID := ctx.Param("id")

	if err := p.plans.Archive(user, planID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.Fail(ctx, http.StatusNotFound, "plan not found")
			return
		}
		utils.Fail(ctx, http.StatusInternalServerError, "failed to archive plan")
		return
	}

	invalidatePlanCache(user.ID, planID)
	utils.OK(ctx, gin.H{
		"plan_id":        planID,
		"status":         models.PlanStatusArchived,
		"active_plan_id": user.ActivePlanID,
	})
}

// Unarchive restores an archived plan, subject to the active-plan cap.
func (p *PlanController) Unarchive(ctx *gin.Context) {
	user, ok := p.loadUser(ctx)
	if !ok {
		return
	}
	planID := ctx.Param("id")

	if err := p.plans.Unarchive(user, planID); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			utils.Fail(ctx, http.StatusNotFound, "plan not found")
		case errors.Is(err, store.ErrPlanLimit):
			utils.Fail(ctx, http.StatusConflict, "active plan limit reached, archive a plan first")
		default:
			utils.Fail(ctx, http.StatusInternalServerError, "failed to unarchive plan")
		}
		return
	}

	invalidatePlanCache(user.ID, planID)
	utils.OK(ctx, gin.H{"plan_id": planID, "status": models.PlanStatusActive})
}

// SwitchActive marks a plan as the one the dashboard follows.
func (p *PlanController) SwitchActive(ctx *gin.Context) {
	user, ok := p.loadUser(ctx)
	if !ok {
		return
	}
	planID := ctx.Param("id")

	if err := p.plans.SwitchActive(user, planID); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			utils.Fail(ctx, http.StatusNotFound, "plan not found")
		case errors.Is(err, store.ErrPlanArchived):
			utils.Fail(ctx, http.StatusConflict, "cannot activate an archived plan")
		default:
			utils.Fail(ctx, http.StatusInternalServerError, "failed to switch plan")
		}
		return
	}

	utils.OK(ctx, gin.H{"active_plan_id": planID})
}

func (p *PlanController) loadUser(ctx *gin.Context) (*models.User, bool) {
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

type planDetail struct {
	Plan  gin.H              `json:"plan"`
	Tasks []models.DailyTask `json:"tasks"`
}

func planSummary(plan *models.Plan) gin.H {
	return gin.H{
		"plan_id":      plan.PlanID,
		"title":        plan.Title,
		"description":  plan.Description,
		"category":     plan.Category,
		"goal":         plan.Goal,
		"year":         plan.Year,
		"mode":         plan.Mode,
		"commitment":   plan.Commitment,
		"status":       plan.Status,
		"revision":     plan.Revision,
		"total_points": plan.TotalPoints,
		"themes":       plan.Themes,
		"archived_at":  plan.ArchivedAt,
		"created_at":   plan.CreatedAt,
	}
}

func planCacheKey(userID uint, planID string) string {
	return fmt.Sprintf("plan:detail:%d:%s", userID, planID)
}

func invalidatePlanCache(userID uint, planID string) {
	utils.InvalidateByPrefix(planCacheKey(userID, planID))
}
