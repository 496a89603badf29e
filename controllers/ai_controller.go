package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lockin-app/lockin/ai"
	"github.com/lockin-app/lockin/utils"
)

// AIController fronts the model-backed helpers. Every endpoint makes a
// single model attempt; a failure is reported to the client, not retried.
type AIController struct {
	client *ai.Client
}

// NewAIController creates an AIController. A nil client disables the group.
func NewAIController(client *ai.Client) *AIController {
	return &AIController{client: client}
}

func (a *AIController) ready(ctx *gin.Context) bool {
	if a.client == nil {
		utils.Fail(ctx, http.StatusServiceUnavailable, "ai features are not configured")
		return false
	}
	return true
}

// AnalyzeGoal judges whether a learning goal is feasible in a year and
// suggests refinements.
func (a *AIController) AnalyzeGoal(ctx *gin.Context) {
	if !a.ready(ctx) {
		return
	}

	type request struct {
		Goal string `json:"goal" binding:"required,min=3,max=500"`
	}
	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Fail(ctx, http.StatusBadRequest, "invalid request payload")
		return
	}

	analysis, err := a.client.AnalyzeGoal(ctx.Request.Context(), strings.TrimSpace(req.Goal))
	if err != nil {
		utils.Sugar.Warnf("goal analysis failed: %v", err)
		utils.Fail(ctx, http.StatusBadGateway, "goal analysis failed")
		return
	}
	utils.OK(ctx, analysis)
}

// GenerateQuiz builds a short multiple-choice quiz for a task topic.
func (a *AIController) GenerateQuiz(ctx *gin.Context) {
	if !a.ready(ctx) {
		return
	}

	type request struct {
		Topic     string `json:"topic" binding:"required,min=2,max=200"`
		Questions int    `json:"questions"`
	}
	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Fail(ctx, http.StatusBadRequest, "invalid request payload")
		return
	}

	quiz, err := a.client.GenerateQuiz(ctx.Request.Context(), strings.TrimSpace(req.Topic), req.Questions)
	if err != nil {
		utils.Sugar.Warnf("quiz generation failed: %v", err)
		utils.Fail(ctx, http.StatusBadGateway, "quiz generation failed")
		return
	}
	utils.OK(ctx, quiz)
}

// FindResources fetches curated learning resources for a topic.
func (a *AIController) FindResources(ctx *gin.Context) {
	if !a.ready(ctx) {
		return
	}

	type request struct {
		Topic string `json:"topic" binding:"required,min=2,max=200"`
	}
	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Fail(ctx, http.StatusBadRequest, "invalid request payload")
		return
	}

	resources, err := a.client.FindResources(ctx.Request.Context(), strings.TrimSpace(req.Topic))
	if err != nil {
		utils.Sugar.Warnf("resource lookup failed: %v", err)
		utils.Fail(ctx, http.StatusBadGateway, "resource lookup failed")
		return
	}
	utils.OK(ctx, gin.H{"resources": resources})
}

// VerifySolution reviews a code submission against a practice problem.
func (a *AIController) VerifySolution(ctx *gin.Context) {
	if !a.ready(ctx) {
		return
	}

	type request struct {
		Problem  string `json:"problem" binding:"required,min=3"`
		Language string `json:"language" binding:"required"`
		Code     string `json:"code" binding:"required"`
	}
	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Fail(ctx, http.StatusBadRequest, "invalid request payload")
		return
	}

	verdict, err := a.client.VerifySolution(ctx.Request.Context(), req.Problem, req.Language, req.Code)
	if err != nil {
		utils.Sugar.Warnf("solution verification failed: %v", err)
		utils.Fail(ctx, http.StatusBadGateway, "solution verification failed")
		return
	}
	utils.OK(ctx, verdict)
}
