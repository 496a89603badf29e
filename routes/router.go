package routes

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lockin-app/lockin/ai"
	"github.com/lockin-app/lockin/config"
	"github.com/lockin-app/lockin/controllers"
	"github.com/lockin-app/lockin/middleware"
	"github.com/lockin-app/lockin/store"
	"github.com/lockin-app/lockin/utils"
)

// SetupRouter wires routes, middlewares, and controllers.
func SetupRouter(db *gorm.DB) *gin.Engine {
	cfg := config.Get()
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	// Replace default console logger with file-based zap logger
	gl, err := utils.NewRollingFileLogger(cfg.GinPath, cfg.LogLevel, cfg.LogMaxSizeMB, cfg.LogMaxBackups, cfg.LogMaxAgeDays, cfg.LogCompress)
	if err == nil {
		r.Use(utils.Ginzap(gl, time.RFC3339, true))
		r.Use(utils.RecoveryWithZap(gl, false))
	} else {
		r.Use(gin.Recovery())
	}

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	r.GET("/health", func(ctx *gin.Context) {
		utils.OK(ctx, gin.H{"status": "ok"})
	})

	users := store.NewUserStore(db)
	plans := store.NewPlanStore(db, cfg.MaxActivePlans)

	// The AI client is optional; without an API key the plan generator still
	// works from the static curriculum and the /ai group returns 503.
	var aiClient *ai.Client
	if cfg.AIAPIKey != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		client, err := ai.New(ctx, cfg.AIAPIKey, cfg.AIModel)
		if err != nil {
			utils.Sugar.Warnf("ai client init failed, ai features disabled: %v", err)
		} else {
			aiClient = client
		}
	}

	authController := controllers.NewAuthController(users)
	planController := controllers.NewPlanController(plans, users, aiClient)
	progressController := controllers.NewProgressController(plans, users)
	aiController := controllers.NewAIController(aiClient)
	notifyController := controllers.NewNotifyController(db)

	api := r.Group("/api/v1")

	authGroup := api.Group("/auth")
	authGroup.Use(middleware.RateLimitMiddleware())
	authGroup.POST("/register", authController.Register)
	authGroup.POST("/login", authController.Login)
	authGroup.GET("/oauth/:provider/login", authController.OAuthRedirect)
	authGroup.GET("/oauth/:provider/callback", authController.OAuthCallback)
	authGroup.GET("/me", middleware.AuthRequired(), authController.Me)
	authGroup.PATCH("/profile", middleware.AuthRequired(), authController.UpdateProfile)

	protected := api.Group("")
	protected.Use(middleware.AuthRequired())

	plansGroup := protected.Group("/plans")
	plansGroup.POST("", planController.Generate)
	plansGroup.GET("", planController.List)
	plansGroup.GET("/:id", planController.Get)
	plansGroup.PATCH("/:id", planController.Rename)
	plansGroup.POST("/:id/archive", planController.Archive)
	plansGroup.POST("/:id/unarchive", planController.Unarchive)
	plansGroup.POST("/:id/activate", planController.SwitchActive)
	// Legacy alias: older clients delete a plan; it archives.
	plansGroup.DELETE("/:id", planController.Archive)

	plansGroup.GET("/:id/progress", progressController.GetProgress)
	plansGroup.POST("/:id/complete", progressController.CompleteTask)
	plansGroup.POST("/:id/sync", progressController.SyncProgress)

	protected.POST("/checkin", progressController.CheckIn)
	protected.GET("/streak", progressController.GetStreak)
	protected.GET("/stats", progressController.Stats)

	aiGroup := protected.Group("/ai")
	aiGroup.Use(middleware.RateLimitMiddleware())
	aiGroup.POST("/analyze-goal", aiController.AnalyzeGoal)
	aiGroup.POST("/quiz", aiController.GenerateQuiz)
	aiGroup.POST("/resources", aiController.FindResources)
	aiGroup.POST("/verify-solution", aiController.VerifySolution)

	notifyGroup := protected.Group("/notify")
	notifyGroup.POST("/welcome", notifyController.SendWelcome)
	notifyGroup.POST("/remind-all", notifyController.RemindAll)

	r.NoRoute(func(ctx *gin.Context) {
		utils.Fail(ctx, http.StatusNotFound, "route not found")
	})

	return r
}
