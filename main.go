package main

import (
	"github.com/lockin-app/lockin/config"
	"github.com/lockin-app/lockin/models"
	"github.com/lockin-app/lockin/notify"
	"github.com/lockin-app/lockin/routes"
	"github.com/lockin-app/lockin/utils"
)

func main() {
	cfg := config.Load()

	// Initialize logger early
	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}

	db := config.InitDatabase(
		&models.User{},
		&models.Plan{},
		&models.DailyTask{},
		&models.TaskCompletion{},
		&models.CheckIn{},
	)

	r := routes.SetupRouter(db)

	// Daily reminder batch runs in the background (best-effort)
	notify.StartReminderScheduler(db, cfg.ReminderHour)

	utils.Sugar.Infof("Starting server on port %s (graceful)", cfg.AppPort)
	if err := utils.GraceServer(":"+cfg.AppPort, r); err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}
