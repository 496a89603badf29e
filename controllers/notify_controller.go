package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lockin-app/lockin/notify"
	"github.com/lockin-app/lockin/utils"
)

// NotifyController exposes manual notification triggers. The daily reminder
// normally runs on the scheduler; these endpoints exist for operators and
// for the client to request a welcome message after signup.
type NotifyController struct {
	db *gorm.DB
}

// NewNotifyController creates a NotifyController.
func NewNotifyController(db *gorm.DB) *NotifyController {
	return &NotifyController{db: db}
}

// SendWelcome sends the signup welcome message to the authenticated user.
func (n *NotifyController) SendWelcome(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Fail(ctx, http.StatusUnauthorized, "unauthorized")
		return
	}

	var user struct {
		Name  string
		Email string
	}
	if err := n.db.Table("users").Select("name, email").Where("id = ?", userID).Scan(&user).Error; err != nil {
		utils.Fail(ctx, http.StatusInternalServerError, "failed to load user")
		return
	}
	if user.Email == "" {
		utils.Fail(ctx, http.StatusBadRequest, "account has no email address")
		return
	}

	subject, body := notify.WelcomeBody(user.Name)
	if err := notify.SendMail(user.Email, subject, body); err != nil {
		utils.Sugar.Warnf("welcome mail to user %d failed: %v", userID, err)
		utils.Fail(ctx, http.StatusBadGateway, "failed to send welcome message")
		return
	}
	utils.OK(ctx, gin.H{"sent": true})
}

// RemindAll runs the reminder batch immediately instead of waiting for the
// scheduled hour. Per-user failures are soft; the batch always completes.
func (n *NotifyController) RemindAll(ctx *gin.Context) {
	sent, failed := notify.RemindInactive(n.db)
	utils.OK(ctx, gin.H{"sent": sent, "failed": failed})
}
