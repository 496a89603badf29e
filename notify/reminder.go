package notify

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/lockin-app/lockin/models"
	"github.com/lockin-app/lockin/utils"
)

// RemindInactive sends a reminder to every user who has not checked in
// today. Users are processed sequentially; a vendor failure is logged and
// counted, never aborts the batch, and nothing is rolled back.
func RemindInactive(db *gorm.DB) (sent, failed int) {
	day := models.DayKey(time.Now())

	var users []models.User
	err := db.Where("id NOT IN (?)",
		db.Model(&models.CheckIn{}).Select("user_id").Where("day = ?", day),
	).Find(&users).Error
	if err != nil {
		utils.Sugar.Errorf("reminder batch: failed to list inactive users: %v", err)
		return 0, 0
	}

	for i := range users {
		user := &users[i]
		ok, err := deliverReminder(
			func() bool { return claimReminder(user.ID, day) },
			func() { releaseReminder(user.ID, day) },
			func() error { return remindOne(user) },
		)
		if err != nil {
			failed++
			utils.Sugar.Warnf("reminder to user %d failed: %v", user.ID, err)
			continue
		}
		if ok {
			sent++
		}
	}

	utils.Sugar.Infof("reminder batch finished: %d sent, %d failed, %d candidates", sent, failed, len(users))
	return sent, failed
}

func remindOne(user *models.User) error {
	subject, body := ReminderBody(user.Name, user.CurrentStreak)
	if user.Phone != "" {
		return SendSMS(user.Phone, body)
	}
	if user.Email != "" {
		return SendMail(user.Email, subject, body)
	}
	return fmt.Errorf("user %d has no contact channel", user.ID)
}

// deliverReminder runs one user's claim/send cycle. The claim is taken
// before the send so concurrent batches cannot double-send; a failed send
// releases it again so a later run the same day can retry.
func deliverReminder(claim func() bool, release func(), send func() error) (bool, error) {
	if !claim() {
		return false, nil // already reminded today
	}
	if err := send(); err != nil {
		release()
		return false, err
	}
	return true, nil
}

func reminderKey(userID uint, day string) string {
	return fmt.Sprintf("remind:%s:%d", day, userID)
}

// claimReminder takes a per-(user, day) lock in Redis so restarting the
// process cannot double-send. Without Redis the claim always succeeds.
func claimReminder(userID uint, day string) bool {
	rc := utils.GetRedis()
	if rc == nil {
		return true
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	ok, err := rc.SetNX(ctx, reminderKey(userID, day), "1", 24*time.Hour).Result()
	if err != nil {
		return true
	}
	return ok
}

// releaseReminder drops the day's claim after a failed send so the user is
// not silently skipped until tomorrow.
func releaseReminder(userID uint, day string) {
	rc := utils.GetRedis()
	if rc == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_ = rc.Del(ctx, reminderKey(userID, day)).Err()
}

// StartReminderScheduler launches a background goroutine that runs the
// reminder batch once per day at the configured local hour. Best-effort,
// like the rest of the notification path.
func StartReminderScheduler(db *gorm.DB, hour int) {
	if hour < 0 || hour > 23 {
		hour = 18
	}
	go func() {
		for {
			time.Sleep(untilNext(hour, time.Now()))
			RemindInactive(db)
		}
	}()
}

func untilNext(hour int, now time.Time) time.Duration {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next.Sub(now)
}
