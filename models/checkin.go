package models

import "time"

// CheckIn stores one daily check-in per user. The unique (user, day) index
// is the hard guarantee that a second check-in on the same calendar day
// cannot be recorded.
type CheckIn struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"index:idx_checkin_user_day,unique;not null" json:"user_id"`
	Day            string    `gorm:"size:10;index:idx_checkin_user_day,unique;not null" json:"day"` // YYYY-MM-DD
	StreakAchieved int       `json:"streak_achieved"`
	CreatedAt      time.Time `json:"created_at"`
}

// DayKey formats a time as the canonical check-in day key.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}
