package models

import "time"

// Task types and their point values.
const (
	TaskTypeLearn    = "learn"
	TaskTypePractice = "practice"
	TaskTypeBuild    = "build"
	TaskTypeReview   = "review"
)

// DailyTask is one scheduled unit of work inside a plan. Tasks are created
// wholesale at plan-generation time and never mutated afterwards; completion
// lives in a separate TaskCompletion row.
type DailyTask struct {
	ID               uint      `gorm:"primaryKey" json:"-"`
	PlanRef          uint      `gorm:"index;not null" json:"-"`
	TaskID           string    `gorm:"size:36;index;not null" json:"task_id"`
	Day              int       `gorm:"not null" json:"day"`
	Date             time.Time `gorm:"type:date;not null" json:"date"`
	Title            string    `gorm:"size:255;not null" json:"title"`
	Description      string    `gorm:"type:text" json:"description"`
	Type             string    `gorm:"size:16;not null" json:"type"`
	EstimatedMinutes int       `gorm:"not null" json:"estimated_minutes"`
	Points           int       `gorm:"not null" json:"points"`
	Month            int       `gorm:"not null" json:"month"`
	Week             int       `gorm:"not null" json:"week"`
	CreatedAt        time.Time `json:"created_at"`
}
