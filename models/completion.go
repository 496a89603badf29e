package models

import "time"

// TaskCompletion records one completed task. Rows are append-only: once a
// (plan, task) pair exists it is never removed or altered, which is what
// makes completion crediting at-most-once.
type TaskCompletion struct {
	ID          uint      `gorm:"primaryKey" json:"-"`
	PlanRef     uint      `gorm:"index:idx_completion_plan_task,unique;not null" json:"-"`
	TaskID      string    `gorm:"size:36;index:idx_completion_plan_task,unique;not null" json:"task_id"`
	Points      int       `gorm:"not null" json:"points"`
	QuizScore   *int      `json:"quiz_score,omitempty"`
	CompletedAt time.Time `gorm:"not null" json:"completed_at"`
	CreatedAt   time.Time `json:"created_at"`
}
