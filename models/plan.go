package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Plan status values. Plans are never hard-deleted; archiving is reversible.
const (
	PlanStatusActive   = "active"
	PlanStatusArchived = "archived"
)

// Schedule modes accepted by the generator.
const (
	ModeWeekdays = "weekdays"
	ModeFullWeek = "fullweek"
)

// Plan is one generated 12-month curriculum owned by a user. The daily task
// array lives in its own table so a single plan row stays small.
type Plan struct {
	ID          uint   `gorm:"primaryKey" json:"-"`
	PlanID      string `gorm:"size:36;uniqueIndex;not null" json:"plan_id"`
	UserID      uint   `gorm:"index;not null" json:"user_id"`
	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Category    string `gorm:"size:32;not null" json:"category"`
	Goal        string `gorm:"type:text" json:"goal"`
	Year        int    `gorm:"not null" json:"year"`
	Mode        string `gorm:"size:16;not null;default:'weekdays'" json:"mode"`
	Commitment  string `gorm:"size:16;not null;default:'regular'" json:"commitment"`
	Status      string `gorm:"size:16;index;not null;default:'active'" json:"status"`
	// Revision guards the progress sync write: a stale client base revision
	// is rejected instead of silently overwriting a newer one.
	Revision    int            `gorm:"default:0" json:"revision"`
	TotalPoints int            `gorm:"default:0" json:"total_points"`
	Themes      datatypes.JSON `json:"themes"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	ArchivedAt  *time.Time     `json:"archived_at,omitempty"`
	Tasks       []DailyTask    `gorm:"foreignKey:PlanRef;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"tasks,omitempty"`
}

// MonthlyTheme names the focus of one month within a plan.
type MonthlyTheme struct {
	Month int    `json:"month"`
	Title string `json:"title"`
}

// BeforeUpdate refreshes the UpdatedAt timestamp.
func (p *Plan) BeforeUpdate(tx *gorm.DB) error {
	p.UpdatedAt = time.Now()
	return nil
}
