package models

import (
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Schema versions for the user document. V1 users carry a single embedded
// plan in LegacyPlan; V2 users own rows in the plans table. The store layer
// upgrades V1 rows to V2 on first read, so everything past the store only
// ever sees V2.
const (
	SchemaV1 = 1
	SchemaV2 = 2
)

// User represents a LockIn account. Passwords are stored as bcrypt hashes only.
type User struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	Email         string     `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Name          string     `gorm:"size:64;not null" json:"name"`
	Phone         string     `gorm:"size:32" json:"phone"`
	PasswordHash  string     `gorm:"size:255" json:"-"`
	Provider      string     `gorm:"size:32" json:"provider"`
	ProviderID    string     `gorm:"size:255" json:"provider_id"`
	Points        int        `gorm:"default:0" json:"points"`
	CurrentStreak int        `gorm:"default:0" json:"current_streak"`
	LongestStreak int        `gorm:"default:0" json:"longest_streak"`
	LastCheckinAt *time.Time `json:"last_checkin_at"`
	SchemaVersion int        `gorm:"default:2" json:"schema_version"`
	ActivePlanID  string     `gorm:"size:36" json:"active_plan_id"`
	// LegacyPlan holds the V1 embedded plan document until the upgrade
	// shim expands it into plan/task rows.
	LegacyPlan datatypes.JSON `json:"-"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
	Plans      []Plan         `json:"-"`
}

// NormalizeEmail produces the canonical storage key for a user email.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// BeforeCreate hook canonicalizes the email and sets timestamps.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	u.Email = NormalizeEmail(u.Email)
	now := time.Now()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	u.UpdatedAt = now
	return nil
}

// BeforeUpdate refreshes the UpdatedAt timestamp.
func (u *User) BeforeUpdate(tx *gorm.DB) error {
	u.UpdatedAt = time.Now()
	return nil
}
