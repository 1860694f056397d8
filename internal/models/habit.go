package models

import "time"

// Habit represents a daily habit with its consecutive-day streak.
// Checked is never read from storage: it is recomputed on every load
// from LastCheckedAt against the current calendar day.
type Habit struct {
	Base
	UserID        string     `gorm:"type:uuid;not null;index" json:"user_id"`
	Name          string     `gorm:"not null" json:"name"`
	Streak        int        `gorm:"not null;default:0" json:"streak"`
	LastCheckedAt *time.Time `json:"last_checked_at,omitempty"`

	// Virtual: true when LastCheckedAt falls on today's calendar day.
	Checked bool `gorm:"-" json:"checked"`
}
