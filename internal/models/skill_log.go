package models

import "time"

// SkillLog records a block of time spent on a skill.
// Logs are cascade-deleted with their skill; a log whose skill no
// longer resolves is hidden from listings and aggregates, not erased.
type SkillLog struct {
	Base
	UserID          string    `gorm:"type:uuid;not null;index" json:"user_id"`
	SkillID         string    `gorm:"type:uuid;not null;index" json:"skill_id"`
	DurationSeconds int       `gorm:"not null" json:"duration_seconds"`
	LoggedAt        time.Time `gorm:"not null" json:"logged_at"`
}
