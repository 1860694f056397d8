package models

import "time"

// WeeklyAction represents a scheduled action item with a due date.
// CompletedAt is set iff Completed is true.
type WeeklyAction struct {
	Base
	UserID      string     `gorm:"type:uuid;not null;index" json:"user_id"`
	Title       string     `gorm:"not null" json:"title"`
	Description string     `json:"description"`
	DueDate     time.Time  `gorm:"not null" json:"due_date"`
	Completed   bool       `gorm:"not null;default:false" json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}
