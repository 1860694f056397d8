package models

// MilestoneStatus represents the progress state of a milestone
type MilestoneStatus string

const (
	MilestoneStatusNotStarted MilestoneStatus = "not_started"
	MilestoneStatusInProgress MilestoneStatus = "in_progress"
	MilestoneStatusComplete   MilestoneStatus = "complete"
)

// Milestone represents a quarterly roadmap entry. Quarter is the sort
// key and is ordered lexicographically (e.g. "2026-Q1" < "2026-Q2").
type Milestone struct {
	Base
	UserID  string          `gorm:"type:uuid;not null;index" json:"user_id"`
	Quarter string          `gorm:"not null" json:"quarter"`
	Goal    string          `gorm:"not null" json:"goal"`
	Status  MilestoneStatus `gorm:"not null;default:not_started" json:"status"`
}
