package models

// Goal represents a user's long-term net worth target.
// At most one goal exists per user; its presence gates the dashboard.
type Goal struct {
	Base
	UserID         string  `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	TargetNetWorth float64 `gorm:"not null" json:"target_net_worth"`
}
