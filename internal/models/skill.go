package models

// Skill represents a skill the user is building time in.
type Skill struct {
	Base
	UserID string `gorm:"type:uuid;not null;index" json:"user_id"`
	Name   string `gorm:"not null" json:"name"`

	Logs []SkillLog `gorm:"foreignKey:SkillID" json:"logs,omitempty"`
}
