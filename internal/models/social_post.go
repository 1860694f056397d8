package models

import "time"

// SocialPost represents a planned social-media post.
type SocialPost struct {
	Base
	UserID   string    `gorm:"type:uuid;not null;index" json:"user_id"`
	Platform string    `gorm:"not null" json:"platform"`
	Date     time.Time `gorm:"not null" json:"date"`
	Caption  string    `gorm:"not null" json:"caption"`
	ImageURL string    `json:"image_url,omitempty"`
}
