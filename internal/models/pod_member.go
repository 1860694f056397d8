package models

// PodMember represents a member of the user's accountability pod.
// CompletionPct is a placeholder metric until cross-user progress
// sharing exists; members are owned by the inviting user's namespace.
type PodMember struct {
	Base
	UserID        string `gorm:"type:uuid;not null;index" json:"user_id"`
	Name          string `gorm:"not null" json:"name"`
	Email         string `gorm:"not null" json:"email"`
	CompletionPct int    `gorm:"not null;default:0" json:"completion_pct"`
}
