package services

import (
	"context"
	"time"

	"mentordash/internal/models"
	"mentordash/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, firstName, lastName string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	RecordLogin(userID string) error
	StoreRefreshTokenHash(userID, tokenHash string) error
	GetRefreshTokenHash(userID string) (string, error)
}

// GoalServicer defines the contract for the one-per-user net worth goal.
type GoalServicer interface {
	GetGoal(userID string) (*models.Goal, error)
	SetGoal(userID string, targetNetWorth float64) (*models.Goal, error)
}

// HabitServicer defines the contract for habit tracking and streaks.
type HabitServicer interface {
	CreateHabit(userID, name string) (*models.Habit, error)
	GetUserHabits(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Habit], error)
	GetHabitByID(userID, habitID string) (*models.Habit, error)
	RenameHabit(userID, habitID, name string) (*models.Habit, error)
	CheckIn(userID, habitID string, now time.Time) (*models.Habit, error)
	DeleteHabit(userID, habitID string) error
}

// ActionServicer defines the contract for weekly actions.
type ActionServicer interface {
	CreateAction(userID, title, description string, dueDate time.Time) (*models.WeeklyAction, error)
	GetUserActions(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.WeeklyAction], error)
	UpdateAction(userID, actionID, title, description string, dueDate *time.Time) (*models.WeeklyAction, error)
	ToggleAction(userID, actionID string, now time.Time) (*models.WeeklyAction, error)
	DeleteAction(userID, actionID string) error
}

// TransactionSummary contains the derived income/expense aggregate.
// Skipped counts entries whose stored amount did not parse as a number.
type TransactionSummary struct {
	NetProfit float64 `json:"net_profit"`
	Income    float64 `json:"income"`
	Expenses  float64 `json:"expenses"`
	Skipped   int     `json:"skipped"`
}

// TransactionServicer defines the contract for income/expense entries.
type TransactionServicer interface {
	CreateTransaction(userID string, txType models.TransactionType, amount, category string, date time.Time) (*models.Transaction, error)
	GetUserTransactions(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error)
	DeleteTransaction(userID, transactionID string) error
	GetSummary(userID string) (*TransactionSummary, error)
}

// MilestoneServicer defines the contract for the quarterly roadmap.
type MilestoneServicer interface {
	CreateMilestone(userID, quarter, goal string) (*models.Milestone, error)
	GetUserMilestones(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Milestone], error)
	UpdateMilestone(userID, milestoneID, quarter, goal string, status *models.MilestoneStatus) (*models.Milestone, error)
	DeleteMilestone(userID, milestoneID string) error
}

// SkillTime is the derived total logged time for one skill.
type SkillTime struct {
	SkillID      string `json:"skill_id"`
	SkillName    string `json:"skill_name"`
	TotalSeconds int    `json:"total_seconds"`
}

// SkillServicer defines the contract for skills and their time logs.
type SkillServicer interface {
	CreateSkill(userID, name string) (*models.Skill, error)
	GetUserSkills(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Skill], error)
	RenameSkill(userID, skillID, name string) (*models.Skill, error)
	DeleteSkill(userID, skillID string) error
	LogTime(userID, skillID string, durationSeconds int, loggedAt time.Time) (*models.SkillLog, error)
	GetUserLogs(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.SkillLog], error)
	DeleteLog(userID, logID string) error
	GetTimeTotals(userID string) ([]SkillTime, error)
}

// PostServicer defines the contract for planned social posts.
type PostServicer interface {
	CreatePost(userID, platform, caption, imageURL string, date time.Time) (*models.SocialPost, error)
	GetUserPosts(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.SocialPost], error)
	UpdatePost(userID, postID, platform, caption, imageURL string, date *time.Time) (*models.SocialPost, error)
	DeletePost(userID, postID string) error
}

// PodServicer defines the contract for the accountability pod.
type PodServicer interface {
	AddMember(userID, name, email string) (*models.PodMember, error)
	GetMembers(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.PodMember], error)
	RemoveMember(userID, memberID string) error
	Invite(ctx context.Context, userID, email string) error
	Nudge(ctx context.Context, userID, memberID string) error
}
