package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"mentordash/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestHabit creates a habit with the given streak and last check-in.
func CreateTestHabit(t *testing.T, db *gorm.DB, userID string, streak int, lastChecked *time.Time) *models.Habit {
	t.Helper()

	habit := &models.Habit{
		UserID:        userID,
		Name:          fmt.Sprintf("Test Habit %d", nextID()),
		Streak:        streak,
		LastCheckedAt: lastChecked,
	}
	if err := db.Create(habit).Error; err != nil {
		t.Fatalf("failed to create test habit: %v", err)
	}
	return habit
}

// CreateTestAction creates a weekly action due in one week.
func CreateTestAction(t *testing.T, db *gorm.DB, userID string) *models.WeeklyAction {
	t.Helper()

	action := &models.WeeklyAction{
		UserID:  userID,
		Title:   fmt.Sprintf("Test Action %d", nextID()),
		DueDate: time.Now().AddDate(0, 0, 7),
	}
	if err := db.Create(action).Error; err != nil {
		t.Fatalf("failed to create test action: %v", err)
	}
	return action
}

// CreateTestTransaction creates a transaction with the given type and raw amount.
func CreateTestTransaction(t *testing.T, db *gorm.DB, userID string, txType models.TransactionType, amount string) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		UserID:   userID,
		Type:     txType,
		Amount:   amount,
		Category: fmt.Sprintf("Test Category %d", nextID()),
		Date:     time.Now(),
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// CreateTestMilestone creates a milestone with the given quarter label.
func CreateTestMilestone(t *testing.T, db *gorm.DB, userID, quarter string) *models.Milestone {
	t.Helper()

	milestone := &models.Milestone{
		UserID:  userID,
		Quarter: quarter,
		Goal:    fmt.Sprintf("Test Goal %d", nextID()),
		Status:  models.MilestoneStatusNotStarted,
	}
	if err := db.Create(milestone).Error; err != nil {
		t.Fatalf("failed to create test milestone: %v", err)
	}
	return milestone
}

// CreateTestSkill creates a skill with a unique name.
func CreateTestSkill(t *testing.T, db *gorm.DB, userID string) *models.Skill {
	t.Helper()

	skill := &models.Skill{
		UserID: userID,
		Name:   fmt.Sprintf("Test Skill %d", nextID()),
	}
	if err := db.Create(skill).Error; err != nil {
		t.Fatalf("failed to create test skill: %v", err)
	}
	return skill
}

// CreateTestSkillLog creates a skill log with the given duration.
func CreateTestSkillLog(t *testing.T, db *gorm.DB, userID, skillID string, durationSeconds int) *models.SkillLog {
	t.Helper()

	log := &models.SkillLog{
		UserID:          userID,
		SkillID:         skillID,
		DurationSeconds: durationSeconds,
		LoggedAt:        time.Now(),
	}
	if err := db.Create(log).Error; err != nil {
		t.Fatalf("failed to create test skill log: %v", err)
	}
	return log
}

// CreateTestPost creates a social post planned for today.
func CreateTestPost(t *testing.T, db *gorm.DB, userID string) *models.SocialPost {
	t.Helper()

	post := &models.SocialPost{
		UserID:   userID,
		Platform: "instagram",
		Caption:  fmt.Sprintf("Test Caption %d", nextID()),
		Date:     time.Now(),
	}
	if err := db.Create(post).Error; err != nil {
		t.Fatalf("failed to create test post: %v", err)
	}
	return post
}

// CreateTestPodMember creates a pod member with a unique email.
func CreateTestPodMember(t *testing.T, db *gorm.DB, userID string) *models.PodMember {
	t.Helper()

	n := nextID()
	member := &models.PodMember{
		UserID: userID,
		Name:   fmt.Sprintf("Test Member %d", n),
		Email:  fmt.Sprintf("member%d@test.com", n),
	}
	if err := db.Create(member).Error; err != nil {
		t.Fatalf("failed to create test pod member: %v", err)
	}
	return member
}
