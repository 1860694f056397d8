package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "mentordash/internal/errors"
	"mentordash/internal/models"
	"mentordash/internal/pagination"
	"mentordash/internal/streak"
)

// habitService handles habit tracking and streak business logic.
type habitService struct {
	db *gorm.DB
}

// NewHabitService creates a new HabitServicer.
func NewHabitService(db *gorm.DB) HabitServicer {
	return &habitService{db: db}
}

// CreateHabit creates a new habit with an empty streak.
func (s *habitService) CreateHabit(userID, name string) (*models.Habit, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "habit name is required")
	}

	habit := &models.Habit{
		UserID: userID,
		Name:   name,
		Streak: 0,
	}

	if err := s.db.Create(habit).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrRemoteWrite, err)
	}

	return habit, nil
}

// GetUserHabits retrieves a paginated list of habits for a user.
// The checked flag is recomputed against today's calendar day, never
// trusted from storage.
func (s *habitService) GetUserHabits(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Habit], error) {
	page.Defaults()

	var totalItems int64
	base := s.db.Model(&models.Habit{}).Where("user_id = ?", userID)
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrRemoteRead, err)
	}

	var habits []models.Habit
	if err := base.Scopes(pagination.Ordered(page, "created_at")).Find(&habits).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrRemoteRead, err)
	}

	now := time.Now()
	for i := range habits {
		habits[i].Checked = streak.CheckedOn(habits[i].LastCheckedAt, now)
	}

	result := pagination.NewPageResponse(habits, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetHabitByID retrieves a habit by ID for a specific user.
func (s *habitService) GetHabitByID(userID, habitID string) (*models.Habit, error) {
	var habit models.Habit
	if err := s.db.Where("id = ? AND user_id = ?", habitID, userID).First(&habit).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrHabitNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrRemoteRead, err)
	}
	habit.Checked = streak.CheckedOn(habit.LastCheckedAt, time.Now())
	return &habit, nil
}

// RenameHabit updates a habit's name in place.
func (s *habitService) RenameHabit(userID, habitID, name string) (*models.Habit, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "habit name is required")
	}

	habit, err := s.GetHabitByID(userID, habitID)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(habit).Update("name", name).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrRemoteWrite, err)
	}

	return habit, nil
}

// CheckIn performs the daily check-in at the given time. Checking in a
// habit that was already checked today is an idempotent no-op: the
// habit is returned unchanged with no write issued. Otherwise the
// streak continues (+1) when the last check-in was yesterday and
// restarts at 1 on a gap or first check-in.
func (s *habitService) CheckIn(userID, habitID string, now time.Time) (*models.Habit, error) {
	habit, err := s.GetHabitByID(userID, habitID)
	if err != nil {
		return nil, err
	}

	if streak.CheckedOn(habit.LastCheckedAt, now) {
		habit.Checked = true
		return habit, nil
	}

	newStreak := streak.Next(habit.Streak, habit.LastCheckedAt, now)

	if err := s.db.Model(habit).Updates(map[string]interface{}{
		"streak":          newStreak,
		"last_checked_at": now,
	}).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrRemoteWrite, err)
	}

	habit.Streak = newStreak
	habit.LastCheckedAt = &now
	habit.Checked = true
	return habit, nil
}

// DeleteHabit deletes a habit.
func (s *habitService) DeleteHabit(userID, habitID string) error {
	habit, err := s.GetHabitByID(userID, habitID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(habit).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrRemoteWrite, err)
	}
	return nil
}
