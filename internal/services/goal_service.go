package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "mentordash/internal/errors"
	"mentordash/internal/models"
)

// goalService handles the one-per-user net worth goal.
type goalService struct {
	db *gorm.DB
}

// NewGoalService creates a new GoalServicer.
func NewGoalService(db *gorm.DB) GoalServicer {
	return &goalService{db: db}
}

// GetGoal retrieves the user's goal. Returns ErrGoalNotFound when the
// user has not completed the goal wizard yet; the client treats that as
// "show the wizard", never as a fatal condition.
func (s *goalService) GetGoal(userID string) (*models.Goal, error) {
	var goal models.Goal
	if err := s.db.Where("user_id = ?", userID).First(&goal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGoalNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrRemoteRead, err)
	}
	return &goal, nil
}

// SetGoal creates or replaces the user's goal. The unique index on
// user_id enforces at most one goal per user; an existing goal is
// updated in place rather than duplicated.
func (s *goalService) SetGoal(userID string, targetNetWorth float64) (*models.Goal, error) {
	if targetNetWorth <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "target net worth must be positive")
	}

	var goal models.Goal
	err := s.db.Where("user_id = ?", userID).First(&goal).Error
	switch {
	case err == nil:
		goal.TargetNetWorth = targetNetWorth
		if err := s.db.Save(&goal).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrRemoteWrite, err)
		}
		return &goal, nil

	case errors.Is(err, gorm.ErrRecordNotFound):
		goal = models.Goal{UserID: userID, TargetNetWorth: targetNetWorth}
		if err := s.db.Create(&goal).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrRemoteWrite, err)
		}
		return &goal, nil

	default:
		return nil, apperrors.Wrap(apperrors.ErrRemoteRead, err)
	}
}
