package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "mentordash/internal/errors"
	"mentordash/internal/models"
	"mentordash/internal/pagination"
)

// actionService handles weekly action business logic.
type actionService struct {
	db *gorm.DB
}

// NewActionService creates a new ActionServicer.
func NewActionService(db *gorm.DB) ActionServicer {
	return &actionService{db: db}
}

// CreateAction creates a new weekly action.
func (s *actionService) CreateAction(userID, title, description string, dueDate time.Time) (*models.WeeklyAction, error) {
	if title == "" {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "action title is required")
	}
	if dueDate.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "due date is required")
	}

	action := &models.WeeklyAction{
		UserID:      userID,
		Title:       title,
		Description: description,
		DueDate:     dueDate,
	}

	if err := s.db.Create(action).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrRemoteWrite, err)
	}

	return action, nil
}

// GetUserActions retrieves a paginated list of actions sorted by due date.
func (s *actionService) GetUserActions(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.WeeklyAction], error) {
	page.Defaults()

	var totalItems int64
	base := s.db.Model(&models.WeeklyAction{}).Where("user_id = ?", userID)
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrRemoteRead, err)
	}

	var actions []models.WeeklyAction
	if err := base.Scopes(pagination.Ordered(page, "due_date")).Find(&actions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrRemoteRead, err)
	}

	result := pagination.NewPageResponse(actions, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// getActionByID retrieves an action scoped to its owner.
func (s *actionService) getActionByID(userID, actionID string) (*models.WeeklyAction, error) {
	var action models.WeeklyAction
	if err := s.db.Where("id = ? AND user_id = ?", actionID, userID).First(&action).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrActionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrRemoteRead, err)
	}
	return &action, nil
}

// UpdateAction edits an action's title, description, or due date.
func (s *actionService) UpdateAction(userID, actionID, title, description string, dueDate *time.Time) (*models.WeeklyAction, error) {
	action, err := s.getActionByID(userID, actionID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if title != "" {
		updates["title"] = title
	}
	if description != "" {
		updates["description"] = description
	}
	if dueDate != nil {
		updates["due_date"] = *dueDate
	}

	if len(updates) > 0 {
		if err := s.db.Model(action).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrRemoteWrite, err)
		}
	}

	return action, nil
}

// ToggleAction flips the completed flag. CompletedAt is set when the
// action becomes completed and cleared when it is re-opened, so the
// invariant "completed_at set iff completed" holds after every write.
func (s *actionService) ToggleAction(userID, actionID string, now time.Time) (*models.WeeklyAction, error) {
	action, err := s.getActionByID(userID, actionID)
	if err != nil {
		return nil, err
	}

	completed := !action.Completed
	var completedAt *time.Time
	if completed {
		completedAt = &now
	}

	if err := s.db.Model(action).Updates(map[string]interface{}{
		"completed":    completed,
		"completed_at": completedAt,
	}).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrRemoteWrite, err)
	}

	action.Completed = completed
	action.CompletedAt = completedAt
	return action, nil
}

// DeleteAction deletes an action.
func (s *actionService) DeleteAction(userID, actionID string) error {
	action, err := s.getActionByID(userID, actionID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(action).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrRemoteWrite, err)
	}
	return nil
}
