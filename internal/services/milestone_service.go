package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "mentordash/internal/errors"
	"mentordash/internal/models"
	"mentordash/internal/pagination"
)

// milestoneService handles quarterly roadmap business logic.
type milestoneService struct {
	db *gorm.DB
}

// NewMilestoneService creates a new MilestoneServicer.
func NewMilestoneService(db *gorm.DB) MilestoneServicer {
	return &milestoneService{db: db}
}

// CreateMilestone creates a new roadmap entry with status not_started.
func (s *milestoneService) CreateMilestone(userID, quarter, goal string) (*models.Milestone, error) {
	if quarter == "" {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "quarter is required")
	}
	if goal == "" {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "milestone goal is required")
	}

	milestone := &models.Milestone{
		UserID:  userID,
		Quarter: quarter,
		Goal:    goal,
		Status:  models.MilestoneStatusNotStarted,
	}

	if err := s.db.Create(milestone).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrRemoteWrite, err)
	}

	return milestone, nil
}

// GetUserMilestones retrieves a paginated list sorted lexicographically
// by quarter label.
func (s *milestoneService) GetUserMilestones(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Milestone], error) {
	page.Defaults()

	var totalItems int64
	base := s.db.Model(&models.Milestone{}).Where("user_id = ?", userID)
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrRemoteRead, err)
	}

	var milestones []models.Milestone
	if err := base.Scopes(pagination.Ordered(page, "quarter")).Find(&milestones).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrRemoteRead, err)
	}

	result := pagination.NewPageResponse(milestones, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// getMilestoneByID retrieves a milestone scoped to its owner.
func (s *milestoneService) getMilestoneByID(userID, milestoneID string) (*models.Milestone, error) {
	var milestone models.Milestone
	if err := s.db.Where("id = ? AND user_id = ?", milestoneID, userID).First(&milestone).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMilestoneNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrRemoteRead, err)
	}
	return &milestone, nil
}

// UpdateMilestone edits a milestone's quarter, goal text, or status.
func (s *milestoneService) UpdateMilestone(userID, milestoneID, quarter, goal string, status *models.MilestoneStatus) (*models.Milestone, error) {
	milestone, err := s.getMilestoneByID(userID, milestoneID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if quarter != "" {
		updates["quarter"] = quarter
	}
	if goal != "" {
		updates["goal"] = goal
	}
	if status != nil {
		updates["status"] = *status
	}

	if len(updates) > 0 {
		if err := s.db.Model(milestone).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrRemoteWrite, err)
		}
	}

	return milestone, nil
}

// DeleteMilestone deletes a milestone.
func (s *milestoneService) DeleteMilestone(userID, milestoneID string) error {
	milestone, err := s.getMilestoneByID(userID, milestoneID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(milestone).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrRemoteWrite, err)
	}
	return nil
}
