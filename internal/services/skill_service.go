package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "mentordash/internal/errors"
	"mentordash/internal/models"
	"mentordash/internal/pagination"
)

// skillService handles skill and skill-log business logic.
type skillService struct {
	db *gorm.DB
}

// NewSkillService creates a new SkillServicer.
func NewSkillService(db *gorm.DB) SkillServicer {
	return &skillService{db: db}
}

// CreateSkill creates a new skill.
func (s *skillService) CreateSkill(userID, name string) (*models.Skill, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "skill name is required")
	}

	var count int64
	if err := s.db.Model(&models.Skill{}).
		Where("user_id = ? AND name = ?", userID, name).
		Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrRemoteRead, err)
	}
	if count > 0 {
		return nil, apperrors.ErrDuplicateSkill
	}

	skill := &models.Skill{UserID: userID, Name: name}
	if err := s.db.Create(skill).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrRemoteWrite, err)
	}

	return skill, nil
}

// GetUserSkills retrieves a paginated list of skills for a user.
func (s *skillService) GetUserSkills(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Skill], error) {
	page.Defaults()

	var totalItems int64
	base := s.db.Model(&models.Skill{}).Where("user_id = ?", userID)
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrRemoteRead, err)
	}

	var skills []models.Skill
	if err := base.Scopes(pagination.Ordered(page, "created_at")).Find(&skills).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrRemoteRead, err)
	}

	result := pagination.NewPageResponse(skills, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// getSkillByID retrieves a skill scoped to its owner.
func (s *skillService) getSkillByID(userID, skillID string) (*models.Skill, error) {
	var skill models.Skill
	if err := s.db.Where("id = ? AND user_id = ?", skillID, userID).First(&skill).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSkillNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrRemoteRead, err)
	}
	return &skill, nil
}

// RenameSkill updates a skill's name in place.
func (s *skillService) RenameSkill(userID, skillID, name string) (*models.Skill, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "skill name is required")
	}

	skill, err := s.getSkillByID(userID, skillID)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(skill).Update("name", name).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrRemoteWrite, err)
	}

	return skill, nil
}

// DeleteSkill deletes a skill and all of its logs as one unit. Logs are
// purged first inside the same transaction, so a failed purge rolls the
// whole operation back and the skill stays present.
func (s *skillService) DeleteSkill(userID, skillID string) error {
	skill, err := s.getSkillByID(userID, skillID)
	if err != nil {
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("skill_id = ? AND user_id = ?", skillID, userID).
			Delete(&models.SkillLog{}).Error; err != nil {
			return err
		}
		return tx.Delete(skill).Error
	})
	if err != nil {
		return apperrors.Wrap(apperrors.ErrRemoteWrite, err)
	}
	return nil
}

// LogTime records a block of time against a skill.
func (s *skillService) LogTime(userID, skillID string, durationSeconds int, loggedAt time.Time) (*models.SkillLog, error) {
	if durationSeconds <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "duration must be positive")
	}

	if _, err := s.getSkillByID(userID, skillID); err != nil {
		return nil, err
	}

	if loggedAt.IsZero() {
		loggedAt = time.Now()
	}

	log := &models.SkillLog{
		UserID:          userID,
		SkillID:         skillID,
		DurationSeconds: durationSeconds,
		LoggedAt:        loggedAt,
	}

	if err := s.db.Create(log).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrRemoteWrite, err)
	}

	return log, nil
}

// GetUserLogs retrieves a paginated list of logs sorted by time logged,
// newest first. Logs whose skill no longer resolves are hidden from the
// listing rather than erased.
func (s *skillService) GetUserLogs(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.SkillLog], error) {
	page.Defaults()

	existing := s.db.Model(&models.Skill{}).Select("id").Where("user_id = ?", userID)

	var totalItems int64
	base := s.db.Model(&models.SkillLog{}).
		Where("user_id = ? AND skill_id IN (?)", userID, existing)
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrRemoteRead, err)
	}

	var logs []models.SkillLog
	if err := base.Scopes(pagination.Ordered(page, "logged_at DESC")).Find(&logs).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrRemoteRead, err)
	}

	result := pagination.NewPageResponse(logs, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// DeleteLog deletes a single skill log.
func (s *skillService) DeleteLog(userID, logID string) error {
	var log models.SkillLog
	if err := s.db.Where("id = ? AND user_id = ?", logID, userID).First(&log).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrSkillLogNotFound
		}
		return apperrors.Wrap(apperrors.ErrRemoteRead, err)
	}

	if err := s.db.Delete(&log).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrRemoteWrite, err)
	}
	return nil
}

// GetTimeTotals computes total logged seconds per skill from the
// current rows. Groups whose skill no longer resolves are skipped.
// The result is derived on every call, never stored.
func (s *skillService) GetTimeTotals(userID string) ([]SkillTime, error) {
	var skills []models.Skill
	if err := s.db.Where("user_id = ?", userID).Order("created_at").Find(&skills).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrRemoteRead, err)
	}

	var logs []models.SkillLog
	if err := s.db.Where("user_id = ?", userID).Find(&logs).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrRemoteRead, err)
	}

	return TotalTimePerSkill(skills, logs), nil
}

// TotalTimePerSkill groups logs by skill and sums their durations.
// Logs referencing a skill absent from skills are dropped.
func TotalTimePerSkill(skills []models.Skill, logs []models.SkillLog) []SkillTime {
	seconds := make(map[string]int, len(skills))
	for _, log := range logs {
		seconds[log.SkillID] += log.DurationSeconds
	}

	totals := make([]SkillTime, 0, len(skills))
	for _, skill := range skills {
		totals = append(totals, SkillTime{
			SkillID:      skill.ID,
			SkillName:    skill.Name,
			TotalSeconds: seconds[skill.ID],
		})
	}
	return totals
}
