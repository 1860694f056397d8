package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "mentordash/internal/errors"
	"mentordash/internal/models"
	"mentordash/internal/notify"
	"mentordash/internal/pagination"
)

// podService handles the accountability pod: member roster plus
// invitation and nudge messaging through the notify collaborator.
type podService struct {
	db       *gorm.DB
	notifier notify.Notifier
}

// NewPodService creates a new PodServicer.
func NewPodService(db *gorm.DB, notifier notify.Notifier) PodServicer {
	return &podService{db: db, notifier: notifier}
}

// AddMember adds a member to the user's pod roster.
func (s *podService) AddMember(userID, name, email string) (*models.PodMember, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "member name is required")
	}
	if email == "" {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "member email is required")
	}

	member := &models.PodMember{
		UserID: userID,
		Name:   name,
		Email:  email,
	}

	if err := s.db.Create(member).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrRemoteWrite, err)
	}

	return member, nil
}

// GetMembers retrieves a paginated list of pod members.
func (s *podService) GetMembers(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.PodMember], error) {
	page.Defaults()

	var totalItems int64
	base := s.db.Model(&models.PodMember{}).Where("user_id = ?", userID)
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrRemoteRead, err)
	}

	var members []models.PodMember
	if err := base.Scopes(pagination.Ordered(page, "created_at")).Find(&members).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrRemoteRead, err)
	}

	result := pagination.NewPageResponse(members, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// getMemberByID retrieves a pod member scoped to its owner.
func (s *podService) getMemberByID(userID, memberID string) (*models.PodMember, error) {
	var member models.PodMember
	if err := s.db.Where("id = ? AND user_id = ?", memberID, userID).First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPodMemberNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrRemoteRead, err)
	}
	return &member, nil
}

// RemoveMember removes a member from the pod roster.
func (s *podService) RemoveMember(userID, memberID string) error {
	member, err := s.getMemberByID(userID, memberID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(member).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrRemoteWrite, err)
	}
	return nil
}

// Invite sends a pod invitation to the given email address on behalf of
// the user. The invitee becomes a member only when they accept; sending
// the invitation does not touch the roster.
func (s *podService) Invite(ctx context.Context, userID, email string) error {
	if email == "" {
		return apperrors.WithMessage(apperrors.ErrValidation, "email is required")
	}

	inviter, err := s.inviterName(userID)
	if err != nil {
		return err
	}

	n := notify.Notification{
		Kind:      notify.KindPodInvite,
		Recipient: email,
		Subject:   fmt.Sprintf("%s invited you to their accountability pod", inviter),
		Body: fmt.Sprintf(
			"%s is building toward their net worth goal and wants you in their accountability pod. Join them to keep each other on track.",
			inviter,
		),
	}

	if err := s.notifier.Send(ctx, n); err != nil {
		return apperrors.Wrap(apperrors.ErrNotifyFailed, err)
	}
	return nil
}

// Nudge sends a check-in reminder to an existing pod member.
func (s *podService) Nudge(ctx context.Context, userID, memberID string) error {
	member, err := s.getMemberByID(userID, memberID)
	if err != nil {
		return err
	}

	inviter, err := s.inviterName(userID)
	if err != nil {
		return err
	}

	n := notify.Notification{
		Kind:      notify.KindPodNudge,
		Recipient: member.Email,
		Subject:   fmt.Sprintf("%s nudged you", inviter),
		Body: fmt.Sprintf(
			"Hey %s, %s is checking in on your progress this week. Keep the streak alive!",
			member.Name, inviter,
		),
	}

	if err := s.notifier.Send(ctx, n); err != nil {
		return apperrors.Wrap(apperrors.ErrNotifyFailed, err)
	}
	return nil
}

// inviterName returns a display name for the notification sender.
func (s *podService) inviterName(userID string) (string, error) {
	var user models.User
	if err := s.db.Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.ErrUserNotFound
		}
		return "", apperrors.Wrap(apperrors.ErrRemoteRead, err)
	}

	if user.FirstName != "" {
		return user.FirstName, nil
	}
	return user.Email, nil
}
