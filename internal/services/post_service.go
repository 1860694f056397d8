package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "mentordash/internal/errors"
	"mentordash/internal/models"
	"mentordash/internal/pagination"
)

// postService handles social post planning business logic.
type postService struct {
	db *gorm.DB
}

// NewPostService creates a new PostServicer.
func NewPostService(db *gorm.DB) PostServicer {
	return &postService{db: db}
}

// CreatePost creates a new planned post. The image URL is optional.
func (s *postService) CreatePost(userID, platform, caption, imageURL string, date time.Time) (*models.SocialPost, error) {
	if platform == "" {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "platform is required")
	}
	if caption == "" {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "caption is required")
	}
	if date.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "date is required")
	}

	post := &models.SocialPost{
		UserID:   userID,
		Platform: platform,
		Caption:  caption,
		ImageURL: imageURL,
		Date:     date,
	}

	if err := s.db.Create(post).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrRemoteWrite, err)
	}

	return post, nil
}

// GetUserPosts retrieves a paginated list sorted by date descending.
func (s *postService) GetUserPosts(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.SocialPost], error) {
	page.Defaults()

	var totalItems int64
	base := s.db.Model(&models.SocialPost{}).Where("user_id = ?", userID)
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrRemoteRead, err)
	}

	var posts []models.SocialPost
	if err := base.Scopes(pagination.Ordered(page, "date DESC")).Find(&posts).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrRemoteRead, err)
	}

	result := pagination.NewPageResponse(posts, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// getPostByID retrieves a post scoped to its owner.
func (s *postService) getPostByID(userID, postID string) (*models.SocialPost, error) {
	var post models.SocialPost
	if err := s.db.Where("id = ? AND user_id = ?", postID, userID).First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrRemoteRead, err)
	}
	return &post, nil
}

// UpdatePost edits a post's platform, caption, image URL, or date.
func (s *postService) UpdatePost(userID, postID, platform, caption, imageURL string, date *time.Time) (*models.SocialPost, error) {
	post, err := s.getPostByID(userID, postID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if platform != "" {
		updates["platform"] = platform
	}
	if caption != "" {
		updates["caption"] = caption
	}
	if imageURL != "" {
		updates["image_url"] = imageURL
	}
	if date != nil {
		updates["date"] = *date
	}

	if len(updates) > 0 {
		if err := s.db.Model(post).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrRemoteWrite, err)
		}
	}

	return post, nil
}

// DeletePost deletes a post.
func (s *postService) DeletePost(userID, postID string) error {
	post, err := s.getPostByID(userID, postID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(post).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrRemoteWrite, err)
	}
	return nil
}
