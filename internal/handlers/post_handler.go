package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "mentordash/internal/errors"
	"mentordash/internal/pagination"
	"mentordash/internal/services"
)

// PostHandler handles social post planning requests.
type PostHandler struct {
	postService services.PostServicer
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(postService services.PostServicer) *PostHandler {
	return &PostHandler{postService: postService}
}

// CreatePostRequest represents the request payload for planning a post.
type CreatePostRequest struct {
	Platform string    `json:"platform" binding:"required,platform"`
	Caption  string    `json:"caption" binding:"required,min=1,max=2000"`
	ImageURL string    `json:"image_url" binding:"omitempty,url,max=500"`
	Date     time.Time `json:"date" binding:"required"`
}

// UpdatePostRequest represents the request payload for updating a post.
type UpdatePostRequest struct {
	Platform string     `json:"platform" binding:"omitempty,platform"`
	Caption  string     `json:"caption" binding:"omitempty,min=1,max=2000"`
	ImageURL string     `json:"image_url" binding:"omitempty,url,max=500"`
	Date     *time.Time `json:"date"`
}

// CreatePost handles planning a new social post.
// @Summary     Plan a social post
// @Description Schedule a content post for a platform
// @Tags        posts
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreatePostRequest true "Post details"
// @Success     201 {object} models.SocialPost "Post planned"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /posts [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	post, err := h.postService.CreatePost(userID, req.Platform, req.Caption, req.ImageURL, req.Date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"post": post})
}

// GetPosts handles listing planned posts for the authenticated user.
// @Summary     Get planned posts
// @Description Get a paginated list of planned posts, most recent first
// @Tags        posts
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.SocialPost] "Paginated posts"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /posts [get]
func (h *PostHandler) GetPosts(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	result, err := h.postService.GetUserPosts(userID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// UpdatePost handles editing a planned post.
// @Summary     Update a planned post
// @Description Edit a planned post's platform, caption, image, or date
// @Tags        posts
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string            true "Post ID"
// @Param       request body UpdatePostRequest true "Fields to update"
// @Success     200 {object} models.SocialPost "Post updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Post not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /posts/{id} [put]
func (h *PostHandler) UpdatePost(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	postID, err := pathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	post, err := h.postService.UpdatePost(userID, postID, req.Platform, req.Caption, req.ImageURL, req.Date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"post": post})
}

// DeletePost handles deleting a planned post.
// @Summary     Delete a planned post
// @Description Delete a scheduled content post
// @Tags        posts
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Post ID"
// @Success     204 "Post deleted"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Post not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /posts/{id} [delete]
func (h *PostHandler) DeletePost(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	postID, err := pathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.postService.DeletePost(userID, postID); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
