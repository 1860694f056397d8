package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "mentordash/internal/errors"
	"mentordash/internal/models"
	"mentordash/internal/pagination"
	"mentordash/internal/services"
)

// MilestoneHandler handles quarterly roadmap requests.
type MilestoneHandler struct {
	milestoneService services.MilestoneServicer
}

// NewMilestoneHandler creates a new MilestoneHandler.
func NewMilestoneHandler(milestoneService services.MilestoneServicer) *MilestoneHandler {
	return &MilestoneHandler{milestoneService: milestoneService}
}

// CreateMilestoneRequest represents the request payload for creating a milestone.
type CreateMilestoneRequest struct {
	Quarter string `json:"quarter" binding:"required,min=1,max=20"`
	Goal    string `json:"goal" binding:"required,min=1,max=500"`
}

// UpdateMilestoneRequest represents the request payload for updating a milestone.
type UpdateMilestoneRequest struct {
	Quarter string                  `json:"quarter" binding:"omitempty,min=1,max=20"`
	Goal    string                  `json:"goal" binding:"omitempty,min=1,max=500"`
	Status  *models.MilestoneStatus `json:"status" binding:"omitempty,milestone_status"`
}

// CreateMilestone handles the creation of a new milestone.
// @Summary     Create a milestone
// @Description Create a new quarterly roadmap entry with status not_started
// @Tags        milestones
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateMilestoneRequest true "Milestone details"
// @Success     201 {object} models.Milestone "Milestone created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /milestones [post]
func (h *MilestoneHandler) CreateMilestone(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateMilestoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	milestone, err := h.milestoneService.CreateMilestone(userID, req.Quarter, req.Goal)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"milestone": milestone})
}

// GetMilestones handles listing milestones for the authenticated user.
// @Summary     Get milestones
// @Description Get a paginated list of milestones ordered by quarter label
// @Tags        milestones
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Milestone] "Paginated milestones"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /milestones [get]
func (h *MilestoneHandler) GetMilestones(c *gin.Context) {
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

	result, err := h.milestoneService.GetUserMilestones(userID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// UpdateMilestone handles editing a milestone.
// @Summary     Update a milestone
// @Description Edit a milestone's quarter, goal text, or status
// @Tags        milestones
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string                 true "Milestone ID"
// @Param       request body UpdateMilestoneRequest true "Fields to update"
// @Success     200 {object} models.Milestone "Milestone updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Milestone not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /milestones/{id} [put]
func (h *MilestoneHandler) UpdateMilestone(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	milestoneID, err := pathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateMilestoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	milestone, err := h.milestoneService.UpdateMilestone(userID, milestoneID, req.Quarter, req.Goal, req.Status)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"milestone": milestone})
}

// DeleteMilestone handles deleting a milestone.
// @Summary     Delete a milestone
// @Description Delete a quarterly roadmap entry
// @Tags        milestones
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Milestone ID"
// @Success     204 "Milestone deleted"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Milestone not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /milestones/{id} [delete]
func (h *MilestoneHandler) DeleteMilestone(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	milestoneID, err := pathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.milestoneService.DeleteMilestone(userID, milestoneID); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
