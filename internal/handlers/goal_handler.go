package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "mentordash/internal/errors"
	"mentordash/internal/services"
)

// GoalHandler handles financial goal requests.
type GoalHandler struct {
	goalService services.GoalServicer
}

// NewGoalHandler creates a new GoalHandler.
func NewGoalHandler(goalService services.GoalServicer) *GoalHandler {
	return &GoalHandler{goalService: goalService}
}

// SetGoalRequest represents the request payload for setting the goal.
type SetGoalRequest struct {
	TargetNetWorth float64 `json:"target_net_worth" binding:"required,gt=0"`
}

// GetGoal handles retrieving the user's financial goal.
// @Summary     Get financial goal
// @Description Get the authenticated user's target net worth
// @Tags        goal
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} models.Goal "Financial goal"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "No goal set yet"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /goal [get]
func (h *GoalHandler) GetGoal(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	goal, err := h.goalService.GetGoal(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"goal": goal})
}

// SetGoal handles creating or replacing the user's financial goal.
// @Summary     Set financial goal
// @Description Create or replace the authenticated user's target net worth
// @Tags        goal
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body SetGoalRequest true "Goal details"
// @Success     200 {object} models.Goal "Goal saved"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /goal [put]
func (h *GoalHandler) SetGoal(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SetGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	goal, err := h.goalService.SetGoal(userID, req.TargetNetWorth)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"goal": goal})
}
