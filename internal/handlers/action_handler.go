package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "mentordash/internal/errors"
	"mentordash/internal/pagination"
	"mentordash/internal/services"
)

// ActionHandler handles weekly action requests.
type ActionHandler struct {
	actionService services.ActionServicer
}

// NewActionHandler creates a new ActionHandler.
func NewActionHandler(actionService services.ActionServicer) *ActionHandler {
	return &ActionHandler{actionService: actionService}
}

// CreateActionRequest represents the request payload for creating an action.
type CreateActionRequest struct {
	Title       string    `json:"title" binding:"required,min=1,max=200"`
	Description string    `json:"description" binding:"max=1000"`
	DueDate     time.Time `json:"due_date" binding:"required"`
}

// UpdateActionRequest represents the request payload for updating an action.
type UpdateActionRequest struct {
	Title       string     `json:"title" binding:"omitempty,min=1,max=200"`
	Description string     `json:"description" binding:"max=1000"`
	DueDate     *time.Time `json:"due_date"`
}

// CreateAction handles the creation of a new weekly action.
// @Summary     Create a weekly action
// @Description Create a new action item with a due date
// @Tags        actions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateActionRequest true "Action details"
// @Success     201 {object} models.WeeklyAction "Action created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /actions [post]
func (h *ActionHandler) CreateAction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	action, err := h.actionService.CreateAction(userID, req.Title, req.Description, req.DueDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"action": action})
}

// GetActions handles listing actions for the authenticated user.
// @Summary     Get weekly actions
// @Description Get a paginated list of actions ordered by due date
// @Tags        actions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.WeeklyAction] "Paginated actions"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /actions [get]
func (h *ActionHandler) GetActions(c *gin.Context) {
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

	result, err := h.actionService.GetUserActions(userID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// UpdateAction handles editing an action's title, description, or due date.
// @Summary     Update a weekly action
// @Description Edit an action's title, description, or due date
// @Tags        actions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string              true "Action ID"
// @Param       request body UpdateActionRequest true "Fields to update"
// @Success     200 {object} models.WeeklyAction "Action updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Action not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /actions/{id} [put]
func (h *ActionHandler) UpdateAction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	actionID, err := pathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	action, err := h.actionService.UpdateAction(userID, actionID, req.Title, req.Description, req.DueDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"action": action})
}

// ToggleAction handles flipping an action's completion state.
// @Summary     Toggle a weekly action
// @Description Mark an action complete, or re-open it if it was complete
// @Tags        actions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Action ID"
// @Success     200 {object} models.WeeklyAction "Action toggled"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Action not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /actions/{id}/toggle [post]
func (h *ActionHandler) ToggleAction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	actionID, err := pathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	action, err := h.actionService.ToggleAction(userID, actionID, time.Now())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"action": action})
}

// DeleteAction handles deleting an action.
// @Summary     Delete a weekly action
// @Description Delete an action item
// @Tags        actions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Action ID"
// @Success     204 "Action deleted"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Action not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /actions/{id} [delete]
func (h *ActionHandler) DeleteAction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	actionID, err := pathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.actionService.DeleteAction(userID, actionID); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
