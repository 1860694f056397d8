package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "mentordash/internal/errors"
	"mentordash/internal/pagination"
	"mentordash/internal/services"
)

// HabitHandler handles daily habit requests.
type HabitHandler struct {
	habitService services.HabitServicer
}

// NewHabitHandler creates a new HabitHandler.
func NewHabitHandler(habitService services.HabitServicer) *HabitHandler {
	return &HabitHandler{habitService: habitService}
}

// CreateHabitRequest represents the request payload for creating a habit.
type CreateHabitRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// RenameHabitRequest represents the request payload for renaming a habit.
type RenameHabitRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// CreateHabit handles the creation of a new habit.
// @Summary     Create a habit
// @Description Create a new daily habit with a zero streak
// @Tags        habits
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateHabitRequest true "Habit details"
// @Success     201 {object} models.Habit "Habit created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /habits [post]
func (h *HabitHandler) CreateHabit(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	habit, err := h.habitService.CreateHabit(userID, req.Name)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"habit": habit})
}

// GetHabits handles listing habits for the authenticated user.
// @Summary     Get habits
// @Description Get a paginated list of habits with current streaks and today's check state
// @Tags        habits
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Habit] "Paginated habits"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /habits [get]
func (h *HabitHandler) GetHabits(c *gin.Context) {
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

	result, err := h.habitService.GetUserHabits(userID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// CheckIn handles a habit check-in for the current day.
// @Summary     Check in a habit
// @Description Mark a habit done today; consecutive days grow the streak, a second check the same day is a no-op
// @Tags        habits
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Habit ID"
// @Success     200 {object} models.Habit "Habit with updated streak"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Habit not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /habits/{id}/check [post]
func (h *HabitHandler) CheckIn(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	habitID, err := pathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	habit, err := h.habitService.CheckIn(userID, habitID, time.Now())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"habit": habit})
}

// RenameHabit handles renaming a habit.
// @Summary     Rename a habit
// @Description Rename a habit without touching its streak
// @Tags        habits
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string             true "Habit ID"
// @Param       request body RenameHabitRequest true "New name"
// @Success     200 {object} models.Habit "Habit renamed"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Habit not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /habits/{id} [put]
func (h *HabitHandler) RenameHabit(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	habitID, err := pathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req RenameHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	habit, err := h.habitService.RenameHabit(userID, habitID, req.Name)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"habit": habit})
}

// DeleteHabit handles deleting a habit.
// @Summary     Delete a habit
// @Description Delete a habit and its streak history
// @Tags        habits
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Habit ID"
// @Success     204 "Habit deleted"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Habit not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /habits/{id} [delete]
func (h *HabitHandler) DeleteHabit(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	habitID, err := pathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.habitService.DeleteHabit(userID, habitID); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
