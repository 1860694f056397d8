package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "mentordash/internal/errors"
	"mentordash/internal/pagination"
	"mentordash/internal/services"
)

// SkillHandler handles skill and time tracking requests.
type SkillHandler struct {
	skillService services.SkillServicer
}

// NewSkillHandler creates a new SkillHandler.
func NewSkillHandler(skillService services.SkillServicer) *SkillHandler {
	return &SkillHandler{skillService: skillService}
}

// CreateSkillRequest represents the request payload for creating a skill.
type CreateSkillRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// RenameSkillRequest represents the request payload for renaming a skill.
type RenameSkillRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// LogTimeRequest represents the request payload for logging practice time.
type LogTimeRequest struct {
	DurationSeconds int        `json:"duration_seconds" binding:"required,gt=0"`
	LoggedAt        *time.Time `json:"logged_at"`
}

// CreateSkill handles the creation of a new skill.
// @Summary     Create a skill
// @Description Create a new skill to track practice time against
// @Tags        skills
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateSkillRequest true "Skill details"
// @Success     201 {object} models.Skill "Skill created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     409 {object} ErrorResponse "Skill name already in use"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /skills [post]
func (h *SkillHandler) CreateSkill(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	skill, err := h.skillService.CreateSkill(userID, req.Name)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"skill": skill})
}

// GetSkills handles listing skills for the authenticated user.
// @Summary     Get skills
// @Description Get a paginated list of skills
// @Tags        skills
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Skill] "Paginated skills"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /skills [get]
func (h *SkillHandler) GetSkills(c *gin.Context) {
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

	result, err := h.skillService.GetUserSkills(userID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// RenameSkill handles renaming a skill.
// @Summary     Rename a skill
// @Description Rename a skill; its time logs stay attached
// @Tags        skills
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string             true "Skill ID"
// @Param       request body RenameSkillRequest true "New name"
// @Success     200 {object} models.Skill "Skill renamed"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Skill not found"
// @Failure     409 {object} ErrorResponse "Skill name already in use"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /skills/{id} [put]
func (h *SkillHandler) RenameSkill(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	skillID, err := pathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req RenameSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	skill, err := h.skillService.RenameSkill(userID, skillID, req.Name)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"skill": skill})
}

// DeleteSkill handles deleting a skill and all of its time logs.
// @Summary     Delete a skill
// @Description Delete a skill together with every time log recorded against it
// @Tags        skills
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Skill ID"
// @Success     204 "Skill and logs deleted"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Skill not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /skills/{id} [delete]
func (h *SkillHandler) DeleteSkill(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	skillID, err := pathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.skillService.DeleteSkill(userID, skillID); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// LogTime handles recording practice time against a skill.
// @Summary     Log practice time
// @Description Record a practice session for a skill
// @Tags        skills
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string         true "Skill ID"
// @Param       request body LogTimeRequest true "Session details"
// @Success     201 {object} models.SkillLog "Time logged"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Skill not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /skills/{id}/logs [post]
func (h *SkillHandler) LogTime(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	skillID, err := pathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req LogTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	loggedAt := time.Now()
	if req.LoggedAt != nil {
		loggedAt = *req.LoggedAt
	}

	log, err := h.skillService.LogTime(userID, skillID, req.DurationSeconds, loggedAt)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"log": log})
}

// GetLogs handles listing time logs across all of the user's skills.
// @Summary     Get time logs
// @Description Get a paginated list of practice sessions, most recent first
// @Tags        skills
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.SkillLog] "Paginated logs"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /skills/logs [get]
func (h *SkillHandler) GetLogs(c *gin.Context) {
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

	result, err := h.skillService.GetUserLogs(userID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetTimeTotals handles the per-skill time aggregation.
// @Summary     Get time totals
// @Description Get total practice seconds for each skill
// @Tags        skills
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} services.SkillTime "Per-skill totals"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /skills/time [get]
func (h *SkillHandler) GetTimeTotals(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	totals, err := h.skillService.GetTimeTotals(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"totals": totals})
}

// DeleteLog handles deleting a single time log.
// @Summary     Delete a time log
// @Description Delete one recorded practice session
// @Tags        skills
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Log ID"
// @Success     204 "Log deleted"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Log not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /skills/logs/{id} [delete]
func (h *SkillHandler) DeleteLog(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	logID, err := pathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.skillService.DeleteLog(userID, logID); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
