package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "mentordash/internal/errors"
	"mentordash/internal/pagination"
	"mentordash/internal/services"
)

// PodHandler handles accountability pod requests.
type PodHandler struct {
	podService services.PodServicer
}

// NewPodHandler creates a new PodHandler.
func NewPodHandler(podService services.PodServicer) *PodHandler {
	return &PodHandler{podService: podService}
}

// AddMemberRequest represents the request payload for adding a pod member.
type AddMemberRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=100"`
	Email string `json:"email" binding:"required,email,max=255"`
}

// InviteRequest represents the request payload for inviting someone to the pod.
type InviteRequest struct {
	Email string `json:"email" binding:"required,email,max=255"`
}

// AddMember handles adding a member to the pod roster.
// @Summary     Add a pod member
// @Description Add a member to the accountability pod roster
// @Tags        pod
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body AddMemberRequest true "Member details"
// @Success     201 {object} models.PodMember "Member added"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /pod/members [post]
func (h *PodHandler) AddMember(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	member, err := h.podService.AddMember(userID, req.Name, req.Email)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"member": member})
}

// GetMembers handles listing pod members.
// @Summary     Get pod members
// @Description Get a paginated list of accountability pod members
// @Tags        pod
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.PodMember] "Paginated members"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /pod/members [get]
func (h *PodHandler) GetMembers(c *gin.Context) {
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

	result, err := h.podService.GetMembers(userID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// RemoveMember handles removing a member from the pod roster.
// @Summary     Remove a pod member
// @Description Remove a member from the accountability pod
// @Tags        pod
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Member ID"
// @Success     204 "Member removed"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Member not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /pod/members/{id} [delete]
func (h *PodHandler) RemoveMember(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	memberID, err := pathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.podService.RemoveMember(userID, memberID); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Invite handles sending a pod invitation.
// @Summary     Invite to the pod
// @Description Send an invitation email; the invitee joins the roster only after accepting
// @Tags        pod
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body InviteRequest true "Invitee email"
// @Success     202 {object} map[string]string "Invitation sent"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     502 {object} ErrorResponse "Notification delivery failed"
// @Router      /pod/invite [post]
func (h *PodHandler) Invite(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req InviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	if err := h.podService.Invite(c.Request.Context(), userID, req.Email); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"status": "invitation sent"})
}

// Nudge handles sending a check-in reminder to a pod member.
// @Summary     Nudge a pod member
// @Description Send a check-in reminder email to an existing pod member
// @Tags        pod
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Member ID"
// @Success     202 {object} map[string]string "Nudge sent"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Member not found"
// @Failure     502 {object} ErrorResponse "Notification delivery failed"
// @Router      /pod/members/{id}/nudge [post]
func (h *PodHandler) Nudge(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	memberID, err := pathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.podService.Nudge(c.Request.Context(), userID, memberID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"status": "nudge sent"})
}
