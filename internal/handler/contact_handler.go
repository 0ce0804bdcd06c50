package handler

import (
	"errors"
	"net/http"

	"focustrack/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ContactHandler struct {
	contactRepo *repository.ContactRepository
	userRepo    repository.UserRepositoryInterface
}

func NewContactHandler(contactRepo *repository.ContactRepository, userRepo repository.UserRepositoryInterface) *ContactHandler {
	return &ContactHandler{
		contactRepo: contactRepo,
		userRepo:    userRepo,
	}
}

type InviteRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
}

type RespondRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
	Accept *bool  `json:"accept" binding:"required"`
}

// Invite sends a contact request to another user
func (h *ContactHandler) Invite(c *gin.Context) {
	authenticatedUserID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req InviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	targetID, _ := uuid.Parse(req.UserID)

	if targetID == authenticatedUserID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot send a contact request to yourself"})
		return
	}

	target, err := h.userRepo.GetByID(c.Request.Context(), targetID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to find user"})
		return
	}
	if target == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if err := h.contactRepo.Request(c.Request.Context(), authenticatedUserID, targetID); err != nil {
		if errors.Is(err, repository.ErrAlreadyRequested) {
			c.JSON(http.StatusConflict, gin.H{"error": "Contact request already sent or users are already contacts"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send contact request"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Contact request sent successfully"})
}

// Respond accepts or declines a pending request sent to the authenticated
// user. Only the recipient of a request may respond to it; responding to an
// already-accepted or missing request fails rather than silently succeeding.
func (h *ContactHandler) Respond(c *gin.Context) {
	authenticatedUserID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req RespondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	requesterID, _ := uuid.Parse(req.UserID)

	if err := h.contactRepo.Respond(c.Request.Context(), requesterID, authenticatedUserID, *req.Accept); err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Contact request not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to respond to contact request"})
		return
	}

	if *req.Accept {
		c.JSON(http.StatusOK, gin.H{"message": "Contact request accepted"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Contact request declined"})
}

// List returns the authenticated user's accepted contacts
func (h *ContactHandler) List(c *gin.Context) {
	authenticatedUserID, ok := currentUserID(c)
	if !ok {
		return
	}

	edges, err := h.contactRepo.ListAccepted(c.Request.Context(), authenticatedUserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve contacts"})
		return
	}

	response := make([]UserResponse, len(edges))
	for i, edge := range edges {
		other := edge.Other(authenticatedUserID)
		response[i] = toUserResponse(&other)
	}
	c.JSON(http.StatusOK, response)
}

// ListSent returns pending invitations the authenticated user sent
func (h *ContactHandler) ListSent(c *gin.Context) {
	authenticatedUserID, ok := currentUserID(c)
	if !ok {
		return
	}

	edges, err := h.contactRepo.ListSentPending(c.Request.Context(), authenticatedUserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve invitations"})
		return
	}

	response := make([]UserResponse, len(edges))
	for i := range edges {
		response[i] = toUserResponse(&edges[i].Recipient)
	}
	c.JSON(http.StatusOK, response)
}

// ListReceived returns pending invitations the authenticated user received
func (h *ContactHandler) ListReceived(c *gin.Context) {
	authenticatedUserID, ok := currentUserID(c)
	if !ok {
		return
	}

	edges, err := h.contactRepo.ListReceivedPending(c.Request.Context(), authenticatedUserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve invitations"})
		return
	}

	response := make([]UserResponse, len(edges))
	for i := range edges {
		response[i] = toUserResponse(&edges[i].Requester)
	}
	c.JSON(http.StatusOK, response)
}

// Remove deletes the contact edge with another user, whichever side sent the
// original invitation.
func (h *ContactHandler) Remove(c *gin.Context) {
	authenticatedUserID, ok := currentUserID(c)
	if !ok {
		return
	}

	otherID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID format"})
		return
	}

	if err := h.contactRepo.Delete(c.Request.Context(), authenticatedUserID, otherID); err != nil {
		if errors.Is(err, repository.ErrContactNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No contact between the users"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove contact"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Contact removed successfully"})
}
