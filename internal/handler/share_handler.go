package handler

import (
	"errors"
	"net/http"

	"focustrack/internal/access"
	"focustrack/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ShareHandler struct {
	goalRepo  *repository.GoalRepository
	userRepo  repository.UserRepositoryInterface
	shareRepo *repository.ShareRepository
	engine    *access.Engine
}

func NewShareHandler(
	goalRepo *repository.GoalRepository,
	userRepo repository.UserRepositoryInterface,
	shareRepo *repository.ShareRepository,
	engine *access.Engine,
) *ShareHandler {
	return &ShareHandler{
		goalRepo:  goalRepo,
		userRepo:  userRepo,
		shareRepo: shareRepo,
		engine:    engine,
	}
}

type ShareGoalRequest struct {
	ContactID string `json:"contact_id" binding:"required,uuid"`
}

type SharedGoalResponse struct {
	Goal       GoalResponse `json:"goal"`
	OwnerID    string       `json:"owner_id"`
	OwnerEmail string       `json:"owner_email"`
}

// Share grants a contact read access to a main goal. Requires main-role
// ownership and an accepted contact edge with the target.
func (h *ShareHandler) Share(c *gin.Context) {
	authenticatedUserID, ok := currentUserID(c)
	if !ok {
		return
	}

	goalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid goal ID format"})
		return
	}

	goal, err := h.goalRepo.GetByID(c.Request.Context(), goalID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve goal"})
		return
	}
	if goal == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Goal not found"})
		return
	}

	var req ShareGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	contactID, _ := uuid.Parse(req.ContactID)

	targetUser, err := h.userRepo.GetByID(c.Request.Context(), contactID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to find user"})
		return
	}
	if targetUser == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contact user not found"})
		return
	}

	if err := h.engine.AuthorizeShare(c.Request.Context(), authenticatedUserID, goalID, contactID); err != nil {
		switch {
		case errors.Is(err, access.ErrSelfReference):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot share a goal with yourself"})
		case errors.Is(err, access.ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": "Only main goals can be shared by their owner"})
		case errors.Is(err, access.ErrNotContact):
			c.JSON(http.StatusForbidden, gin.H{"error": "You can only share goals with accepted contacts"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check share permission"})
		}
		return
	}

	if err := h.shareRepo.Create(c.Request.Context(), goalID, authenticatedUserID, contactID); err != nil {
		if errors.Is(err, repository.ErrAlreadyShared) {
			c.JSON(http.StatusConflict, gin.H{"error": "Goal already shared with this contact"})
			return
		}
		if errors.Is(err, repository.ErrGoalNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Goal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to share goal"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Goal shared successfully"})
}

// Unshare revokes a contact's access to a main goal. Owner only.
func (h *ShareHandler) Unshare(c *gin.Context) {
	authenticatedUserID, ok := currentUserID(c)
	if !ok {
		return
	}

	goalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid goal ID format"})
		return
	}

	contactID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID format"})
		return
	}

	goal, err := h.goalRepo.GetByID(c.Request.Context(), goalID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve goal"})
		return
	}
	if goal == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Goal not found"})
		return
	}

	isMainOwner, err := h.engine.IsMainOwner(c.Request.Context(), authenticatedUserID, goalID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check goal access"})
		return
	}
	if !isMainOwner {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the goal owner can revoke access"})
		return
	}

	if err := h.shareRepo.Delete(c.Request.Context(), goalID, contactID); err != nil {
		if errors.Is(err, repository.ErrShareNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Goal not shared with this contact"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unshare goal"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Goal unshared successfully"})
}

// GetGoalShares lists the users a goal is shared with. Owner only.
func (h *ShareHandler) GetGoalShares(c *gin.Context) {
	authenticatedUserID, ok := currentUserID(c)
	if !ok {
		return
	}

	goalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid goal ID format"})
		return
	}

	goal, err := h.goalRepo.GetByID(c.Request.Context(), goalID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve goal"})
		return
	}
	if goal == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Goal not found"})
		return
	}

	isMainOwner, err := h.engine.IsMainOwner(c.Request.Context(), authenticatedUserID, goalID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check goal access"})
		return
	}
	if !isMainOwner {
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not own this goal or it's not a main goal"})
		return
	}

	shares, err := h.shareRepo.ListByGoal(c.Request.Context(), goalID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve shares"})
		return
	}

	response := make([]UserResponse, len(shares))
	for i, share := range shares {
		response[i] = toUserResponse(&share.Contact)
	}
	c.JSON(http.StatusOK, response)
}

// GetSharedGoals lists the goals shared with the authenticated user.
func (h *ShareHandler) GetSharedGoals(c *gin.Context) {
	authenticatedUserID, ok := currentUserID(c)
	if !ok {
		return
	}

	shares, err := h.shareRepo.ListByContact(c.Request.Context(), authenticatedUserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve shared goals"})
		return
	}

	response := make([]SharedGoalResponse, len(shares))
	for i, share := range shares {
		response[i] = SharedGoalResponse{
			Goal:       toGoalResponse(&share.Goal),
			OwnerID:    share.OwnerID.String(),
			OwnerEmail: share.Owner.Email,
		}
	}
	c.JSON(http.StatusOK, response)
}

// GetSharedByOwner lists the goals a specific owner shared with the
// authenticated user.
func (h *ShareHandler) GetSharedByOwner(c *gin.Context) {
	authenticatedUserID, ok := currentUserID(c)
	if !ok {
		return
	}

	ownerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID format"})
		return
	}

	owner, err := h.userRepo.GetByID(c.Request.Context(), ownerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to find user"})
		return
	}
	if owner == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	shares, err := h.shareRepo.ListByOwnerAndContact(c.Request.Context(), ownerID, authenticatedUserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve shared goals"})
		return
	}

	response := make([]SharedGoalResponse, len(shares))
	for i, share := range shares {
		response[i] = SharedGoalResponse{
			Goal:       toGoalResponse(&share.Goal),
			OwnerID:    share.OwnerID.String(),
			OwnerEmail: share.Owner.Email,
		}
	}
	c.JSON(http.StatusOK, response)
}
