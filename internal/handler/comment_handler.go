package handler

import (
	"errors"
	"net/http"
	"time"

	"focustrack/internal/access"
	"focustrack/internal/model"
	"focustrack/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CommentHandler struct {
	goalRepo    *repository.GoalRepository
	commentRepo *repository.CommentRepository
	engine      *access.Engine
}

func NewCommentHandler(goalRepo *repository.GoalRepository, commentRepo *repository.CommentRepository, engine *access.Engine) *CommentHandler {
	return &CommentHandler{
		goalRepo:    goalRepo,
		commentRepo: commentRepo,
		engine:      engine,
	}
}

type CommentRequest struct {
	Text string `json:"text" binding:"required"`
}

type CommentResponse struct {
	ID          string `json:"id"`
	GoalID      string `json:"goal_id"`
	AuthorID    string `json:"author_id"`
	AuthorEmail string `json:"author_email,omitempty"`
	Text        string `json:"text"`
	CreatedAt   string `json:"created_at"`
}

func toCommentResponse(comment *model.GoalComment) CommentResponse {
	return CommentResponse{
		ID:          comment.ID.String(),
		GoalID:      comment.GoalID.String(),
		AuthorID:    comment.AuthorID.String(),
		AuthorEmail: comment.Author.Email,
		Text:        comment.Content,
		CreatedAt:   comment.CreatedAt.Format(time.RFC3339),
	}
}

// Create posts a comment on a goal. Anyone with read access may comment:
// the owner, or a contact the goal is shared with.
func (h *CommentHandler) Create(c *gin.Context) {
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

	canView, err := h.engine.CanView(c.Request.Context(), authenticatedUserID, goalID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check goal access"})
		return
	}
	if !canView {
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not have access to comment on this goal"})
		return
	}

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	comment := &model.GoalComment{
		GoalID:   goalID,
		AuthorID: authenticatedUserID,
		Content:  req.Text,
	}
	if err := h.commentRepo.Create(c.Request.Context(), comment); err != nil {
		if errors.Is(err, repository.ErrGoalNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Goal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create comment"})
		return
	}

	c.JSON(http.StatusCreated, toCommentResponse(comment))
}

// List returns a goal's comments oldest first, gated by read access.
func (h *CommentHandler) List(c *gin.Context) {
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

	canView, err := h.engine.CanView(c.Request.Context(), authenticatedUserID, goalID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check goal access"})
		return
	}
	if !canView {
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not have access to view comments"})
		return
	}

	comments, err := h.commentRepo.ListByGoal(c.Request.Context(), goalID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve comments"})
		return
	}

	response := make([]CommentResponse, len(comments))
	for i := range comments {
		response[i] = toCommentResponse(&comments[i])
	}
	c.JSON(http.StatusOK, response)
}

// Update rewrites a comment's text. Author only; goal owners cannot edit
// other people's comments, they can only delete them.
func (h *CommentHandler) Update(c *gin.Context) {
	authenticatedUserID, ok := currentUserID(c)
	if !ok {
		return
	}

	commentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid comment ID format"})
		return
	}

	comment, err := h.commentRepo.GetByID(c.Request.Context(), commentID)
	if err != nil {
		if errors.Is(err, repository.ErrCommentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve comment"})
		return
	}

	if comment.AuthorID != authenticatedUserID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only update your own comments"})
		return
	}

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	comment.Content = req.Text
	if err := h.commentRepo.Update(c.Request.Context(), comment); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update comment"})
		return
	}

	c.JSON(http.StatusOK, toCommentResponse(comment))
}

// Delete removes a comment. Permitted to its author, and to the main-goal
// owner as moderation of comments on their own goal.
func (h *CommentHandler) Delete(c *gin.Context) {
	authenticatedUserID, ok := currentUserID(c)
	if !ok {
		return
	}

	commentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid comment ID format"})
		return
	}

	comment, err := h.commentRepo.GetByID(c.Request.Context(), commentID)
	if err != nil {
		if errors.Is(err, repository.ErrCommentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve comment"})
		return
	}

	canModerate, err := h.engine.CanModerateComment(c.Request.Context(), authenticatedUserID, comment)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check comment access"})
		return
	}
	if !canModerate {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only delete your own comments or comments on your goals"})
		return
	}

	if err := h.commentRepo.Delete(c.Request.Context(), commentID); err != nil {
		if errors.Is(err, repository.ErrCommentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete comment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted successfully"})
}
