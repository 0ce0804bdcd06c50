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

const dateLayout = "2006-01-02"

type GoalHandler struct {
	goalRepo     *repository.GoalRepository
	goalStepRepo *repository.GoalStepRepository
	engine       *access.Engine
}

func NewGoalHandler(goalRepo *repository.GoalRepository, goalStepRepo *repository.GoalStepRepository, engine *access.Engine) *GoalHandler {
	return &GoalHandler{
		goalRepo:     goalRepo,
		goalStepRepo: goalStepRepo,
		engine:       engine,
	}
}

type CreateGoalRequest struct {
	Description string `json:"description" binding:"required"`
	Priority    int    `json:"priority" binding:"required"`
	StartDate   string `json:"start_date" binding:"required"`
	DueDate     string `json:"due_date" binding:"required"`
	Position    int    `json:"position"`
}

type UpdateGoalRequest struct {
	Description *string `json:"description"`
	Priority    *int    `json:"priority"`
	Progress    *int    `json:"progress"`
	StartDate   *string `json:"start_date"`
	DueDate     *string `json:"due_date"`
	Done        *bool   `json:"done"`
	Position    *int    `json:"position"`
}

type UpdateGoalStatusRequest struct {
	Done *bool `json:"done" binding:"required"`
}

type GoalResponse struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Priority    int    `json:"priority"`
	Progress    int    `json:"progress"`
	StartDate   string `json:"start_date"`
	DueDate     string `json:"due_date"`
	Done        bool   `json:"done"`
	Position    int    `json:"position"`
}

func toGoalResponse(goal *model.Goal) GoalResponse {
	return GoalResponse{
		ID:          goal.ID.String(),
		Description: goal.Description,
		Priority:    goal.Priority,
		Progress:    goal.Progress,
		StartDate:   goal.StartDate.Format(dateLayout),
		DueDate:     goal.DueDate.Format(dateLayout),
		Done:        goal.Done,
		Position:    goal.Position,
	}
}

func parseDate(c *gin.Context, value string) (time.Time, bool) {
	date, err := time.Parse(dateLayout, value)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format (expected YYYY-MM-DD)"})
		return time.Time{}, false
	}
	return date, true
}

// getGoal loads a goal by its path param, handling the 400/404 responses.
func (h *GoalHandler) getGoal(c *gin.Context) (*model.Goal, bool) {
	goalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid goal ID format"})
		return nil, false
	}

	goal, err := h.goalRepo.GetByID(c.Request.Context(), goalID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve goal"})
		return nil, false
	}
	if goal == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Goal not found"})
		return nil, false
	}
	return goal, true
}

// Create creates a new main goal owned by the authenticated user
func (h *GoalHandler) Create(c *gin.Context) {
	authenticatedUserID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if err := model.ValidatePriority(req.Priority); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	startDate, ok := parseDate(c, req.StartDate)
	if !ok {
		return
	}
	dueDate, ok := parseDate(c, req.DueDate)
	if !ok {
		return
	}

	goal := &model.Goal{
		Description: req.Description,
		Priority:    req.Priority,
		StartDate:   startDate,
		DueDate:     dueDate,
		Position:    req.Position,
	}

	if err := h.goalRepo.Create(c.Request.Context(), goal, authenticatedUserID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create goal"})
		return
	}

	c.JSON(http.StatusCreated, toGoalResponse(goal))
}

// AddStep creates a step goal under the given main goal. Only the owner of
// the main goal may add steps to it.
func (h *GoalHandler) AddStep(c *gin.Context) {
	authenticatedUserID, ok := currentUserID(c)
	if !ok {
		return
	}

	mainGoal, ok := h.getGoal(c)
	if !ok {
		return
	}

	isMainOwner, err := h.engine.IsMainOwner(c.Request.Context(), authenticatedUserID, mainGoal.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check goal access"})
		return
	}
	if !isMainOwner {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the owner of the main goal can add steps"})
		return
	}

	var req CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if err := model.ValidatePriority(req.Priority); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	startDate, ok := parseDate(c, req.StartDate)
	if !ok {
		return
	}
	dueDate, ok := parseDate(c, req.DueDate)
	if !ok {
		return
	}

	step := &model.Goal{
		Description: req.Description,
		Priority:    req.Priority,
		StartDate:   startDate,
		DueDate:     dueDate,
		Position:    req.Position,
	}

	if err := h.goalRepo.AddStep(c.Request.Context(), mainGoal.ID, step, authenticatedUserID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create step"})
		return
	}

	c.JSON(http.StatusCreated, toGoalResponse(step))
}

// GetAll returns the authenticated user's main goals
func (h *GoalHandler) GetAll(c *gin.Context) {
	authenticatedUserID, ok := currentUserID(c)
	if !ok {
		return
	}

	goals, err := h.goalRepo.ListMainByOwner(c.Request.Context(), authenticatedUserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve goals"})
		return
	}

	response := make([]GoalResponse, len(goals))
	for i := range goals {
		response[i] = toGoalResponse(&goals[i])
	}
	c.JSON(http.StatusOK, response)
}

// GetByID returns a goal visible to the caller, either as its owner or
// through a share grant.
func (h *GoalHandler) GetByID(c *gin.Context) {
	authenticatedUserID, ok := currentUserID(c)
	if !ok {
		return
	}

	goal, ok := h.getGoal(c)
	if !ok {
		return
	}

	canView, err := h.engine.CanView(c.Request.Context(), authenticatedUserID, goal.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check goal access"})
		return
	}
	if !canView {
		c.JSON(http.StatusForbidden, gin.H{"error": "You don't have access to this goal"})
		return
	}

	c.JSON(http.StatusOK, toGoalResponse(goal))
}

// GetSteps returns the steps of a main goal, visible to its owner and to
// contacts the goal is shared with.
func (h *GoalHandler) GetSteps(c *gin.Context) {
	authenticatedUserID, ok := currentUserID(c)
	if !ok {
		return
	}

	mainGoal, ok := h.getGoal(c)
	if !ok {
		return
	}

	canView, err := h.engine.CanView(c.Request.Context(), authenticatedUserID, mainGoal.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check goal access"})
		return
	}
	if !canView {
		c.JSON(http.StatusForbidden, gin.H{"error": "You don't have access to this goal"})
		return
	}

	steps, err := h.goalRepo.ListSteps(c.Request.Context(), mainGoal.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve steps"})
		return
	}

	response := make([]GoalResponse, len(steps))
	for i := range steps {
		response[i] = toGoalResponse(&steps[i])
	}
	c.JSON(http.StatusOK, response)
}

// Update modifies goal fields. Only the ownership holder may write; a share
// grant never does.
func (h *GoalHandler) Update(c *gin.Context) {
	authenticatedUserID, ok := currentUserID(c)
	if !ok {
		return
	}

	goal, ok := h.getGoal(c)
	if !ok {
		return
	}

	isOwner, err := h.engine.IsOwner(c.Request.Context(), authenticatedUserID, goal.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check goal access"})
		return
	}
	if !isOwner {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the goal owner can update it"})
		return
	}

	var req UpdateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if req.Description != nil {
		goal.Description = *req.Description
	}
	if req.Priority != nil {
		if err := model.ValidatePriority(*req.Priority); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		goal.Priority = *req.Priority
	}
	if req.Progress != nil {
		if err := model.ValidateProgress(*req.Progress); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		goal.Progress = *req.Progress
	}
	if req.StartDate != nil {
		startDate, ok := parseDate(c, *req.StartDate)
		if !ok {
			return
		}
		goal.StartDate = startDate
	}
	if req.DueDate != nil {
		dueDate, ok := parseDate(c, *req.DueDate)
		if !ok {
			return
		}
		goal.DueDate = dueDate
	}
	if req.Done != nil {
		goal.Done = *req.Done
	}
	if req.Position != nil {
		goal.Position = *req.Position
	}

	if err := h.goalRepo.Update(c.Request.Context(), goal); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update goal"})
		return
	}

	c.JSON(http.StatusOK, toGoalResponse(goal))
}

// UpdateStatus flips the done flag. Owner only.
func (h *GoalHandler) UpdateStatus(c *gin.Context) {
	authenticatedUserID, ok := currentUserID(c)
	if !ok {
		return
	}

	goal, ok := h.getGoal(c)
	if !ok {
		return
	}

	isOwner, err := h.engine.IsOwner(c.Request.Context(), authenticatedUserID, goal.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check goal access"})
		return
	}
	if !isOwner {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the goal owner can update it"})
		return
	}

	var req UpdateGoalStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	goal.Done = *req.Done
	if err := h.goalRepo.Update(c.Request.Context(), goal); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update goal"})
		return
	}

	c.JSON(http.StatusOK, toGoalResponse(goal))
}

// Delete removes a main goal and cascades over its steps, their ownerships
// and links, plus shares and comments. Only the main-role owner may delete.
func (h *GoalHandler) Delete(c *gin.Context) {
	authenticatedUserID, ok := currentUserID(c)
	if !ok {
		return
	}

	goal, ok := h.getGoal(c)
	if !ok {
		return
	}

	isMainOwner, err := h.engine.IsMainOwner(c.Request.Context(), authenticatedUserID, goal.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check goal access"})
		return
	}
	if !isMainOwner {
		c.JSON(http.StatusForbidden, gin.H{"error": "Goal not assigned to user or it's not a main goal"})
		return
	}

	if err := h.goalRepo.DeleteMain(c.Request.Context(), goal.ID); err != nil {
		if errors.Is(err, repository.ErrGoalNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Goal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete goal"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Goal deleted successfully"})
}

// DeleteStep removes a step goal. The caller must own the main goal the step
// belongs to, not just the step itself.
func (h *GoalHandler) DeleteStep(c *gin.Context) {
	authenticatedUserID, ok := currentUserID(c)
	if !ok {
		return
	}

	stepGoal, ok := h.getGoal(c)
	if !ok {
		return
	}

	link, err := h.goalStepRepo.FindByStepGoal(c.Request.Context(), stepGoal.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve step"})
		return
	}
	if link == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Goal is not a step of any main goal"})
		return
	}

	isMainOwner, err := h.engine.IsMainOwner(c.Request.Context(), authenticatedUserID, link.MainGoalID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check goal access"})
		return
	}
	if !isMainOwner {
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not own the main goal, cannot delete step"})
		return
	}

	if err := h.goalRepo.DeleteStep(c.Request.Context(), stepGoal.ID); err != nil {
		if errors.Is(err, repository.ErrGoalNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Goal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete step"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Step deleted successfully"})
}
