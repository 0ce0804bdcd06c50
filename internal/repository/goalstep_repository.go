package repository

import (
	"context"
	"errors"

	"focustrack/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GoalStepRepository struct {
	db *gorm.DB
}

func NewGoalStepRepository(db *gorm.DB) *GoalStepRepository {
	return &GoalStepRepository{db: db}
}

// FindByStepGoal returns the link binding a step goal to its main goal, or
// (nil, nil) when the goal is not a step.
func (r *GoalStepRepository) FindByStepGoal(ctx context.Context, stepGoalID uuid.UUID) (*model.GoalStep, error) {
	var link model.GoalStep
	err := r.db.WithContext(ctx).
		Where("step_goal_id = ?", stepGoalID).
		First(&link).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &link, nil
}
