package repository

import (
	"context"
	"errors"

	"focustrack/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserGoalRepository serves the ownership index. It is read-mostly: ownership
// records are written only inside the goal lifecycle transactions.
type UserGoalRepository struct {
	db *gorm.DB
}

func NewUserGoalRepository(db *gorm.DB) *UserGoalRepository {
	return &UserGoalRepository{db: db}
}

func (r *UserGoalRepository) FindByUserAndGoal(ctx context.Context, userID, goalID uuid.UUID) (*model.UserGoal, error) {
	var ownership model.UserGoal
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND goal_id = ?", userID, goalID).
		First(&ownership).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ownership, nil
}
