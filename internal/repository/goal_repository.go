package repository

import (
	"context"
	"errors"

	"focustrack/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GoalRepository struct {
	db *gorm.DB
}

func NewGoalRepository(db *gorm.DB) *GoalRepository {
	return &GoalRepository{db: db}
}

// Create persists a new main goal and its ownership record as one unit.
// A goal must never exist without exactly one ownership record.
func (r *GoalRepository) Create(ctx context.Context, goal *model.Goal, ownerID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(goal).Error; err != nil {
			return err
		}
		ownership := model.UserGoal{
			UserID: ownerID,
			GoalID: goal.ID,
			Role:   model.RoleMain,
		}
		return tx.Create(&ownership).Error
	})
}

// AddStep persists a new step goal, its link to the main goal, and its
// ownership record as one unit.
func (r *GoalRepository) AddStep(ctx context.Context, mainGoalID uuid.UUID, step *model.Goal, ownerID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(step).Error; err != nil {
			return err
		}
		link := model.GoalStep{
			MainGoalID: mainGoalID,
			StepGoalID: step.ID,
		}
		if err := tx.Create(&link).Error; err != nil {
			return err
		}
		ownership := model.UserGoal{
			UserID: ownerID,
			GoalID: step.ID,
			Role:   model.RoleStep,
		}
		return tx.Create(&ownership).Error
	})
}

func (r *GoalRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Goal, error) {
	var goal model.Goal
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&goal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &goal, nil
}

func (r *GoalRepository) Update(ctx context.Context, goal *model.Goal) error {
	return r.db.WithContext(ctx).Save(goal).Error
}

// ListMainByOwner returns the main goals owned by a user, ordered by position.
func (r *GoalRepository) ListMainByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Goal, error) {
	var goals []model.Goal
	err := r.db.WithContext(ctx).
		Joins("JOIN user_goals ON user_goals.goal_id = goals.id").
		Where("user_goals.user_id = ? AND user_goals.role = ?", ownerID, model.RoleMain).
		Order("goals.position").
		Find(&goals).Error
	return goals, err
}

// ListSteps returns the step goals of a main goal, ordered by position.
func (r *GoalRepository) ListSteps(ctx context.Context, mainGoalID uuid.UUID) ([]model.Goal, error) {
	var steps []model.Goal
	err := r.db.WithContext(ctx).
		Joins("JOIN goal_steps ON goal_steps.step_goal_id = goals.id").
		Where("goal_steps.main_goal_id = ?", mainGoalID).
		Order("goals.position").
		Find(&steps).Error
	return steps, err
}

// DeleteMain removes a main goal and everything that depends on it, innermost
// dependents first: step ownerships, hierarchy links, step comments, step
// goals, shares, the main goal's comments and ownership, then the goal row.
func (r *GoalRepository) DeleteMain(ctx context.Context, goalID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return deleteMainGoalTx(tx, goalID)
	})
}

// deleteMainGoalTx is shared between goal deletion and user account deletion.
func deleteMainGoalTx(tx *gorm.DB, goalID uuid.UUID) error {
	var links []model.GoalStep
	if err := tx.Where("main_goal_id = ?", goalID).Find(&links).Error; err != nil {
		return err
	}

	stepIDs := make([]uuid.UUID, 0, len(links))
	for _, link := range links {
		stepIDs = append(stepIDs, link.StepGoalID)
	}

	if len(stepIDs) > 0 {
		if err := tx.Where("goal_id IN ?", stepIDs).Delete(&model.UserGoal{}).Error; err != nil {
			return err
		}
		if err := tx.Where("main_goal_id = ?", goalID).Delete(&model.GoalStep{}).Error; err != nil {
			return err
		}
		if err := tx.Where("goal_id IN ?", stepIDs).Delete(&model.GoalComment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("id IN ?", stepIDs).Delete(&model.Goal{}).Error; err != nil {
			return err
		}
	}

	if err := tx.Where("goal_id = ?", goalID).Delete(&model.SharedGoal{}).Error; err != nil {
		return err
	}
	if err := tx.Where("goal_id = ?", goalID).Delete(&model.GoalComment{}).Error; err != nil {
		return err
	}
	if err := tx.Where("goal_id = ?", goalID).Delete(&model.UserGoal{}).Error; err != nil {
		return err
	}

	result := tx.Delete(&model.Goal{}, "id = ?", goalID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrGoalNotFound
	}
	return nil
}

// DeleteStep removes a step goal, its hierarchy link and its ownership record.
// The main goal is left untouched.
func (r *GoalRepository) DeleteStep(ctx context.Context, stepGoalID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("goal_id = ?", stepGoalID).Delete(&model.GoalComment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("goal_id = ?", stepGoalID).Delete(&model.UserGoal{}).Error; err != nil {
			return err
		}
		if err := tx.Where("step_goal_id = ?", stepGoalID).Delete(&model.GoalStep{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&model.Goal{}, "id = ?", stepGoalID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrGoalNotFound
		}
		return nil
	})
}
