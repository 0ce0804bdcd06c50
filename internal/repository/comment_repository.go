package repository

import (
	"context"
	"errors"

	"focustrack/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

// Create appends a comment. The goal is re-checked inside the transaction so
// a comment racing the goal's deletion fails with ErrGoalNotFound instead of
// a constraint violation.
func (r *CommentRepository) Create(ctx context.Context, comment *model.GoalComment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var goal model.Goal
		if err := tx.Select("id").First(&goal, "id = ?", comment.GoalID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrGoalNotFound
			}
			return err
		}
		return tx.Create(comment).Error
	})
}

func (r *CommentRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.GoalComment, error) {
	var comment model.GoalComment
	result := r.db.WithContext(ctx).First(&comment, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, result.Error
	}
	return &comment, nil
}

func (r *CommentRepository) Update(ctx context.Context, comment *model.GoalComment) error {
	result := r.db.WithContext(ctx).Save(comment)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCommentNotFound
	}
	return nil
}

func (r *CommentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.GoalComment{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCommentNotFound
	}
	return nil
}

// ListByGoal returns a goal's comments oldest first, with authors preloaded.
func (r *CommentRepository) ListByGoal(ctx context.Context, goalID uuid.UUID) ([]model.GoalComment, error) {
	var comments []model.GoalComment
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("goal_id = ?", goalID).
		Order("created_at").
		Find(&comments).Error
	return comments, err
}
