package repository

import (
	"context"
	"errors"

	"focustrack/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ShareRepository struct {
	db *gorm.DB
}

func NewShareRepository(db *gorm.DB) *ShareRepository {
	return &ShareRepository{db: db}
}

// Create records a share grant. The goal re-check, duplicate check and
// insert run in one transaction so racing requests cannot create two grants
// for the same (goal, contact) pair, and a share racing the goal's deletion
// fails with ErrGoalNotFound instead of a constraint violation.
func (r *ShareRepository) Create(ctx context.Context, goalID, ownerID, contactID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var goal model.Goal
		if err := tx.Select("id").First(&goal, "id = ?", goalID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrGoalNotFound
			}
			return err
		}

		var existing model.SharedGoal
		err := tx.Where("goal_id = ? AND contact_id = ?", goalID, contactID).First(&existing).Error
		if err == nil {
			return ErrAlreadyShared
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		share := model.SharedGoal{
			GoalID:    goalID,
			OwnerID:   ownerID,
			ContactID: contactID,
		}
		return tx.Create(&share).Error
	})
}

// Delete revokes a share grant.
func (r *ShareRepository) Delete(ctx context.Context, goalID, contactID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("goal_id = ? AND contact_id = ?", goalID, contactID).
		Delete(&model.SharedGoal{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrShareNotFound
	}
	return nil
}

func (r *ShareRepository) FindByGoalAndContact(ctx context.Context, goalID, contactID uuid.UUID) (*model.SharedGoal, error) {
	var share model.SharedGoal
	err := r.db.WithContext(ctx).
		Where("goal_id = ? AND contact_id = ?", goalID, contactID).
		First(&share).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &share, nil
}

// ListByContact returns the grants shared with a user, with goal and owner
// preloaded for the listing endpoints.
func (r *ShareRepository) ListByContact(ctx context.Context, contactID uuid.UUID) ([]model.SharedGoal, error) {
	var shares []model.SharedGoal
	err := r.db.WithContext(ctx).
		Preload("Goal").
		Preload("Owner").
		Where("contact_id = ?", contactID).
		Find(&shares).Error
	return shares, err
}

// ListByOwnerAndContact returns the grants a specific owner gave to a user.
func (r *ShareRepository) ListByOwnerAndContact(ctx context.Context, ownerID, contactID uuid.UUID) ([]model.SharedGoal, error) {
	var shares []model.SharedGoal
	err := r.db.WithContext(ctx).
		Preload("Goal").
		Preload("Owner").
		Where("owner_id = ? AND contact_id = ?", ownerID, contactID).
		Find(&shares).Error
	return shares, err
}

// ListByGoal returns the grants on a goal, with the receiving contacts preloaded.
func (r *ShareRepository) ListByGoal(ctx context.Context, goalID uuid.UUID) ([]model.SharedGoal, error) {
	var shares []model.SharedGoal
	err := r.db.WithContext(ctx).
		Preload("Contact").
		Where("goal_id = ?", goalID).
		Find(&shares).Error
	return shares, err
}
