package repository

import (
	"context"
	"errors"
	"time"

	"focustrack/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PasswordResetRepository struct {
	db *gorm.DB
}

type PasswordResetRepositoryInterface interface {
	Create(ctx context.Context, userID uuid.UUID, token string, expiresAt time.Time) error
	Consume(ctx context.Context, token string) (uuid.UUID, error)
}

var _ PasswordResetRepositoryInterface = (*PasswordResetRepository)(nil)

func NewPasswordResetRepository(db *gorm.DB) *PasswordResetRepository {
	return &PasswordResetRepository{db: db}
}

// Create stores a reset token for the user, replacing any earlier one. The
// delete and insert run in one transaction so a user never holds two live
// tokens.
func (r *PasswordResetRepository) Create(ctx context.Context, userID uuid.UUID, token string, expiresAt time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&model.PasswordResetToken{}).Error; err != nil {
			return err
		}
		record := model.PasswordResetToken{
			UserID:    userID,
			Token:     token,
			ExpiresAt: expiresAt,
		}
		return tx.Create(&record).Error
	})
}

// Consume resolves a token to the user it was issued for and deletes it, so
// each token authorizes at most one password change. Unknown and expired
// tokens fail with ErrResetTokenNotFound.
func (r *PasswordResetRepository) Consume(ctx context.Context, token string) (uuid.UUID, error) {
	var userID uuid.UUID
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var record model.PasswordResetToken
		if err := tx.Where("token = ?", token).First(&record).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrResetTokenNotFound
			}
			return err
		}
		if time.Now().After(record.ExpiresAt) {
			return ErrResetTokenNotFound
		}
		if err := tx.Delete(&model.PasswordResetToken{}, "id = ?", record.ID).Error; err != nil {
			return err
		}
		userID = record.UserID
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return userID, nil
}
