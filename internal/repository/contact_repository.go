package repository

import (
	"context"
	"errors"

	"focustrack/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

// Request creates a pending invitation edge. It fails with ErrAlreadyRequested
// when an edge already exists between the two users in either direction,
// pending or accepted. The existence check and insert run in one transaction
// so two racing requests cannot both land.
func (r *ContactRepository) Request(ctx context.Context, requesterID, recipientID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.Contact
		err := tx.Where(
			"(requester_id = ? AND recipient_id = ?) OR (requester_id = ? AND recipient_id = ?)",
			requesterID, recipientID, recipientID, requesterID,
		).First(&existing).Error
		if err == nil {
			return ErrAlreadyRequested
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		edge := model.Contact{
			RequesterID: requesterID,
			RecipientID: recipientID,
			Accepted:    false,
		}
		return tx.Create(&edge).Error
	})
}

// Respond resolves a pending invitation sent by requesterID to recipientID.
// Accepting flips the edge in place; declining deletes it. Responding twice,
// or to a request that never existed, fails with ErrRequestNotFound.
func (r *ContactRepository) Respond(ctx context.Context, requesterID, recipientID uuid.UUID, accept bool) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var request model.Contact
		err := tx.Where(
			"requester_id = ? AND recipient_id = ? AND accepted = ?",
			requesterID, recipientID, false,
		).First(&request).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRequestNotFound
		}
		if err != nil {
			return err
		}
		if accept {
			request.Accepted = true
			return tx.Save(&request).Error
		}
		return tx.Delete(&request).Error
	})
}

// FindBetween returns the edge between two users regardless of direction or
// acceptance state, or (nil, nil) when none exists.
func (r *ContactRepository) FindBetween(ctx context.Context, a, b uuid.UUID) (*model.Contact, error) {
	var edge model.Contact
	err := r.db.WithContext(ctx).Where(
		"(requester_id = ? AND recipient_id = ?) OR (requester_id = ? AND recipient_id = ?)",
		a, b, b, a,
	).First(&edge).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &edge, nil
}

// Delete removes the edge between two users in whatever direction it exists.
func (r *ContactRepository) Delete(ctx context.Context, a, b uuid.UUID) error {
	result := r.db.WithContext(ctx).Where(
		"(requester_id = ? AND recipient_id = ?) OR (requester_id = ? AND recipient_id = ?)",
		a, b, b, a,
	).Delete(&model.Contact{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrContactNotFound
	}
	return nil
}

// AreContacts reports whether an accepted edge exists between the two users
// in either direction.
func (r *ContactRepository) AreContacts(ctx context.Context, a, b uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Contact{}).Where(
		"accepted = ? AND ((requester_id = ? AND recipient_id = ?) OR (requester_id = ? AND recipient_id = ?))",
		true, a, b, b, a,
	).Count(&count).Error
	return count > 0, err
}

// ListAccepted returns all accepted edges touching the user, with both sides
// preloaded so callers can pick out the counterpart.
func (r *ContactRepository) ListAccepted(ctx context.Context, userID uuid.UUID) ([]model.Contact, error) {
	var edges []model.Contact
	err := r.db.WithContext(ctx).
		Preload("Requester").
		Preload("Recipient").
		Where("accepted = ? AND (requester_id = ? OR recipient_id = ?)", true, userID, userID).
		Find(&edges).Error
	return edges, err
}

// ListSentPending returns invitations the user sent that are still unanswered.
func (r *ContactRepository) ListSentPending(ctx context.Context, userID uuid.UUID) ([]model.Contact, error) {
	var edges []model.Contact
	err := r.db.WithContext(ctx).
		Preload("Recipient").
		Where("accepted = ? AND requester_id = ?", false, userID).
		Find(&edges).Error
	return edges, err
}

// ListReceivedPending returns invitations the user received and has not answered.
func (r *ContactRepository) ListReceivedPending(ctx context.Context, userID uuid.UUID) ([]model.Contact, error) {
	var edges []model.Contact
	err := r.db.WithContext(ctx).
		Preload("Requester").
		Where("accepted = ? AND recipient_id = ?", false, userID).
		Find(&edges).Error
	return edges, err
}
