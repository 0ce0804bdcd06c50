// Package access decides, for a (user, goal, operation) triple, whether the
// operation is permitted. Decisions consume only ownership, share, hierarchy
// and contact state; goal content is never inspected.
package access

import (
	"context"
	"errors"

	"focustrack/internal/model"

	"github.com/google/uuid"
)

var (
	// ErrNotOwner is returned when the caller lacks the required ownership record
	ErrNotOwner = errors.New("caller does not own this goal")

	// ErrNotContact is returned when a share is attempted without an accepted contact edge
	ErrNotContact = errors.New("users are not accepted contacts")

	// ErrSelfReference is returned when an operation targets the caller themselves
	ErrSelfReference = errors.New("operation cannot target the caller")
)

// OwnershipStore resolves the ownership index.
type OwnershipStore interface {
	FindByUserAndGoal(ctx context.Context, userID, goalID uuid.UUID) (*model.UserGoal, error)
}

// ShareStore resolves share grants on main goals.
type ShareStore interface {
	FindByGoalAndContact(ctx context.Context, goalID, contactID uuid.UUID) (*model.SharedGoal, error)
}

// HierarchyStore resolves step goals to the main goal they belong to.
type HierarchyStore interface {
	FindByStepGoal(ctx context.Context, stepGoalID uuid.UUID) (*model.GoalStep, error)
}

// ContactStore answers whether two users are accepted contacts.
type ContactStore interface {
	AreContacts(ctx context.Context, a, b uuid.UUID) (bool, error)
}

type Engine struct {
	ownership OwnershipStore
	shares    ShareStore
	hierarchy HierarchyStore
	contacts  ContactStore
}

func NewEngine(ownership OwnershipStore, shares ShareStore, hierarchy HierarchyStore, contacts ContactStore) *Engine {
	return &Engine{
		ownership: ownership,
		shares:    shares,
		hierarchy: hierarchy,
		contacts:  contacts,
	}
}

// CanView reports whether the user may read the goal, its steps and its
// comments. Owners pass at any hierarchy role. Everyone else needs a share
// grant, which only ever exists on main goals: for a step goal the check
// resolves to the owning main goal first.
func (e *Engine) CanView(ctx context.Context, userID, goalID uuid.UUID) (bool, error) {
	ownership, err := e.ownership.FindByUserAndGoal(ctx, userID, goalID)
	if err != nil {
		return false, err
	}
	if ownership != nil {
		return true, nil
	}

	mainGoalID := goalID
	link, err := e.hierarchy.FindByStepGoal(ctx, goalID)
	if err != nil {
		return false, err
	}
	if link != nil {
		mainGoalID = link.MainGoalID
	}

	share, err := e.shares.FindByGoalAndContact(ctx, mainGoalID, userID)
	if err != nil {
		return false, err
	}
	return share != nil, nil
}

// IsOwner reports whether the user holds the ownership record for the goal,
// regardless of hierarchy role. Shares never grant this.
func (e *Engine) IsOwner(ctx context.Context, userID, goalID uuid.UUID) (bool, error) {
	ownership, err := e.ownership.FindByUserAndGoal(ctx, userID, goalID)
	if err != nil {
		return false, err
	}
	return ownership != nil, nil
}

// IsMainOwner reports whether the user owns the goal at the main hierarchy
// role. Required for adding steps, deleting the goal tree, and sharing.
func (e *Engine) IsMainOwner(ctx context.Context, userID, goalID uuid.UUID) (bool, error) {
	ownership, err := e.ownership.FindByUserAndGoal(ctx, userID, goalID)
	if err != nil {
		return false, err
	}
	return ownership != nil && ownership.Role == model.RoleMain, nil
}

// AuthorizeShare validates that ownerID may grant contactID access to the
// goal: the caller must own the goal at the main role, must not target
// themselves, and must have an accepted contact edge with the target.
func (e *Engine) AuthorizeShare(ctx context.Context, ownerID, goalID, contactID uuid.UUID) error {
	if ownerID == contactID {
		return ErrSelfReference
	}

	isMainOwner, err := e.IsMainOwner(ctx, ownerID, goalID)
	if err != nil {
		return err
	}
	if !isMainOwner {
		return ErrNotOwner
	}

	areContacts, err := e.contacts.AreContacts(ctx, ownerID, contactID)
	if err != nil {
		return err
	}
	if !areContacts {
		return ErrNotContact
	}
	return nil
}

// CanModerateComment reports whether the user may delete the comment. The
// author always may; so may the owner of the goal the comment is attached to,
// whether that goal is a main goal or one of its steps. Editing stays
// author-only: moderation is delete-only.
func (e *Engine) CanModerateComment(ctx context.Context, userID uuid.UUID, comment *model.GoalComment) (bool, error) {
	if comment.AuthorID == userID {
		return true, nil
	}
	return e.IsOwner(ctx, userID, comment.GoalID)
}
