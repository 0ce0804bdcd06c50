package repository

import "errors"

// Common repository errors
var (
	// ErrUserNotFound is returned when a user is not found
	ErrUserNotFound = errors.New("user not found")

	// ErrGoalNotFound is returned when a goal is not found
	ErrGoalNotFound = errors.New("goal not found")

	// ErrCommentNotFound is returned when a comment is not found
	ErrCommentNotFound = errors.New("comment not found")

	// ErrShareNotFound is returned when a goal is not shared with the given contact
	ErrShareNotFound = errors.New("goal not shared with this contact")

	// ErrAlreadyShared is returned on duplicate share grants
	ErrAlreadyShared = errors.New("goal already shared with this contact")

	// ErrAlreadyRequested is returned when a contact edge already exists in either direction
	ErrAlreadyRequested = errors.New("contact request already sent or users are already contacts")

	// ErrRequestNotFound is returned when no pending contact request exists
	ErrRequestNotFound = errors.New("contact request not found")

	// ErrContactNotFound is returned when no contact edge exists between two users
	ErrContactNotFound = errors.New("no contact between the users")

	// ErrResetTokenNotFound is returned when a password reset token is unknown,
	// already consumed, or expired
	ErrResetTokenNotFound = errors.New("invalid or expired reset token")
)
