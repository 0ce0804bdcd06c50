package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Goal carries no notion of "main" or "step" itself; the hierarchy level
// lives in UserGoal and the main/step binding in GoalStep.
type Goal struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Description string    `gorm:"not null"`
	Priority    int       `gorm:"not null"`           // 1-10
	Progress    int       `gorm:"not null;default:0"` // percentage, 0-100
	StartDate   time.Time `gorm:"type:date;not null"`
	DueDate     time.Time `gorm:"type:date;not null"`
	Done        bool      `gorm:"not null;default:false"`
	Position    int       `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Priority and progress bounds, validated before any goal write.
const (
	MinPriority = 1
	MaxPriority = 10
	MaxProgress = 100
)

// ValidatePriority rejects priorities outside [MinPriority, MaxPriority].
func ValidatePriority(priority int) error {
	if priority < MinPriority || priority > MaxPriority {
		return fmt.Errorf("priority must be between %d and %d", MinPriority, MaxPriority)
	}
	return nil
}

// ValidateProgress rejects progress values outside [0, MaxProgress].
func ValidateProgress(progress int) error {
	if progress < 0 || progress > MaxProgress {
		return fmt.Errorf("progress must be between 0 and %d", MaxProgress)
	}
	return nil
}
