package model

import (
	"github.com/google/uuid"
)

// GoalStep binds a step goal to the main goal it belongs to. A goal appears
// as a step in at most one link, and steps never have steps of their own.
type GoalStep struct {
	ID         uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	MainGoalID uuid.UUID `gorm:"type:uuid;not null;index"`
	StepGoalID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`

	MainGoal Goal `gorm:"foreignKey:MainGoalID"`
	StepGoal Goal `gorm:"foreignKey:StepGoalID"`
}
