package model

import (
	"github.com/google/uuid"
)

// UserGoal is the ownership index: exactly one record per goal, naming the
// single user who controls it and the hierarchy level it was created at.
type UserGoal struct {
	ID     uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index"`
	GoalID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Role   string    `gorm:"not null;check:role IN ('main', 'step')"`

	User User `gorm:"foreignKey:UserID"`
	Goal Goal `gorm:"foreignKey:GoalID"`
}

// Hierarchy roles for an ownership record
const (
	RoleMain = "main" // top-level goal, shareable
	RoleStep = "step" // sub-goal bound to a main goal
)
