package model

import (
	"time"

	"github.com/google/uuid"
)

// SharedGoal grants a contact read access to a main goal, its steps and its
// comments, plus the right to post comments. It never grants writes on goal
// fields and cannot be re-shared by the contact.
type SharedGoal struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	GoalID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_shared_goal_contact"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ContactID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_shared_goal_contact"`
	CreatedAt time.Time `gorm:"autoCreateTime"`

	Goal    Goal `gorm:"foreignKey:GoalID"`
	Owner   User `gorm:"foreignKey:OwnerID"`
	Contact User `gorm:"foreignKey:ContactID"`
}
