package model

import (
	"time"

	"github.com/google/uuid"
)

type GoalComment struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	GoalID    uuid.UUID `gorm:"type:uuid;not null;index"`
	AuthorID  uuid.UUID `gorm:"type:uuid;not null"`
	Content   string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`

	Goal   Goal `gorm:"foreignKey:GoalID"`
	Author User `gorm:"foreignKey:AuthorID"`
}
