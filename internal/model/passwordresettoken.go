package model

import (
	"time"

	"github.com/google/uuid"
)

// PasswordResetToken is a single-use credential for replacing a forgotten
// password. A user holds at most one live token; requesting again replaces
// it. Consuming or expiring a token removes it.
type PasswordResetToken struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Token     string    `gorm:"not null;uniqueIndex"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`

	User User `gorm:"foreignKey:UserID"`
}
