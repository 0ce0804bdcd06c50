package model

import (
	"time"

	"github.com/google/uuid"
)

// Contact is a directed invitation edge between two users. At most one edge
// exists per pair, in either direction; Accepted=false is a pending
// invitation the recipient has yet to answer.
type Contact struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	RequesterID uuid.UUID `gorm:"type:uuid;not null;index"`
	RecipientID uuid.UUID `gorm:"type:uuid;not null;index"`
	Accepted    bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`

	Requester User `gorm:"foreignKey:RequesterID"`
	Recipient User `gorm:"foreignKey:RecipientID"`
}

// Other returns the user on the opposite side of the edge from userID.
func (c *Contact) Other(userID uuid.UUID) User {
	if c.RequesterID == userID {
		return c.Recipient
	}
	return c.Requester
}
