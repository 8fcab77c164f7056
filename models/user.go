package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is created once per external principal by the idempotent bootstrap.
// The gateway authenticates callers; ExternalID is the principal's stable
// subject claim and the only thing tying a request to its rows.
type User struct {
	ID         string `gorm:"type:uuid;primaryKey"`
	ExternalID string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Email      string `gorm:"type:varchar(255)"`
	CreatedAt  time.Time
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
