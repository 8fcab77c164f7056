package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MealLog records one consumption of a meal on a calendar date. Its calorie
// contribution is meal.total_calories * quantity, computed at read time.
type MealLog struct {
	ID        string    `gorm:"type:uuid;primaryKey"`
	UserID    string    `gorm:"type:uuid;index;not null"`
	MealID    string    `gorm:"type:uuid;index;not null"`
	Date      time.Time `gorm:"type:date;not null"`
	Quantity  int       `gorm:"not null"`
	CreatedAt time.Time
}

func (l *MealLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}
