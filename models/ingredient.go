package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Ingredient is a per-user calorie definition. Meals reference it through
// MealIngredient; deleting one while referenced requires an explicit force.
type Ingredient struct {
	ID              string  `gorm:"type:uuid;primaryKey"`
	UserID          string  `gorm:"type:uuid;index;not null"`
	Name            string  `gorm:"type:varchar(255);not null"`
	CaloriesPerUnit float64 `gorm:"type:numeric(10,2);not null"`
	Unit            string  `gorm:"type:varchar(50);not null"`
	CreatedAt       time.Time
}

func (i *Ingredient) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
