package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Meal is a named bundle of ingredient associations. TotalCalories is
// derived from the associations at write time and stored; it is never
// patched independently of them.
type Meal struct {
	ID            string  `gorm:"type:uuid;primaryKey"`
	UserID        string  `gorm:"type:uuid;index;not null"`
	Name          string  `gorm:"type:varchar(255);not null"`
	TotalCalories float64 `gorm:"type:numeric(12,2);not null"`
	CreatedAt     time.Time
	Ingredients   []MealIngredient `gorm:"foreignKey:MealID"`
}

func (m *Meal) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// MealIngredient links a meal to one ingredient at a quantity. A meal never
// holds the same ingredient twice.
type MealIngredient struct {
	MealID       string  `gorm:"type:uuid;primaryKey"`
	IngredientID string  `gorm:"type:uuid;primaryKey"`
	Quantity     float64 `gorm:"type:numeric(10,2);not null"`
}
