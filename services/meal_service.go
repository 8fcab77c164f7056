package services

import (
	"errors"
	"time"

	"backend/logger"
	"backend/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type MealService struct {
	db *gorm.DB
}

func NewMealService(db *gorm.DB) *MealService {
	return &MealService{db: db}
}

type MealItemRequest struct {
	IngredientID string  `json:"ingredient_id"`
	Quantity     float64 `json:"quantity"`
}

type MealResult struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	TotalCalories float64 `json:"total_calories"`
}

type MealIngredientDetail struct {
	IngredientID    string  `json:"ingredient_id"`
	Name            string  `json:"name"`
	CaloriesPerUnit float64 `json:"calories_per_unit"`
	Unit            string  `json:"unit"`
	Quantity        float64 `json:"quantity"`
}

type MealDetail struct {
	ID            string                 `json:"id"`
	Name          string                 `json:"name"`
	TotalCalories float64                `json:"total_calories"`
	CreatedAt     time.Time              `json:"created_at"`
	Ingredients   []MealIngredientDetail `json:"ingredients"`
}

type MealListItem struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	TotalCalories float64   `json:"total_calories"`
	CreatedAt     time.Time `json:"created_at"`
}

// caloriesByID rejects duplicate ingredient ids, then resolves every id
// against the caller's own ingredients. A size mismatch means at least one
// id is unknown or belongs to someone else; the two cases are not
// distinguishable to the caller.
func caloriesByID(tx *gorm.DB, userID string, items []MealItemRequest) (map[string]float64, error) {
	ids := make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		if _, dup := seen[it.IngredientID]; dup {
			return nil, ErrDuplicateIngredient
		}
		seen[it.IngredientID] = struct{}{}
		ids = append(ids, it.IngredientID)
	}

	var ingredients []models.Ingredient
	if err := tx.
		Where("user_id = ? AND id IN ?", userID, ids).
		Find(&ingredients).Error; err != nil {
		return nil, err
	}
	if len(ingredients) != len(ids) {
		return nil, ErrInvalidIngredientReference
	}

	calories := make(map[string]float64, len(ingredients))
	for _, ing := range ingredients {
		calories[ing.ID] = ing.CaloriesPerUnit
	}
	return calories, nil
}

func mealTotal(calories map[string]float64, items []MealItemRequest) float64 {
	var total float64
	for _, it := range items {
		total += calories[it.IngredientID] * it.Quantity
	}
	return total
}

// Create inserts the meal and all of its associations in one transaction,
// so the meal is never visible without them.
func (s *MealService) Create(userID, name string, items []MealItemRequest) (*MealResult, error) {
	var result *MealResult
	err := s.db.Transaction(func(tx *gorm.DB) error {
		calories, err := caloriesByID(tx, userID, items)
		if err != nil {
			return err
		}

		meal := &models.Meal{
			UserID:        userID,
			Name:          name,
			TotalCalories: mealTotal(calories, items),
		}
		if err := tx.Create(meal).Error; err != nil {
			return err
		}

		links := make([]models.MealIngredient, 0, len(items))
		for _, it := range items {
			links = append(links, models.MealIngredient{
				MealID:       meal.ID,
				IngredientID: it.IngredientID,
				Quantity:     it.Quantity,
			})
		}
		if err := tx.Create(&links).Error; err != nil {
			return err
		}

		result = &MealResult{ID: meal.ID, Name: meal.Name, TotalCalories: meal.TotalCalories}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.L().Info("created meal",
		zap.String("user_id", userID), zap.String("meal_id", result.ID))
	return result, nil
}

// Update replaces the meal's name, total and association set atomically.
// The old associations are dropped and the requested set inserted wholesale
// rather than diffed, so the stored set always equals the request.
func (s *MealService) Update(userID, mealID, name string, items []MealItemRequest) (*MealResult, error) {
	var result *MealResult
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var meal models.Meal
		err := tx.
			Where("id = ? AND user_id = ?", mealID, userID).
			First(&meal).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMealNotFound
		}
		if err != nil {
			return err
		}

		calories, err := caloriesByID(tx, userID, items)
		if err != nil {
			return err
		}

		total := mealTotal(calories, items)
		if err := tx.Model(&meal).
			Updates(map[string]interface{}{"name": name, "total_calories": total}).Error; err != nil {
			return err
		}

		if err := tx.
			Where("meal_id = ?", meal.ID).
			Delete(&models.MealIngredient{}).Error; err != nil {
			return err
		}

		links := make([]models.MealIngredient, 0, len(items))
		for _, it := range items {
			links = append(links, models.MealIngredient{
				MealID:       meal.ID,
				IngredientID: it.IngredientID,
				Quantity:     it.Quantity,
			})
		}
		if err := tx.Create(&links).Error; err != nil {
			return err
		}

		result = &MealResult{ID: meal.ID, Name: name, TotalCalories: total}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.L().Info("updated meal",
		zap.String("user_id", userID), zap.String("meal_id", mealID))
	return result, nil
}

// Get returns the meal header plus the current ingredient list, each entry
// carrying the ingredient's present calories_per_unit and unit. An empty
// association set yields an empty list, not an error.
func (s *MealService) Get(userID, mealID string) (*MealDetail, error) {
	var meal models.Meal
	err := s.db.
		Where("id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMealNotFound
	}
	if err != nil {
		return nil, err
	}

	ingredients := make([]MealIngredientDetail, 0)
	err = s.db.
		Table("meal_ingredients").
		Select("meal_ingredients.ingredient_id, ingredients.name, ingredients.calories_per_unit, ingredients.unit, meal_ingredients.quantity").
		Joins("JOIN ingredients ON ingredients.id = meal_ingredients.ingredient_id").
		Where("meal_ingredients.meal_id = ?", meal.ID).
		Order("ingredients.name").
		Scan(&ingredients).Error
	if err != nil {
		return nil, err
	}

	return &MealDetail{
		ID:            meal.ID,
		Name:          meal.Name,
		TotalCalories: meal.TotalCalories,
		CreatedAt:     meal.CreatedAt,
		Ingredients:   ingredients,
	}, nil
}

// Delete removes the meal together with its associations and meal logs.
func (s *MealService) Delete(userID, mealID string) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var meal models.Meal
		err := tx.
			Where("id = ? AND user_id = ?", mealID, userID).
			First(&meal).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMealNotFound
		}
		if err != nil {
			return err
		}

		if err := tx.
			Where("meal_id = ?", meal.ID).
			Delete(&models.MealIngredient{}).Error; err != nil {
			return err
		}
		if err := tx.
			Where("meal_id = ?", meal.ID).
			Delete(&models.MealLog{}).Error; err != nil {
			return err
		}
		return tx.Delete(&meal).Error
	})
	if err != nil {
		return err
	}

	logger.L().Info("deleted meal",
		zap.String("user_id", userID), zap.String("meal_id", mealID))
	return nil
}

func (s *MealService) List(userID string, limit, offset int) ([]MealListItem, error) {
	var meals []models.Meal
	err := s.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&meals).Error
	if err != nil {
		return nil, err
	}

	items := make([]MealListItem, 0, len(meals))
	for _, m := range meals {
		items = append(items, MealListItem{
			ID:            m.ID,
			Name:          m.Name,
			TotalCalories: m.TotalCalories,
			CreatedAt:     m.CreatedAt,
		})
	}
	return items, nil
}
