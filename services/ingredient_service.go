package services

import (
	"errors"

	"backend/logger"
	"backend/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type IngredientService struct {
	db *gorm.DB
}

func NewIngredientService(db *gorm.DB) *IngredientService {
	return &IngredientService{db: db}
}

func (s *IngredientService) Create(userID, name string, caloriesPerUnit float64, unit string) (*models.Ingredient, error) {
	ingredient := &models.Ingredient{
		UserID:          userID,
		Name:            name,
		CaloriesPerUnit: caloriesPerUnit,
		Unit:            unit,
	}
	if err := s.db.Create(ingredient).Error; err != nil {
		return nil, err
	}
	logger.L().Info("created ingredient",
		zap.String("user_id", userID), zap.String("ingredient_id", ingredient.ID))
	return ingredient, nil
}

func (s *IngredientService) List(userID string, limit, offset int) ([]models.Ingredient, error) {
	ingredients := make([]models.Ingredient, 0)
	err := s.db.
		Where("user_id = ?", userID).
		Order("name").
		Limit(limit).
		Offset(offset).
		Find(&ingredients).Error
	return ingredients, err
}

func (s *IngredientService) Update(userID, ingredientID, name string, caloriesPerUnit float64, unit string) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	err := s.db.
		Where("id = ? AND user_id = ?", ingredientID, userID).
		First(&ingredient).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrIngredientNotFound
	}
	if err != nil {
		return nil, err
	}

	ingredient.Name = name
	ingredient.CaloriesPerUnit = caloriesPerUnit
	ingredient.Unit = unit
	if err := s.db.Save(&ingredient).Error; err != nil {
		return nil, err
	}

	logger.L().Info("updated ingredient",
		zap.String("user_id", userID), zap.String("ingredient_id", ingredientID))
	return &ingredient, nil
}

// Delete removes an ingredient. While any meal still references it the call
// fails with ErrIngredientInUse unless force is set, in which case the
// associations are removed with it. Meals that lose an association keep
// their stored total_calories; totals are only recomputed when the meal
// itself is written.
func (s *IngredientService) Delete(userID, ingredientID string, force bool) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var ingredient models.Ingredient
		err := tx.
			Where("id = ? AND user_id = ?", ingredientID, userID).
			First(&ingredient).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrIngredientNotFound
		}
		if err != nil {
			return err
		}

		var refs int64
		if err := tx.Model(&models.MealIngredient{}).
			Where("ingredient_id = ?", ingredientID).
			Count(&refs).Error; err != nil {
			return err
		}
		if refs > 0 {
			if !force {
				return ErrIngredientInUse
			}
			if err := tx.
				Where("ingredient_id = ?", ingredientID).
				Delete(&models.MealIngredient{}).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&ingredient).Error
	})
	if err != nil {
		return err
	}

	logger.L().Info("deleted ingredient",
		zap.String("user_id", userID), zap.String("ingredient_id", ingredientID), zap.Bool("force", force))
	return nil
}
