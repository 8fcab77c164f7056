package services

import (
	"errors"
	"time"

	"backend/logger"
	"backend/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type MealLogService struct {
	db *gorm.DB
}

func NewMealLogService(db *gorm.DB) *MealLogService {
	return &MealLogService{db: db}
}

type MealLogResult struct {
	ID       string    `json:"id"`
	MealID   string    `json:"meal_id"`
	Date     time.Time `json:"-"`
	Quantity int       `json:"quantity"`
}

// MealLogRow is a log joined with its meal for listing.
type MealLogRow struct {
	ID           string    `json:"id"`
	MealID       string    `json:"meal_id"`
	Date         time.Time `json:"-"`
	Quantity     int       `json:"quantity"`
	MealName     string    `json:"meal_name"`
	MealCalories float64   `json:"meal_calories"`
}

// Create records a consumption of one of the caller's meals on a date. A
// meal id that is absent or owned by another user fails with
// ErrMealNotFound either way.
func (s *MealLogService) Create(userID, mealID string, date time.Time, quantity int) (*MealLogResult, error) {
	var result *MealLogResult
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

		log := &models.MealLog{
			UserID:   userID,
			MealID:   mealID,
			Date:     date,
			Quantity: quantity,
		}
		if err := tx.Create(log).Error; err != nil {
			return err
		}

		result = &MealLogResult{ID: log.ID, MealID: mealID, Date: date, Quantity: quantity}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.L().Info("created meal log",
		zap.String("user_id", userID), zap.String("meal_log_id", result.ID))
	return result, nil
}

// List returns the caller's logs joined with their meals, newest date
// first. from and to are optional inclusive bounds.
func (s *MealLogService) List(userID string, from, to *time.Time, limit, offset int) ([]MealLogRow, error) {
	rows := make([]MealLogRow, 0)
	q := s.db.
		Table("meal_logs").
		Select("meal_logs.id, meal_logs.meal_id, meal_logs.date, meal_logs.quantity, meals.name AS meal_name, meals.total_calories AS meal_calories").
		Joins("JOIN meals ON meals.id = meal_logs.meal_id").
		Where("meal_logs.user_id = ?", userID)
	if from != nil {
		q = q.Where("meal_logs.date >= ?", *from)
	}
	if to != nil {
		q = q.Where("meal_logs.date <= ?", *to)
	}
	err := q.
		Order("meal_logs.date DESC, meal_logs.id").
		Limit(limit).
		Offset(offset).
		Scan(&rows).Error
	return rows, err
}

func (s *MealLogService) Delete(userID, logID string) error {
	res := s.db.
		Where("id = ? AND user_id = ?", logID, userID).
		Delete(&models.MealLog{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrMealLogNotFound
	}

	logger.L().Info("deleted meal log",
		zap.String("user_id", userID), zap.String("meal_log_id", logID))
	return nil
}
