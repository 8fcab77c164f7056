package services

import (
	"time"

	"backend/models"

	"gorm.io/gorm"
)

type SummaryService struct {
	db *gorm.DB
}

func NewSummaryService(db *gorm.DB) *SummaryService {
	return &SummaryService{db: db}
}

// DayTotal is one date's consumed calories across all of its meal logs.
type DayTotal struct {
	Date          time.Time `json:"-"`
	TotalCalories float64   `json:"total_calories"`
}

// DailyTotal sums meal.total_calories * log.quantity over the caller's
// logs on exactly that date. No logs is a total of zero, not an error.
func (s *SummaryService) DailyTotal(userID string, date time.Time) (float64, error) {
	var total float64
	err := s.db.
		Model(&models.MealLog{}).
		Select("COALESCE(SUM(meals.total_calories * meal_logs.quantity), 0)").
		Joins("JOIN meals ON meals.id = meal_logs.meal_id").
		Where("meal_logs.user_id = ? AND meal_logs.date = ?", userID, date).
		Scan(&total).Error
	return total, err
}

// RangeTotals groups the caller's logs by date within [from, to] inclusive
// and returns per-date totals ascending by date. Dates without logs are
// omitted; an inverted range yields no rows.
func (s *SummaryService) RangeTotals(userID string, from, to time.Time) ([]DayTotal, error) {
	rows := make([]DayTotal, 0)
	err := s.db.
		Model(&models.MealLog{}).
		Select("meal_logs.date AS date, SUM(meals.total_calories * meal_logs.quantity) AS total_calories").
		Joins("JOIN meals ON meals.id = meal_logs.meal_id").
		Where("meal_logs.user_id = ? AND meal_logs.date BETWEEN ? AND ?", userID, from, to).
		Group("meal_logs.date").
		Order("meal_logs.date").
		Scan(&rows).Error
	return rows, err
}
