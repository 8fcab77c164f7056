package services

import (
	"testing"
	"time"

	"backend/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens an in-memory sqlite database pinned to a single
// connection so every query sees the same schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Ingredient{},
		&models.Meal{},
		&models.MealIngredient{},
		&models.MealLog{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, externalID string) *models.User {
	t.Helper()
	user := &models.User{ExternalID: externalID, Email: externalID + "@example.com"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedIngredient(t *testing.T, db *gorm.DB, userID, name string, caloriesPerUnit float64, unit string) *models.Ingredient {
	t.Helper()
	ingredient := &models.Ingredient{
		UserID:          userID,
		Name:            name,
		CaloriesPerUnit: caloriesPerUnit,
		Unit:            unit,
	}
	require.NoError(t, db.Create(ingredient).Error)
	return ingredient
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func countRows(t *testing.T, db *gorm.DB, model interface{}, query string, args ...interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Where(query, args...).Count(&n).Error)
	return n
}
