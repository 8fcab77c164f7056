package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailyTotalZeroWithoutLogs(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "sub-a")

	total, err := NewSummaryService(db).DailyTotal(user.ID, date(2024, time.March, 1))
	require.NoError(t, err)
	assert.Equal(t, 0.0, total)
}

func TestDailyTotalMultipliesLogQuantity(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "sub-a")
	rice := seedIngredient(t, db, user.ID, "rice", 100, "cup")
	beans := seedIngredient(t, db, user.ID, "beans", 50, "cup")

	mealSvc := NewMealService(db)
	bowl, err := mealSvc.Create(user.ID, "rice bowl", []MealItemRequest{
		{IngredientID: rice.ID, Quantity: 2},
	})
	require.NoError(t, err)
	side, err := mealSvc.Create(user.ID, "beans", []MealItemRequest{
		{IngredientID: beans.ID, Quantity: 1},
	})
	require.NoError(t, err)

	day := date(2024, time.March, 1)
	logSvc := NewMealLogService(db)
	_, err = logSvc.Create(user.ID, bowl.ID, day, 2) // 200 * 2
	require.NoError(t, err)
	_, err = logSvc.Create(user.ID, side.ID, day, 1) // 50
	require.NoError(t, err)

	// A log on another day must not count.
	_, err = logSvc.Create(user.ID, side.ID, date(2024, time.March, 2), 3)
	require.NoError(t, err)

	total, err := NewSummaryService(db).DailyTotal(user.ID, day)
	require.NoError(t, err)
	assert.Equal(t, 450.0, total)
}

func TestRangeTotalsGroupsSameDateLogs(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "sub-a")
	rice := seedIngredient(t, db, user.ID, "rice", 200, "cup")

	meal, err := NewMealService(db).Create(user.ID, "rice bowl", []MealItemRequest{
		{IngredientID: rice.ID, Quantity: 1},
	})
	require.NoError(t, err)

	day := date(2024, time.March, 1)
	logSvc := NewMealLogService(db)
	for i := 0; i < 3; i++ {
		_, err = logSvc.Create(user.ID, meal.ID, day, 1)
		require.NoError(t, err)
	}

	totals, err := NewSummaryService(db).RangeTotals(user.ID, day, day)
	require.NoError(t, err)
	require.Len(t, totals, 1)
	assert.True(t, totals[0].Date.Equal(day))
	assert.Equal(t, 600.0, totals[0].TotalCalories)
}

func TestRangeTotalsAscendingAndGapsOmitted(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "sub-a")
	rice := seedIngredient(t, db, user.ID, "rice", 100, "cup")

	meal, err := NewMealService(db).Create(user.ID, "rice bowl", []MealItemRequest{
		{IngredientID: rice.ID, Quantity: 1},
	})
	require.NoError(t, err)

	logSvc := NewMealLogService(db)
	_, err = logSvc.Create(user.ID, meal.ID, date(2024, time.March, 5), 1)
	require.NoError(t, err)
	_, err = logSvc.Create(user.ID, meal.ID, date(2024, time.March, 1), 2)
	require.NoError(t, err)

	totals, err := NewSummaryService(db).RangeTotals(user.ID,
		date(2024, time.March, 1), date(2024, time.March, 7))
	require.NoError(t, err)
	require.Len(t, totals, 2)
	assert.True(t, totals[0].Date.Equal(date(2024, time.March, 1)))
	assert.Equal(t, 200.0, totals[0].TotalCalories)
	assert.True(t, totals[1].Date.Equal(date(2024, time.March, 5)))
	assert.Equal(t, 100.0, totals[1].TotalCalories)
}

func TestRangeTotalsInvertedRangeIsEmpty(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "sub-a")
	rice := seedIngredient(t, db, user.ID, "rice", 100, "cup")

	meal, err := NewMealService(db).Create(user.ID, "rice bowl", []MealItemRequest{
		{IngredientID: rice.ID, Quantity: 1},
	})
	require.NoError(t, err)
	_, err = NewMealLogService(db).Create(user.ID, meal.ID, date(2024, time.March, 3), 1)
	require.NoError(t, err)

	totals, err := NewSummaryService(db).RangeTotals(user.ID,
		date(2024, time.March, 7), date(2024, time.March, 1))
	require.NoError(t, err)
	assert.Empty(t, totals)
}

func TestSummariesScopedToOwner(t *testing.T) {
	db := newTestDB(t)
	alice := seedUser(t, db, "sub-a")
	bob := seedUser(t, db, "sub-b")
	rice := seedIngredient(t, db, alice.ID, "rice", 100, "cup")

	meal, err := NewMealService(db).Create(alice.ID, "rice bowl", []MealItemRequest{
		{IngredientID: rice.ID, Quantity: 1},
	})
	require.NoError(t, err)

	day := date(2024, time.March, 1)
	_, err = NewMealLogService(db).Create(alice.ID, meal.ID, day, 4)
	require.NoError(t, err)

	svc := NewSummaryService(db)
	total, err := svc.DailyTotal(bob.ID, day)
	require.NoError(t, err)
	assert.Equal(t, 0.0, total)

	totals, err := svc.RangeTotals(bob.ID, day, day)
	require.NoError(t, err)
	assert.Empty(t, totals)
}
