package services

import (
	"testing"
	"time"

	"backend/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMealLog(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "sub-a")
	rice := seedIngredient(t, db, user.ID, "rice", 100, "cup")
	meal, err := NewMealService(db).Create(user.ID, "rice bowl", []MealItemRequest{
		{IngredientID: rice.ID, Quantity: 1},
	})
	require.NoError(t, err)

	day := date(2024, time.March, 1)
	log, err := NewMealLogService(db).Create(user.ID, meal.ID, day, 2)
	require.NoError(t, err)
	assert.Equal(t, meal.ID, log.MealID)
	assert.Equal(t, 2, log.Quantity)
	assert.True(t, log.Date.Equal(day))
}

func TestCreateMealLogRequiresOwnedMeal(t *testing.T) {
	db := newTestDB(t)
	alice := seedUser(t, db, "sub-a")
	bob := seedUser(t, db, "sub-b")
	rice := seedIngredient(t, db, alice.ID, "rice", 100, "cup")
	meal, err := NewMealService(db).Create(alice.ID, "rice bowl", []MealItemRequest{
		{IngredientID: rice.ID, Quantity: 1},
	})
	require.NoError(t, err)

	svc := NewMealLogService(db)

	_, err = svc.Create(alice.ID, uuid.NewString(), date(2024, time.March, 1), 1)
	assert.ErrorIs(t, err, ErrMealNotFound)

	// Logging someone else's meal reads the same as a missing meal.
	_, err = svc.Create(bob.ID, meal.ID, date(2024, time.March, 1), 1)
	assert.ErrorIs(t, err, ErrMealNotFound)
	assert.EqualValues(t, 0, countRows(t, db, &models.MealLog{}, "user_id = ?", bob.ID))
}

func TestListMealLogsJoinsMeal(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "sub-a")
	rice := seedIngredient(t, db, user.ID, "rice", 100, "cup")
	meal, err := NewMealService(db).Create(user.ID, "rice bowl", []MealItemRequest{
		{IngredientID: rice.ID, Quantity: 2},
	})
	require.NoError(t, err)

	svc := NewMealLogService(db)
	_, err = svc.Create(user.ID, meal.ID, date(2024, time.March, 1), 1)
	require.NoError(t, err)
	_, err = svc.Create(user.ID, meal.ID, date(2024, time.March, 3), 2)
	require.NoError(t, err)

	rows, err := svc.List(user.ID, nil, nil, 50, 0)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Newest date first, joined meal fields present.
	assert.True(t, rows[0].Date.Equal(date(2024, time.March, 3)))
	assert.Equal(t, "rice bowl", rows[0].MealName)
	assert.Equal(t, 200.0, rows[0].MealCalories)
	assert.Equal(t, 2, rows[0].Quantity)
}

func TestListMealLogsFiltersByDateRange(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "sub-a")
	rice := seedIngredient(t, db, user.ID, "rice", 100, "cup")
	meal, err := NewMealService(db).Create(user.ID, "rice bowl", []MealItemRequest{
		{IngredientID: rice.ID, Quantity: 1},
	})
	require.NoError(t, err)

	svc := NewMealLogService(db)
	for _, d := range []time.Time{
		date(2024, time.March, 1),
		date(2024, time.March, 5),
		date(2024, time.March, 9),
	} {
		_, err = svc.Create(user.ID, meal.ID, d, 1)
		require.NoError(t, err)
	}

	from := date(2024, time.March, 2)
	to := date(2024, time.March, 8)
	rows, err := svc.List(user.ID, &from, &to, 50, 0)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].Date.Equal(date(2024, time.March, 5)))
}

func TestListMealLogsScopedToOwner(t *testing.T) {
	db := newTestDB(t)
	alice := seedUser(t, db, "sub-a")
	bob := seedUser(t, db, "sub-b")
	rice := seedIngredient(t, db, alice.ID, "rice", 100, "cup")
	meal, err := NewMealService(db).Create(alice.ID, "rice bowl", []MealItemRequest{
		{IngredientID: rice.ID, Quantity: 1},
	})
	require.NoError(t, err)

	svc := NewMealLogService(db)
	_, err = svc.Create(alice.ID, meal.ID, date(2024, time.March, 1), 1)
	require.NoError(t, err)

	rows, err := svc.List(bob.ID, nil, nil, 50, 0)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestDeleteMealLog(t *testing.T) {
	db := newTestDB(t)
	alice := seedUser(t, db, "sub-a")
	bob := seedUser(t, db, "sub-b")
	rice := seedIngredient(t, db, alice.ID, "rice", 100, "cup")
	meal, err := NewMealService(db).Create(alice.ID, "rice bowl", []MealItemRequest{
		{IngredientID: rice.ID, Quantity: 1},
	})
	require.NoError(t, err)

	svc := NewMealLogService(db)
	log, err := svc.Create(alice.ID, meal.ID, date(2024, time.March, 1), 1)
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(alice.ID, uuid.NewString()), ErrMealLogNotFound)
	assert.ErrorIs(t, svc.Delete(bob.ID, log.ID), ErrMealLogNotFound)

	require.NoError(t, svc.Delete(alice.ID, log.ID))
	assert.EqualValues(t, 0, countRows(t, db, &models.MealLog{}, "id = ?", log.ID))
}
