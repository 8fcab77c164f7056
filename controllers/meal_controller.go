package controllers

import (
	"net/http"

	"backend/config"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type mealRequest struct {
	Name        string                     `json:"name"`
	Ingredients []services.MealItemRequest `json:"ingredients"`
}

func (r *mealRequest) validate() error {
	if err := utils.ValidateStringLength(r.Name, utils.MaxNameLength, "name"); err != nil {
		return err
	}
	if len(r.Ingredients) == 0 {
		return errAtLeastOneIngredient
	}
	for _, item := range r.Ingredients {
		if !utils.IsValidUUID(item.IngredientID) {
			return errIngredientIDRequired
		}
		if err := utils.ValidateQuantity(item.Quantity, "ingredient quantity"); err != nil {
			return err
		}
	}
	return nil
}

func CreateMeal(c *gin.Context) {
	var body mealRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}
	if err := body.validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, ok := currentUser(c)
	if !ok {
		return
	}

	meal, err := services.NewMealService(config.DB).Create(user.ID, body.Name, body.Ingredients)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, meal)
}

func ListMeals(c *gin.Context) {
	limit, offset, ok := pagination(c)
	if !ok {
		return
	}

	user, ok := currentUser(c)
	if !ok {
		return
	}

	meals, err := services.NewMealService(config.DB).List(user.ID, limit, offset)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"meals": meals})
}

func GetMeal(c *gin.Context) {
	mealID := c.Param("id")
	if !utils.IsValidUUID(mealID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	user, ok := currentUser(c)
	if !ok {
		return
	}

	meal, err := services.NewMealService(config.DB).Get(user.ID, mealID)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, meal)
}

func UpdateMeal(c *gin.Context) {
	mealID := c.Param("id")
	if !utils.IsValidUUID(mealID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	var body mealRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}
	if err := body.validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, ok := currentUser(c)
	if !ok {
		return
	}

	meal, err := services.NewMealService(config.DB).Update(user.ID, mealID, body.Name, body.Ingredients)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, meal)
}

func DeleteMeal(c *gin.Context) {
	mealID := c.Param("id")
	if !utils.IsValidUUID(mealID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	user, ok := currentUser(c)
	if !ok {
		return
	}

	if err := services.NewMealService(config.DB).Delete(user.ID, mealID); err != nil {
		abortServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
