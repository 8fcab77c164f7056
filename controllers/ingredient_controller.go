package controllers

import (
	"net/http"
	"strconv"

	"backend/config"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type ingredientRequest struct {
	Name            string  `json:"name"`
	CaloriesPerUnit float64 `json:"calories_per_unit"`
	Unit            string  `json:"unit"`
}

func (r *ingredientRequest) validate() error {
	if err := utils.ValidateStringLength(r.Name, utils.MaxNameLength, "name"); err != nil {
		return err
	}
	if err := utils.ValidateStringLength(r.Unit, utils.MaxUnitLength, "unit"); err != nil {
		return err
	}
	return utils.ValidateCalories(r.CaloriesPerUnit)
}

func CreateIngredient(c *gin.Context) {
	var body ingredientRequest
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

	ingredient, err := services.NewIngredientService(config.DB).
		Create(user.ID, body.Name, body.CaloriesPerUnit, body.Unit)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"id":                ingredient.ID,
		"name":              ingredient.Name,
		"calories_per_unit": ingredient.CaloriesPerUnit,
		"unit":              ingredient.Unit,
	})
}

func ListIngredients(c *gin.Context) {
	limit, offset, ok := pagination(c)
	if !ok {
		return
	}

	user, ok := currentUser(c)
	if !ok {
		return
	}

	ingredients, err := services.NewIngredientService(config.DB).List(user.ID, limit, offset)
	if err != nil {
		abortServiceError(c, err)
		return
	}

	out := make([]gin.H, 0, len(ingredients))
	for _, ing := range ingredients {
		out = append(out, gin.H{
			"id":                ing.ID,
			"name":              ing.Name,
			"calories_per_unit": ing.CaloriesPerUnit,
			"unit":              ing.Unit,
		})
	}
	c.JSON(http.StatusOK, gin.H{"ingredients": out})
}

func UpdateIngredient(c *gin.Context) {
	ingredientID := c.Param("id")
	if !utils.IsValidUUID(ingredientID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	var body ingredientRequest
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

	ingredient, err := services.NewIngredientService(config.DB).
		Update(user.ID, ingredientID, body.Name, body.CaloriesPerUnit, body.Unit)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":                ingredient.ID,
		"name":              ingredient.Name,
		"calories_per_unit": ingredient.CaloriesPerUnit,
		"unit":              ingredient.Unit,
	})
}

func DeleteIngredient(c *gin.Context) {
	ingredientID := c.Param("id")
	if !utils.IsValidUUID(ingredientID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	force := false
	switch c.Query("force") {
	case "1", "true", "yes":
		force = true
	}

	user, ok := currentUser(c)
	if !ok {
		return
	}

	if err := services.NewIngredientService(config.DB).Delete(user.ID, ingredientID, force); err != nil {
		abortServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// pagination reads limit/offset query params, applying the default and cap.
func pagination(c *gin.Context) (int, int, bool) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(utils.DefaultPageLimit)))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pagination parameters"})
		return 0, 0, false
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pagination parameters"})
		return 0, 0, false
	}
	limit, offset, err = utils.ClampPagination(limit, offset)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pagination parameters"})
		return 0, 0, false
	}
	return limit, offset, true
}
