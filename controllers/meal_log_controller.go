package controllers

import (
	"net/http"
	"time"

	"backend/config"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

func CreateMealLog(c *gin.Context) {
	var body struct {
		MealID   string `json:"meal_id"`
		Date     string `json:"date"`
		Quantity *int   `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}
	if body.MealID == "" || body.Date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields: meal_id, date"})
		return
	}
	if !utils.IsValidUUID(body.MealID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}
	date, err := utils.ParseDate(body.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format"})
		return
	}
	quantity := 1
	if body.Quantity != nil {
		quantity = *body.Quantity
	}
	if err := utils.ValidateIntQuantity(quantity); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, ok := currentUser(c)
	if !ok {
		return
	}

	log, err := services.NewMealLogService(config.DB).Create(user.ID, body.MealID, date, quantity)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"id":       log.ID,
		"meal_id":  log.MealID,
		"date":     log.Date.Format(dateLayout),
		"quantity": log.Quantity,
	})
}

func ListMealLogs(c *gin.Context) {
	limit, offset, ok := pagination(c)
	if !ok {
		return
	}

	from, ok := optionalDate(c, "from")
	if !ok {
		return
	}
	to, ok := optionalDate(c, "to")
	if !ok {
		return
	}

	user, ok := currentUser(c)
	if !ok {
		return
	}

	rows, err := services.NewMealLogService(config.DB).List(user.ID, from, to, limit, offset)
	if err != nil {
		abortServiceError(c, err)
		return
	}

	out := make([]gin.H, 0, len(rows))
	for _, row := range rows {
		out = append(out, gin.H{
			"id":            row.ID,
			"meal_id":       row.MealID,
			"date":          row.Date.Format(dateLayout),
			"quantity":      row.Quantity,
			"meal_name":     row.MealName,
			"meal_calories": row.MealCalories,
		})
	}
	c.JSON(http.StatusOK, gin.H{"meal_logs": out})
}

func DeleteMealLog(c *gin.Context) {
	logID := c.Param("id")
	if !utils.IsValidUUID(logID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	user, ok := currentUser(c)
	if !ok {
		return
	}

	if err := services.NewMealLogService(config.DB).Delete(user.ID, logID); err != nil {
		abortServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// optionalDate parses a YYYY-MM-DD query param, nil when absent.
func optionalDate(c *gin.Context, name string) (*time.Time, bool) {
	value := c.Query(name)
	if value == "" {
		return nil, true
	}
	date, err := utils.ParseDate(value)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format"})
		return nil, false
	}
	return &date, true
}
