package controllers

import (
	"net/http"

	"backend/config"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

func GetDailySummary(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required query param: date"})
		return
	}
	date, err := utils.ParseDate(dateStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format"})
		return
	}

	user, ok := currentUser(c)
	if !ok {
		return
	}

	total, err := services.NewSummaryService(config.DB).DailyTotal(user.ID, date)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"date":           dateStr,
		"total_calories": total,
	})
}

func GetRangeSummary(c *gin.Context) {
	fromStr := c.Query("from")
	toStr := c.Query("to")
	if fromStr == "" || toStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required query params: from, to"})
		return
	}
	from, err := utils.ParseDate(fromStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format"})
		return
	}
	to, err := utils.ParseDate(toStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format"})
		return
	}

	user, ok := currentUser(c)
	if !ok {
		return
	}

	totals, err := services.NewSummaryService(config.DB).RangeTotals(user.ID, from, to)
	if err != nil {
		abortServiceError(c, err)
		return
	}

	days := make([]gin.H, 0, len(totals))
	for _, day := range totals {
		days = append(days, gin.H{
			"date":           day.Date.Format(dateLayout),
			"total_calories": day.TotalCalories,
		})
	}
	c.JSON(http.StatusOK, gin.H{
		"from": fromStr,
		"to":   toStr,
		"days": days,
	})
}
