package controllers

import (
	"errors"
	"net/http"

	"backend/config"
	"backend/logger"
	"backend/models"
	"backend/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errAtLeastOneIngredient = errors.New("at least one ingredient is required")
	errIngredientIDRequired = errors.New("each ingredient requires a valid ingredient_id")
)

// currentUser resolves the authenticated principal to its user row and
// writes the 404 itself when the principal was never bootstrapped.
func currentUser(c *gin.Context) (*models.User, bool) {
	externalID := c.GetString("externalID")
	user, err := services.NewUserService(config.DB).GetByExternalID(externalID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		} else {
			abortInternal(c, err)
		}
		return nil, false
	}
	return user, true
}

// abortServiceError maps a service error onto its HTTP status. Not-found
// errors cover cross-tenant ids too; the response never reveals whether the
// resource exists under another owner.
func abortServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrMealNotFound),
		errors.Is(err, services.ErrMealLogNotFound),
		errors.Is(err, services.ErrIngredientNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrDuplicateIngredient),
		errors.Is(err, services.ErrInvalidIngredientReference):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrIngredientInUse):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		abortInternal(c, err)
	}
}

func abortInternal(c *gin.Context, err error) {
	logger.L().Error("request failed",
		zap.String("path", c.FullPath()), zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
