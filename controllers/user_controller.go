package controllers

import (
	"net/http"

	"backend/config"
	"backend/services"

	"github.com/gin-gonic/gin"
)

// BootstrapUser creates the caller's user row if it does not exist yet.
// Idempotent; the client calls it after every sign-in.
func BootstrapUser(c *gin.Context) {
	externalID := c.GetString("externalID")
	email := c.GetString("email")

	if err := services.NewUserService(config.DB).Bootstrap(externalID, email); err != nil {
		abortInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User bootstrap completed"})
}

func GetCurrentUser(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":         user.ID,
		"email":      user.Email,
		"created_at": user.CreatedAt,
	})
}
