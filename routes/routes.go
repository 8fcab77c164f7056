package routes

import (
	"backend/controllers"
	"backend/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	api := r.Group("/")
	api.Use(middlewares.AuthMiddleware())
	{
		api.POST("/users/bootstrap", controllers.BootstrapUser)
		api.GET("/users/me", controllers.GetCurrentUser)

		api.POST("/ingredients", controllers.CreateIngredient)
		api.GET("/ingredients", controllers.ListIngredients)
		api.PUT("/ingredients/:id", controllers.UpdateIngredient)
		api.DELETE("/ingredients/:id", controllers.DeleteIngredient)

		api.POST("/meals", controllers.CreateMeal)
		api.GET("/meals", controllers.ListMeals)
		api.GET("/meals/:id", controllers.GetMeal)
		api.PUT("/meals/:id", controllers.UpdateMeal)
		api.DELETE("/meals/:id", controllers.DeleteMeal)

		api.POST("/meal-logs", controllers.CreateMealLog)
		api.GET("/meal-logs", controllers.ListMealLogs)
		api.DELETE("/meal-logs/:id", controllers.DeleteMealLog)

		api.GET("/summary/daily", controllers.GetDailySummary)
		api.GET("/summary/range", controllers.GetRangeSummary)
	}

	return r
}
