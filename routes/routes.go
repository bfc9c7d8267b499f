package routes

import (
	"github.com/Rahat-404/MadrasaServer/controllers"
	"github.com/gin-gonic/gin"
)

// SetupRouter initializes and returns the Gin router with all routes
func SetupRouter() *gin.Engine {
	router := gin.Default()

	// API version group
	api := router.Group("/v1")
	{
		api.POST("/auth/login", controllers.StaffLogin)

		initPaymentRoutes(api)
		initAdminRoutes(api)
	}

	return router
}
