package routes

import (
	"github.com/Rahat-404/MadrasaServer/controllers"
	"github.com/Rahat-404/MadrasaServer/middleware"
	"github.com/Rahat-404/MadrasaServer/models"
	"github.com/gin-gonic/gin"
)

// initAdminRoutes wires the staff-only endpoints
func initAdminRoutes(api *gin.RouterGroup) {
	verify := api.Group("/payments")
	verify.Use(middleware.AuthMiddleware())
	verify.Use(middleware.RequireRoles(models.RoleSuperAdmin, models.RoleAdmin, models.RoleAccountant))
	{
		verify.POST("/verify", controllers.VerifyMobilePayment)
	}

	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware())
	{
		ledger := admin.Group("/transactions")
		ledger.Use(middleware.RequireRoles(models.RoleSuperAdmin, models.RoleAdmin, models.RoleAccountant))
		{
			ledger.GET("", controllers.ListTransactions)
			ledger.GET("/export", controllers.ExportTransactionsExcel)
		}

		gateways := admin.Group("/gateways")
		gateways.Use(middleware.RequireRoles(models.RoleSuperAdmin))
		{
			gateways.GET("", controllers.ListGateways)
			gateways.PUT("/:name", controllers.UpdateGateway)
		}
	}
}
