package routes

import (
	"github.com/Rahat-404/MadrasaServer/controllers"
	"github.com/gin-gonic/gin"
)

// initPaymentRoutes wires the public payment, donation, and admission
// endpoints. These are called by the public site forms and the gateways
// themselves; no authentication applies.
func initPaymentRoutes(api *gin.RouterGroup) {
	payments := api.Group("/payments")
	{
		payments.POST("/initiate", controllers.InitiatePayment)
		payments.GET("/callback", controllers.PaymentCallback)
		payments.POST("/callback", controllers.PaymentCallback)
		payments.GET("/:transaction_id", controllers.GetPaymentStatus)
		payments.GET("/:transaction_id/receipt", controllers.DownloadPaymentReceipt)
	}

	api.POST("/donations", controllers.ProcessDonation)
	api.POST("/admissions", controllers.SubmitAdmission)
}
