package controllers

import (
	"github.com/Rahat-404/MadrasaServer/config"
	"github.com/Rahat-404/MadrasaServer/models"
	"github.com/Rahat-404/MadrasaServer/utils"
	"github.com/gin-gonic/gin"
)

// ListTransactions returns the payment ledger with filters, newest first
//
// GET /v1/admin/transactions
func ListTransactions(c *gin.Context) {
	utils.LogInfo("ListTransactions called")

	pagination := utils.NewPagination(c)
	query := config.DB.Model(&models.PaymentTransaction{})

	if gateway := c.Query("gateway"); gateway != "" {
		query = query.Where("gateway = ?", gateway)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if paymentType := c.Query("payment_type"); paymentType != "" {
		query = query.Where("payment_type = ?", paymentType)
	}
	if phone := c.Query("phone"); phone != "" {
		query = query.Where("payer_phone = ?", utils.NormalizePhone(phone))
	}
	if from := c.Query("from"); from != "" {
		query = query.Where("created_at >= ?", from)
	}
	if to := c.Query("to"); to != "" {
		query = query.Where("created_at <= ?", to)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count transactions: %v", err)
		utils.InternalServerError(c, "Failed to fetch transactions", err.Error())
		return
	}
	pagination.SetTotal(total)

	var transactions []models.PaymentTransaction
	if err := query.Order("created_at DESC").
		Offset(pagination.Offset).
		Limit(pagination.Limit).
		Find(&transactions).Error; err != nil {
		utils.LogError("Failed to fetch transactions: %v", err)
		utils.InternalServerError(c, "Failed to fetch transactions", err.Error())
		return
	}

	utils.LogInfo("Retrieved %d of %d transactions", len(transactions), total)
	utils.SendPaginatedResponse(c, transactions, pagination)
}
