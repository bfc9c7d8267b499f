package controllers

import (
	"fmt"

	"github.com/Rahat-404/MadrasaServer/config"
	"github.com/Rahat-404/MadrasaServer/models"
	"github.com/Rahat-404/MadrasaServer/utils"
	"github.com/gin-gonic/gin"
)

// GetPaymentStatus lets the payment page poll a transaction. Payer details
// are masked since the endpoint is public.
//
// GET /v1/payments/:transaction_id
func GetPaymentStatus(c *gin.Context) {
	transactionID := c.Param("transaction_id")
	utils.LogInfo("GetPaymentStatus called for %s", transactionID)

	var txn models.PaymentTransaction
	if err := config.DB.Where("transaction_id = ?", transactionID).First(&txn).Error; err != nil {
		utils.LogError("Transaction not found: %s: %v", transactionID, err)
		utils.NotFound(c, "Transaction not found")
		return
	}

	utils.Success(c, "Transaction retrieved", gin.H{
		"transaction_id": txn.TransactionID,
		"status":         txn.Status,
		"gateway":        txn.Gateway,
		"payment_type":   txn.PaymentType,
		"amount":         fmt.Sprintf("%.2f", txn.Amount),
		"payer_phone":    maskPhone(txn.PayerPhone),
		"payment_date":   txn.PaymentDate,
	})
}

// maskPhone keeps the operator prefix and the last two digits
func maskPhone(phone string) string {
	if len(phone) < 6 {
		return phone
	}
	return phone[:3] + "******" + phone[len(phone)-2:]
}
