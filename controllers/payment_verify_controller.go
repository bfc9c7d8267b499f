package controllers

import (
	"github.com/Rahat-404/MadrasaServer/models"
	"github.com/Rahat-404/MadrasaServer/utils"
	"github.com/gin-gonic/gin"
)

type verifyPaymentRequest struct {
	TransactionID string `json:"transaction_id" binding:"required"`
	GatewayTxnID  string `json:"gateway_txn_id" binding:"required"`
	Notes         string `json:"notes"`
}

// VerifyMobilePayment lets an authorized staff member confirm a
// manual-instruction payment after checking the wallet statement by hand.
//
// POST /v1/payments/verify
func VerifyMobilePayment(c *gin.Context) {
	utils.LogInfo("VerifyMobilePayment called")

	userVal, exists := c.Get("user")
	if !exists {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, "User not found")
		return
	}
	user := userVal.(models.User)

	var req verifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid verify request from user %d: %v", user.ID, err)
		utils.BadRequest(c, "transaction_id and gateway_txn_id are required", err.Error())
		return
	}

	txn, settled, appErr := settlePaymentTransaction(
		req.TransactionID, models.TxnStatusCompleted, req.GatewayTxnID, user.Email, req.Notes)
	if appErr != nil {
		utils.Error(c, appErr.Code, appErr.Message, nil)
		return
	}
	if !settled {
		utils.LogError("User %d attempted to verify non-pending transaction %s (%s)",
			user.ID, req.TransactionID, txn.Status)
		utils.BadRequest(c, "Transaction is not pending", gin.H{"status": txn.Status})
		return
	}

	utils.LogInfo("Transaction %s verified manually by user %d", txn.TransactionID, user.ID)
	utils.Success(c, "Payment verified successfully", gin.H{
		"transaction_id": txn.TransactionID,
		"status":         txn.Status,
		"gateway_txn_id": txn.GatewayTransactionID,
		"verified_by":    txn.VerifiedBy,
	})
}
