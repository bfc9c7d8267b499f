package controllers

import (
	"fmt"
	"net/url"
	"os"

	"github.com/Rahat-404/MadrasaServer/config"
	"github.com/Rahat-404/MadrasaServer/gateways"
	"github.com/Rahat-404/MadrasaServer/models"
	"github.com/Rahat-404/MadrasaServer/utils"
	"github.com/gin-gonic/gin"
)

type initiatePaymentRequest struct {
	Gateway       string  `json:"gateway"`
	Amount        float64 `json:"amount"`
	ReferenceID   uint    `json:"reference_id"`
	ReferenceType string  `json:"reference_type"`
	PayerName     string  `json:"payer_name"`
	PayerPhone    string  `json:"payer_phone"`
	PayerEmail    string  `json:"payer_email"`
	ReturnURL     string  `json:"return_url"`
}

// POST /v1/payments/initiate
func InitiatePayment(c *gin.Context) {
	utils.LogInfo("InitiatePayment called")

	var req initiatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid initiate request body: %v", err)
		utils.BadRequest(c, utils.MsgRequiredFields, err.Error())
		return
	}

	var missing []string
	if req.Gateway == "" {
		missing = append(missing, "gateway")
	}
	if req.Amount <= 0 {
		missing = append(missing, "amount")
	}
	if req.ReferenceID == 0 {
		missing = append(missing, "reference_id")
	}
	if req.ReferenceType != models.PaymentTypeDonation && req.ReferenceType != models.PaymentTypeFee {
		missing = append(missing, "reference_type")
	}
	if req.PayerName == "" {
		missing = append(missing, "payer_name")
	}
	if req.PayerPhone == "" {
		missing = append(missing, "payer_phone")
	}
	if req.ReturnURL == "" {
		missing = append(missing, "return_url")
	}
	if len(missing) > 0 {
		utils.LogError("Initiate request missing fields: %v", missing)
		utils.BadRequest(c, utils.MsgRequiredFields, gin.H{"missing_fields": missing})
		return
	}

	if !utils.ValidateGatewayName(req.Gateway) {
		utils.LogError("Unknown gateway requested: %s", req.Gateway)
		utils.BadRequest(c, utils.MsgInvalidGateway, nil)
		return
	}

	db := config.DB
	var gatewayCfg models.PaymentGateway
	if err := db.Where("name = ? AND enabled = ?", req.Gateway, true).First(&gatewayCfg).Error; err != nil {
		utils.LogError("Gateway %s not found or disabled: %v", req.Gateway, err)
		utils.BadRequest(c, utils.MsgGatewayDisabled, nil)
		return
	}

	transactionID := utils.GenerateTransactionID()
	txn := models.PaymentTransaction{
		TransactionID: transactionID,
		Amount:        req.Amount,
		Gateway:       req.Gateway,
		PaymentType:   req.ReferenceType,
		ReferenceID:   req.ReferenceID,
		PayerName:     req.PayerName,
		PayerPhone:    utils.NormalizePhone(req.PayerPhone),
		PayerEmail:    req.PayerEmail,
		Status:        models.TxnStatusPending,
		ReturnURL:     req.ReturnURL,
	}
	if err := db.Create(&txn).Error; err != nil {
		utils.LogError("Failed to create transaction for %s: %v", req.Gateway, err)
		utils.InternalServerError(c, "Failed to create transaction", err.Error())
		return
	}
	utils.LogInfo("Created pending transaction %s for %s %d via %s",
		transactionID, req.ReferenceType, req.ReferenceID, req.Gateway)

	gw, ok := gateways.Get(req.Gateway)
	if !ok {
		// registry and whitelist disagree; treat as disabled
		utils.LogError("Gateway %s passed validation but is not registered", req.Gateway)
		utils.BadRequest(c, utils.MsgGatewayDisabled, nil)
		return
	}

	result, err := gw.Initiate(&gatewayCfg, gateways.InitiateRequest{
		TransactionID: transactionID,
		Amount:        req.Amount,
		PayerName:     req.PayerName,
		PayerPhone:    txn.PayerPhone,
		PayerEmail:    req.PayerEmail,
		ReturnURL:     req.ReturnURL,
		CallbackURL:   callbackURL(req.Gateway, transactionID),
	})
	if err != nil {
		utils.LogError("Gateway %s initiation failed for %s: %v", req.Gateway, transactionID, err)
		if dbErr := db.Model(&models.PaymentTransaction{}).
			Where("transaction_id = ? AND status = ?", transactionID, models.TxnStatusPending).
			Updates(map[string]interface{}{
				"status": models.TxnStatusFailed,
				"notes":  err.Error(),
			}).Error; dbErr != nil {
			utils.LogError("Failed to mark transaction %s failed: %v", transactionID, dbErr)
		}
		utils.BadGateway(c, "Payment gateway is unavailable, please try again", err.Error())
		return
	}

	if result.GatewayPaymentID != "" {
		if err := db.Model(&models.PaymentTransaction{}).
			Where("transaction_id = ?", transactionID).
			Update("gateway_payment_id", result.GatewayPaymentID).Error; err != nil {
			utils.LogError("Failed to store gateway payment id for %s: %v", transactionID, err)
			utils.InternalServerError(c, "Failed to update transaction", err.Error())
			return
		}
	}

	utils.LogInfo("Payment initiated for %s via %s", transactionID, req.Gateway)
	utils.Success(c, "Payment initiated successfully", gin.H{
		"transaction_id":     transactionID,
		"gateway":            req.Gateway,
		"amount":             fmt.Sprintf("%.2f", req.Amount),
		"payment_url":        result.PaymentURL,
		"gateway_payment_id": result.GatewayPaymentID,
		"instructions":       result.Instructions,
		"api_error":          result.APIError,
	})
}

// callbackURL builds the provider-facing redirect target on this service
func callbackURL(gateway, transactionID string) string {
	base := os.Getenv("SERVER_BASE_URL")
	if base == "" {
		base = "http://localhost:8080"
	}
	return fmt.Sprintf("%s/v1/payments/callback?gateway=%s&txn=%s",
		base, url.QueryEscape(gateway), url.QueryEscape(transactionID))
}
