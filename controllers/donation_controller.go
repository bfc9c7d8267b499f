package controllers

import (
	"github.com/Rahat-404/MadrasaServer/config"
	"github.com/Rahat-404/MadrasaServer/models"
	"github.com/Rahat-404/MadrasaServer/utils"
	"github.com/gin-gonic/gin"
)

type processDonationRequest struct {
	DonorName  string  `json:"donor_name"`
	DonorPhone string  `json:"donor_phone"`
	DonorEmail string  `json:"donor_email"`
	Amount     float64 `json:"amount"`
	Category   string  `json:"category"`
	Gateway    string  `json:"gateway"`
	Message    string  `json:"message"`
}

// ProcessDonation records a donation pledge from the public site. The row
// starts pending; it is settled by the payment transaction initiated against
// it.
//
// POST /v1/donations
func ProcessDonation(c *gin.Context) {
	utils.LogInfo("ProcessDonation called")

	var req processDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid donation body: %v", err)
		utils.BadRequest(c, utils.MsgRequiredFields, err.Error())
		return
	}

	if !utils.ValidatePersonName(req.DonorName) {
		utils.LogError("Invalid donor name: %q", req.DonorName)
		utils.BadRequest(c, utils.MsgInvalidName, nil)
		return
	}
	if !utils.ValidateBDPhone(req.DonorPhone) {
		utils.LogError("Invalid donor phone: %q", req.DonorPhone)
		utils.BadRequest(c, utils.MsgInvalidPhone, nil)
		return
	}
	if req.DonorEmail != "" && !utils.ValidateEmail(req.DonorEmail) {
		utils.LogError("Invalid donor email: %q", req.DonorEmail)
		utils.BadRequest(c, utils.MsgRequiredFields, gin.H{"field": "donor_email"})
		return
	}
	if !utils.ValidateDonationAmount(req.Amount) {
		utils.LogError("Donation amount out of bounds: %.2f", req.Amount)
		utils.BadRequest(c, utils.MsgInvalidAmount, nil)
		return
	}
	if !utils.ValidateDonationCategory(req.Category) {
		utils.LogError("Invalid donation category: %q", req.Category)
		utils.BadRequest(c, utils.MsgInvalidCategory, nil)
		return
	}
	if !utils.ValidateGatewayName(req.Gateway) {
		utils.LogError("Invalid donation gateway: %q", req.Gateway)
		utils.BadRequest(c, utils.MsgInvalidGateway, nil)
		return
	}

	donation := models.Donation{
		DonorName:     req.DonorName,
		DonorPhone:    utils.NormalizePhone(req.DonorPhone),
		DonorEmail:    req.DonorEmail,
		Amount:        req.Amount,
		Category:      req.Category,
		Gateway:       req.Gateway,
		Message:       req.Message,
		PaymentStatus: models.TxnStatusPending,
	}
	if err := config.DB.Create(&donation).Error; err != nil {
		utils.LogError("Failed to create donation: %v", err)
		utils.InternalServerError(c, "Failed to record donation", err.Error())
		return
	}

	utils.LogInfo("Donation %d recorded: %.2f (%s) from %s", donation.ID, donation.Amount, donation.Category, donation.DonorPhone)
	utils.Created(c, "দানের তথ্য গ্রহণ করা হয়েছে", gin.H{
		"donation_id":    donation.ID,
		"amount":         donation.Amount,
		"category":       donation.Category,
		"payment_status": donation.PaymentStatus,
	})
}
