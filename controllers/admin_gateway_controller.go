package controllers

import (
	"github.com/Rahat-404/MadrasaServer/config"
	"github.com/Rahat-404/MadrasaServer/models"
	"github.com/Rahat-404/MadrasaServer/utils"
	"github.com/gin-gonic/gin"
)

// ListGateways returns the gateway configurations with credentials masked
//
// GET /v1/admin/gateways
func ListGateways(c *gin.Context) {
	utils.LogInfo("ListGateways called")

	var configs []models.PaymentGateway
	if err := config.DB.Order("name").Find(&configs).Error; err != nil {
		utils.LogError("Failed to fetch gateways: %v", err)
		utils.InternalServerError(c, "Failed to fetch gateways", err.Error())
		return
	}

	out := make([]gin.H, 0, len(configs))
	for _, gw := range configs {
		out = append(out, gin.H{
			"name":              gw.Name,
			"display_name":      gw.DisplayName,
			"enabled":           gw.Enabled,
			"sandbox":           gw.Sandbox,
			"merchant_id":       gw.MerchantID,
			"api_key_set":       gw.APIKey != "",
			"api_secret_set":    gw.APISecret != "",
			"additional_config": gw.AdditionalConfig,
		})
	}

	utils.Success(c, "Gateways retrieved", gin.H{"gateways": out})
}

type updateGatewayRequest struct {
	DisplayName      *string `json:"display_name"`
	Enabled          *bool   `json:"enabled"`
	Sandbox          *bool   `json:"sandbox"`
	MerchantID       *string `json:"merchant_id"`
	APIKey           *string `json:"api_key"`
	APISecret        *string `json:"api_secret"`
	AdditionalConfig *string `json:"additional_config"`
}

// UpdateGateway updates one gateway's configuration. Credentials are
// encrypted before storage.
//
// PUT /v1/admin/gateways/:name
func UpdateGateway(c *gin.Context) {
	name := c.Param("name")
	utils.LogInfo("UpdateGateway called for %s", name)

	var gw models.PaymentGateway
	if err := config.DB.Where("name = ?", name).First(&gw).Error; err != nil {
		utils.LogError("Gateway not found: %s: %v", name, err)
		utils.NotFound(c, "Gateway not found")
		return
	}

	var req updateGatewayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid gateway update body: %v", err)
		utils.BadRequest(c, "Invalid request body", err.Error())
		return
	}

	updates := map[string]interface{}{}
	if req.DisplayName != nil {
		updates["display_name"] = *req.DisplayName
	}
	if req.Enabled != nil {
		updates["enabled"] = *req.Enabled
	}
	if req.Sandbox != nil {
		updates["sandbox"] = *req.Sandbox
	}
	if req.MerchantID != nil {
		updates["merchant_id"] = *req.MerchantID
	}
	if req.APIKey != nil {
		encrypted, err := utils.EncryptSecret(*req.APIKey)
		if err != nil {
			utils.LogError("Failed to encrypt API key for %s: %v", name, err)
			utils.InternalServerError(c, "Failed to store credentials", nil)
			return
		}
		updates["api_key"] = encrypted
	}
	if req.APISecret != nil {
		encrypted, err := utils.EncryptSecret(*req.APISecret)
		if err != nil {
			utils.LogError("Failed to encrypt API secret for %s: %v", name, err)
			utils.InternalServerError(c, "Failed to store credentials", nil)
			return
		}
		updates["api_secret"] = encrypted
	}
	if req.AdditionalConfig != nil {
		updates["additional_config"] = *req.AdditionalConfig
	}
	if len(updates) == 0 {
		utils.BadRequest(c, "Nothing to update", nil)
		return
	}

	if err := config.DB.Model(&gw).Updates(updates).Error; err != nil {
		utils.LogError("Failed to update gateway %s: %v", name, err)
		utils.InternalServerError(c, "Failed to update gateway", err.Error())
		return
	}

	utils.LogInfo("Gateway %s updated", name)
	utils.Success(c, "Gateway updated successfully", gin.H{"name": name})
}
