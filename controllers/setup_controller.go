package controllers

import (
	"os"

	"github.com/Rahat-404/MadrasaServer/config"
	"github.com/Rahat-404/MadrasaServer/models"
	"github.com/Rahat-404/MadrasaServer/utils"
)

// CreateDefaultSuperAdmin seeds the first staff account so the admin
// endpoints are reachable on a fresh database
func CreateDefaultSuperAdmin() error {
	var count int64
	if err := config.DB.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@madrasa.local"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "ChangeMe123!"
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	admin := models.User{
		Name:     "Super Admin",
		Email:    email,
		Password: hashed,
		Role:     models.RoleSuperAdmin,
	}
	if err := config.DB.Create(&admin).Error; err != nil {
		return err
	}
	utils.LogInfo("Seeded default super admin %s", email)
	return nil
}

// CreateDefaultGateways seeds one disabled row per supported gateway so the
// settings screen has something to edit
func CreateDefaultGateways() error {
	defaults := []models.PaymentGateway{
		{Name: models.GatewayBkash, DisplayName: "bKash", Sandbox: true,
			AdditionalConfig: `{"payment_mode":"manual"}`},
		{Name: models.GatewayNagad, DisplayName: "Nagad", Sandbox: true,
			AdditionalConfig: `{"payment_mode":"manual"}`},
		{Name: models.GatewayRocket, DisplayName: "Rocket", Sandbox: true,
			AdditionalConfig: `{"payment_mode":"manual"}`},
		{Name: models.GatewayUpay, DisplayName: "Upay", Sandbox: true,
			AdditionalConfig: `{"payment_mode":"manual"}`},
		{Name: models.GatewaySSLCommerz, DisplayName: "SSLCommerz", Sandbox: true,
			AdditionalConfig: `{"payment_mode":"redirect"}`},
		{Name: models.GatewayAmarPay, DisplayName: "AmarPay", Sandbox: true,
			AdditionalConfig: `{"payment_mode":"redirect"}`},
		{Name: models.GatewayManual, DisplayName: "Manual", Enabled: true,
			AdditionalConfig: `{"payment_mode":"manual"}`},
	}

	for _, gw := range defaults {
		var existing models.PaymentGateway
		err := config.DB.Where("name = ?", gw.Name).First(&existing).Error
		if err == nil {
			continue
		}
		if err := config.DB.Create(&gw).Error; err != nil {
			return err
		}
		utils.LogInfo("Seeded gateway config %s", gw.Name)
	}
	return nil
}
