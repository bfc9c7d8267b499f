package main

import (
	"log"
	"time"

	"github.com/Rahat-404/MadrasaServer/config"
	"github.com/Rahat-404/MadrasaServer/controllers"
	"github.com/Rahat-404/MadrasaServer/routes"
	"github.com/Rahat-404/MadrasaServer/utils"
)

func main() {
	// Initialize logger
	if err := utils.InitLogger(); err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	// Load environment variables
	cfg, err := config.LoadConfig()
	if err != nil {
		utils.LogError("Error loading config: %v", err)
		log.Fatal("Error loading config:", err)
	}

	// Initialize database
	config.InitDB()

	// Seed the first staff account and gateway rows
	if err := controllers.CreateDefaultSuperAdmin(); err != nil {
		utils.LogError("Failed to create default super admin: %v", err)
		log.Fatal("Failed to create default super admin:", err)
	}
	if err := controllers.CreateDefaultGateways(); err != nil {
		utils.LogError("Failed to create default gateways: %v", err)
		log.Fatal("Failed to create default gateways:", err)
	}

	// Periodically drop expired rate-limit windows
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			if err := utils.CleanupRateLimitCounters(config.DB); err != nil {
				utils.LogError("Rate limit cleanup failed: %v", err)
			}
		}
	}()

	// Set up router
	router := routes.SetupRouter()

	// Add middleware
	router.Use(utils.LoggerMiddleware())
	router.Use(utils.CORSMiddleware())
	router.Use(utils.RecoveryMiddleware())
	router.Use(utils.RequestIDMiddleware())
	router.Use(utils.SecurityHeadersMiddleware())

	utils.LogInfo("Server starting on port %s", cfg.Port)
	// Start server
	if err := router.Run(":" + cfg.Port); err != nil {
		utils.LogError("Error starting server: %v", err)
		log.Fatal("Error starting server:", err)
	}
}
