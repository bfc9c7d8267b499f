package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	DBHost           string
	DBPort           string
	DBUser           string
	DBPassword       string
	DBName           string
	JWTSecret        string
	GatewaySecretKey string
	Port             string
	Env              string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// .env is optional outside local development
	if err := godotenv.Load(); err != nil && os.Getenv("ENV") == "" {
		return nil, fmt.Errorf("error loading .env file: %v", err)
	}

	config := &Config{
		DBHost:           os.Getenv("DB_HOST"),
		DBPort:           os.Getenv("DB_PORT"),
		DBUser:           os.Getenv("DB_USER"),
		DBPassword:       os.Getenv("DB_PASSWORD"),
		DBName:           os.Getenv("DB_NAME"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		GatewaySecretKey: os.Getenv("GATEWAY_SECRET_KEY"),
		Port:             os.Getenv("PORT"),
		Env:              os.Getenv("ENV"),
	}
	if config.Port == "" {
		config.Port = "8080"
	}

	return config, nil
}
