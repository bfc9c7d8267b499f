package utils

import (
	"fmt"
	"testing"
	"time"

	"github.com/Rahat-404/MadrasaServer/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB opens an isolated in-memory database with the full schema.
// Each call gets its own database so tests do not see each other's rows.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.PaymentGateway{},
		&models.PaymentTransaction{},
		&models.Donation{},
		&models.StudentFee{},
		&models.AdmissionApplication{},
		&models.RateLimitCounter{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

// CreateTestGateway inserts an enabled gateway config for tests
func CreateTestGateway(t *testing.T, db *gorm.DB, name, additionalConfig string) *models.PaymentGateway {
	t.Helper()

	gw := &models.PaymentGateway{
		Name:             name,
		DisplayName:      name,
		Enabled:          true,
		Sandbox:          true,
		MerchantID:       "test-merchant",
		APIKey:           "test-key",
		APISecret:        "test-secret",
		AdditionalConfig: additionalConfig,
	}
	if err := db.Create(gw).Error; err != nil {
		t.Fatalf("Failed to create test gateway: %v", err)
	}
	return gw
}

// CreateTestFee inserts an unpaid student fee row for tests
func CreateTestFee(t *testing.T, db *gorm.DB, amount float64) *models.StudentFee {
	t.Helper()

	fee := &models.StudentFee{
		StudentID:   1,
		StudentName: "Test Student",
		FeeType:     "tuition",
		Month:       "January",
		Year:        2026,
		Amount:      amount,
		DueAmount:   amount,
		Status:      models.FeeStatusPending,
	}
	if err := db.Create(fee).Error; err != nil {
		t.Fatalf("Failed to create test fee: %v", err)
	}
	return fee
}

// CreateTestDonation inserts a pending donation row for tests
func CreateTestDonation(t *testing.T, db *gorm.DB, amount float64) *models.Donation {
	t.Helper()

	donation := &models.Donation{
		DonorName:     "Test Donor",
		DonorPhone:    "01712345678",
		Amount:        amount,
		Category:      models.DonationCategoryGeneral,
		Gateway:       models.GatewayManual,
		PaymentStatus: models.TxnStatusPending,
	}
	if err := db.Create(donation).Error; err != nil {
		t.Fatalf("Failed to create test donation: %v", err)
	}
	return donation
}
