package models

import (
	"time"
)

// Donation categories accepted from the public donation form
const (
	DonationCategoryGeneral      = "general"
	DonationCategoryZakat        = "zakat"
	DonationCategorySadaqah      = "sadaqah"
	DonationCategoryFitra        = "fitra"
	DonationCategoryConstruction = "construction"
	DonationCategoryOrphan       = "orphan"
	DonationCategoryIftar        = "iftar"
)

type Donation struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	DonorName     string    `json:"donor_name"`
	DonorPhone    string    `json:"donor_phone" gorm:"index"`
	DonorEmail    string    `json:"donor_email"`
	Amount        float64   `json:"amount"`
	Category      string    `json:"category"`
	Gateway       string    `json:"gateway"`
	Message       string    `json:"message"`
	PaymentStatus string    `json:"payment_status"` // pending, completed
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
