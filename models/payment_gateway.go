package models

import (
	"time"
)

// Gateway names
const (
	GatewayBkash      = "bkash"
	GatewayNagad      = "nagad"
	GatewayRocket     = "rocket"
	GatewayUpay       = "upay"
	GatewaySSLCommerz = "sslcommerz"
	GatewayAmarPay    = "amarpay"
	GatewayManual     = "manual"
)

// PaymentGateway holds the per-provider configuration managed from the admin
// settings screen. APIKey and APISecret are stored AES encrypted; use
// utils.DecryptSecret before talking to the provider. AdditionalConfig is a
// JSON blob (payment mode, credentials the provider needs beyond key/secret,
// custom instruction template).
type PaymentGateway struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	Name             string    `json:"name" gorm:"uniqueIndex;not null"`
	DisplayName      string    `json:"display_name"`
	Enabled          bool      `json:"enabled"`
	Sandbox          bool      `json:"sandbox"`
	MerchantID       string    `json:"merchant_id"`
	APIKey           string    `json:"-"`
	APISecret        string    `json:"-"`
	AdditionalConfig string    `json:"additional_config"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
