package models

import (
	"time"
)

// Transaction statuses
const (
	TxnStatusPending   = "pending"
	TxnStatusCompleted = "completed"
	TxnStatusFailed    = "failed"
	TxnStatusCancelled = "cancelled"
)

// Payment types
const (
	PaymentTypeDonation = "donation"
	PaymentTypeFee      = "fee"
)

// PaymentTransaction tracks one payment attempt from initiation to its
// terminal outcome. The status moves pending -> completed/failed/cancelled
// exactly once; terminal rows are never mutated again.
type PaymentTransaction struct {
	ID                   uint       `json:"id" gorm:"primaryKey"`
	TransactionID        string     `json:"transaction_id" gorm:"uniqueIndex;not null"`
	Amount               float64    `json:"amount"`
	Gateway              string     `json:"gateway"`
	PaymentType          string     `json:"payment_type"` // donation, fee
	ReferenceID          uint       `json:"reference_id"`
	PayerName            string     `json:"payer_name"`
	PayerPhone           string     `json:"payer_phone"`
	PayerEmail           string     `json:"payer_email"`
	Status               string     `json:"status"` // pending, completed, failed, cancelled
	GatewayPaymentID     string     `json:"gateway_payment_id" gorm:"index"`
	GatewayTransactionID string     `json:"gateway_transaction_id"`
	ReturnURL            string     `json:"return_url"`
	PaymentDate          *time.Time `json:"payment_date"`
	VerifiedBy           string     `json:"verified_by"`
	Notes                string     `json:"notes"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

// IsTerminal reports whether the transaction has already reached a final state.
func (t *PaymentTransaction) IsTerminal() bool {
	return t.Status == TxnStatusCompleted || t.Status == TxnStatusFailed || t.Status == TxnStatusCancelled
}
