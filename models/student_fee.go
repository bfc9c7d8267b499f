package models

import (
	"time"
)

// Fee statuses
const (
	FeeStatusPending = "pending"
	FeeStatusPartial = "partial"
	FeeStatusPaid    = "paid"
)

// StudentFee is the billed amount for one student for one month. PaidAmount
// accumulates across completed payment transactions; DueAmount and Status are
// recomputed each time a payment settles against the row.
type StudentFee struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	StudentID   uint      `json:"student_id" gorm:"index"`
	StudentName string    `json:"student_name"`
	FeeType     string    `json:"fee_type"` // tuition, admission, exam, hostel
	Month       string    `json:"month"`
	Year        int       `json:"year"`
	Amount      float64   `json:"amount"`
	PaidAmount  float64   `json:"paid_amount"`
	DueAmount   float64   `json:"due_amount"`
	Status      string    `json:"status"` // pending, partial, paid
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
