package models

import (
	"time"
)

// RateLimitCounter is a durable per-phone submission counter. One row per
// phone per hour window, incremented atomically with an upsert so the limit
// holds across instances and restarts.
type RateLimitCounter struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Scope       string    `json:"scope" gorm:"uniqueIndex:idx_rate_scope_phone_window;not null"`
	Phone       string    `json:"phone" gorm:"uniqueIndex:idx_rate_scope_phone_window;not null"`
	WindowStart time.Time `json:"window_start" gorm:"uniqueIndex:idx_rate_scope_phone_window;not null"`
	Count       int       `json:"count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
