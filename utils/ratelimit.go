package utils

import (
	"time"

	"github.com/Rahat-404/MadrasaServer/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RateLimitExceeded reports and records one hit for phone under scope within
// the current hour window. The counter lives in the shared store and is
// bumped with an atomic upsert, so the limit holds across instances and
// survives restarts. Returns true when this hit is over the limit.
func RateLimitExceeded(db *gorm.DB, scope, phone string, limit int) (bool, error) {
	window := time.Now().UTC().Truncate(time.Hour)
	entry := models.RateLimitCounter{
		Scope:       scope,
		Phone:       NormalizePhone(phone),
		WindowStart: window,
		Count:       1,
	}

	err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "scope"}, {Name: "phone"}, {Name: "window_start"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"count":      gorm.Expr("rate_limit_counters.count + 1"),
			"updated_at": time.Now(),
		}),
	}).Create(&entry).Error
	if err != nil {
		return false, err
	}

	var current models.RateLimitCounter
	if err := db.Where("scope = ? AND phone = ? AND window_start = ?",
		scope, entry.Phone, window).First(&current).Error; err != nil {
		return false, err
	}

	return current.Count > limit, nil
}

// CleanupRateLimitCounters drops windows old enough that no request can hit
// them again
func CleanupRateLimitCounters(db *gorm.DB) error {
	cutoff := time.Now().UTC().Add(-24 * time.Hour)
	return db.Where("window_start < ?", cutoff).Delete(&models.RateLimitCounter{}).Error
}
