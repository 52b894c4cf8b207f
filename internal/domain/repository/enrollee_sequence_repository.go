package repository

import (
	"time"

	"gorm.io/gorm"
)

// EnrolleeSequenceRepository hands out the daily sequence numbers used in
// generated enrollee IDs.
type EnrolleeSequenceRepository interface {
	// Next atomically increments the counter for the given day and returns
	// the new 1-based value. Safe under concurrent enrollee creation.
	Next(db *gorm.DB, day time.Time) (int64, error)
}
