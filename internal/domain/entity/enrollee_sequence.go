package entity

import "time"

// EnrolleeSequence is the per-day counter behind generated enrollee IDs.
// Incrementing the counter row atomically (upsert + RETURNING) keeps the
// daily sequence gapless in order and duplicate-free under concurrent
// creations, which a plain count-then-insert would not be.
type EnrolleeSequence struct {
	Day     time.Time `gorm:"type:date;primaryKey" json:"day"`
	Counter int64     `gorm:"not null;default:0" json:"counter"`
}

func (EnrolleeSequence) TableName() string {
	return "enrollee_sequences"
}
