package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// EnrolleeStatus represents the coverage status of an enrollee
type EnrolleeStatus string

const (
	EnrolleeStatusActive     EnrolleeStatus = "ACTIVE"
	EnrolleeStatusSuspended  EnrolleeStatus = "SUSPENDED"
	EnrolleeStatusTerminated EnrolleeStatus = "TERMINATED"
)

// Gender constants
const (
	GenderMale   = "M"
	GenderFemale = "F"
)

// Enrollee is a covered individual under an insurance plan. It exists
// independently of any login account: an employer can enroll a person before
// they register, and the two records are reconciled later by email.
type Enrollee struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	EnrolleeID string     `gorm:"type:varchar(50);uniqueIndex;not null" json:"enrollee_id"`
	FirstName  string     `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName   string     `gorm:"type:varchar(100);not null" json:"last_name"`
	DOB        time.Time  `gorm:"type:date;not null" json:"dob"`
	Gender     string     `gorm:"type:char(1);not null" json:"gender"`
	Phone      string     `gorm:"type:varchar(20);uniqueIndex;not null" json:"phone"`
	Email      string     `gorm:"type:varchar(255);index" json:"email,omitempty"`
	NationalID string     `gorm:"type:varchar(50)" json:"national_id,omitempty"`
	Address    JSON       `gorm:"type:jsonb" json:"address,omitempty"`
	EmployerID *uuid.UUID `gorm:"type:uuid;index" json:"employer_id,omitempty"`
	PlanID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"plan_id"`

	Status        EnrolleeStatus `gorm:"type:varchar(20);not null;default:'ACTIVE';index:idx_enrollees_status_start" json:"status"`
	CoverageStart time.Time      `gorm:"type:date;not null;index:idx_enrollees_status_start" json:"coverage_start"`
	CoverageEnd   time.Time      `gorm:"type:date;not null" json:"coverage_end"`

	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Employer *EmployerProfile `gorm:"foreignKey:EmployerID" json:"employer,omitempty"`
	Plan     Plan             `gorm:"foreignKey:PlanID" json:"plan,omitempty"`
}

func (Enrollee) TableName() string {
	return "enrollees"
}

// FullName returns the enrollee's display name.
func (e *Enrollee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// IsCoverageActive reports whether coverage applies on the given day: status
// must be ACTIVE and the day must fall inside [coverage_start, coverage_end],
// both ends inclusive. Pure; the caller supplies the reference date.
func (e *Enrollee) IsCoverageActive(today time.Time) bool {
	if e.Status != EnrolleeStatusActive {
		return false
	}
	day := DateOnly(today)
	return !day.Before(DateOnly(e.CoverageStart)) && !day.After(DateOnly(e.CoverageEnd))
}

// FormatEnrolleeID renders the external enrollee identifier for a creation day
// and a 1-based daily sequence number, e.g. HL-241210-0001. The format is a
// hard contract with enrollee ID cards already in circulation.
func FormatEnrolleeID(day time.Time, seq int64) string {
	return fmt.Sprintf("HL-%s-%04d", day.Format("060102"), seq)
}

// DateOnly truncates a timestamp to its calendar date in UTC.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
