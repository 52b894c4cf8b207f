package entity

import (
	"time"

	"github.com/google/uuid"
)

// EmployeeProfile holds employment data for EMPLOYEE users. The employer link
// is nullable: a self-registered employee stays unlinked until an enrollee
// record with a matching email claims them (or the other way around).
type EmployeeProfile struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserProfileID uuid.UUID  `gorm:"type:uuid;uniqueIndex;not null" json:"user_profile_id"`
	EmployerID    *uuid.UUID `gorm:"type:uuid;index" json:"employer_id,omitempty"`
	EmployeeID    *string    `gorm:"type:varchar(100);uniqueIndex" json:"employee_id,omitempty"`
	Department    string     `gorm:"type:varchar(100)" json:"department,omitempty"`
	JobTitle      string     `gorm:"type:varchar(100)" json:"job_title,omitempty"`
	DateOfBirth   *time.Time `gorm:"type:date" json:"date_of_birth,omitempty"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	UserProfile UserProfile      `gorm:"foreignKey:UserProfileID" json:"user_profile,omitempty"`
	Employer    *EmployerProfile `gorm:"foreignKey:EmployerID" json:"employer,omitempty"`
}

func (EmployeeProfile) TableName() string {
	return "employee_profiles"
}

// IsLinked reports whether the profile has already been claimed by an
// employer. A linked profile must never be relinked automatically.
func (p *EmployeeProfile) IsLinked() bool {
	return p.EmployerID != nil
}
