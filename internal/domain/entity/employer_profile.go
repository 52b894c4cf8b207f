package entity

import (
	"time"

	"github.com/google/uuid"
)

// EmployerProfile holds company data for EMPLOYER users. It is the employing
// entity referenced by enrollees and employee profiles.
type EmployerProfile struct {
	ID                        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserProfileID             uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_profile_id"`
	CompanyName               string    `gorm:"type:varchar(100);not null" json:"company_name"`
	CompanyRegistrationNumber string    `gorm:"type:varchar(100)" json:"company_registration_number,omitempty"`
	Industry                  string    `gorm:"type:varchar(100)" json:"industry,omitempty"`
	NumberOfEmployees         int       `gorm:"not null;default:0" json:"number_of_employees"`
	CompanyAddress            JSON      `gorm:"type:jsonb" json:"company_address,omitempty"`
	CompanyPhone              string    `gorm:"type:varchar(15);index" json:"company_phone"`
	CompanyEmail              string    `gorm:"type:varchar(255);index" json:"company_email"`
	CreatedAt                 time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt                 time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	UserProfile UserProfile       `gorm:"foreignKey:UserProfileID" json:"user_profile,omitempty"`
	Employees   []EmployeeProfile `gorm:"foreignKey:EmployerID" json:"employees,omitempty"`
	Enrollees   []Enrollee        `gorm:"foreignKey:EmployerID" json:"enrollees,omitempty"`
}

func (EmployerProfile) TableName() string {
	return "employer_profiles"
}
