package entity

import (
	"time"

	"github.com/google/uuid"
)

// HMOProfile holds insurer data for HMO users.
type HMOProfile struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserProfileID    uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_profile_id"`
	HMOName          string    `gorm:"type:varchar(200);not null" json:"hmo_name"`
	HMOLicenseNumber string    `gorm:"type:varchar(100)" json:"hmo_license_number,omitempty"`
	ContactEmail     string    `gorm:"type:varchar(255)" json:"contact_email"`
	ContactPhone     string    `gorm:"type:varchar(15)" json:"contact_phone"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	UserProfile UserProfile `gorm:"foreignKey:UserProfileID" json:"user_profile,omitempty"`
}

func (HMOProfile) TableName() string {
	return "hmo_profiles"
}
