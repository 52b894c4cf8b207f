package entity

import (
	"time"

	"github.com/google/uuid"
)

// Facility type constants
const (
	FacilityTypeHospital   = "HOSPITAL"
	FacilityTypeClinic     = "CLINIC"
	FacilityTypeDiagnostic = "DIAGNOSTIC"
	FacilityTypePharmacy   = "PHARMACY"
	FacilityTypeSpecialist = "SPECIALIST"
	FacilityTypeDental     = "DENTAL"
	FacilityTypeEye        = "EYE"
)

// Accreditation status constants
const (
	AccreditationPending   = "PENDING"
	AccreditationVerified  = "VERIFIED"
	AccreditationActive    = "ACTIVE"
	AccreditationSuspended = "SUSPENDED"
	AccreditationRejected  = "REJECTED"
)

// ProviderProfile represents a healthcare organization (legal entity) behind a
// PROVIDER user, e.g. "MediCare Health Services Ltd".
type ProviderProfile struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserProfileID       uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_profile_id"`
	FacilityName        string    `gorm:"type:varchar(200);not null" json:"facility_name"`
	FacilityType        string    `gorm:"type:varchar(50);not null;index" json:"facility_type"`
	LicenseNumber       string    `gorm:"type:varchar(100)" json:"license_number,omitempty"`
	AccreditationStatus string    `gorm:"type:varchar(20);not null;default:'PENDING';index" json:"accreditation_status"`
	ContactPhone        string    `gorm:"type:varchar(20)" json:"contact_phone"`
	ContactEmail        string    `gorm:"type:varchar(255)" json:"contact_email"`
	CreatedAt           time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	UserProfile UserProfile `gorm:"foreignKey:UserProfileID" json:"user_profile,omitempty"`
}

func (ProviderProfile) TableName() string {
	return "provider_profiles"
}

// IsOperational reports provider-level eligibility (contracts and trust).
func (p *ProviderProfile) IsOperational(userActive bool) bool {
	return p.AccreditationStatus == AccreditationActive && userActive
}
