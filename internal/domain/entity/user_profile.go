package entity

import (
	"time"

	"github.com/google/uuid"
)

// Role constants. Role is set once at registration and never changes; it
// decides which specialized profile table owns the rest of the user's data.
const (
	RoleEmployer = "EMPLOYER"
	RoleEmployee = "EMPLOYEE"
	RoleProvider = "PROVIDER"
	RoleHMO      = "HMO"
	RoleAdmin    = "ADMIN"
)

// UserProfile is the role-tagged extension of a User. Exactly one per user.
type UserProfile struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	Role      string    `gorm:"type:varchar(20);not null;index" json:"role"`
	Phone     *string   `gorm:"type:varchar(15);uniqueIndex" json:"phone,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User            User             `gorm:"foreignKey:UserID" json:"user,omitempty"`
	EmployerProfile *EmployerProfile `gorm:"foreignKey:UserProfileID" json:"employer_profile,omitempty"`
	EmployeeProfile *EmployeeProfile `gorm:"foreignKey:UserProfileID" json:"employee_profile,omitempty"`
	ProviderProfile *ProviderProfile `gorm:"foreignKey:UserProfileID" json:"provider_profile,omitempty"`
	HMOProfile      *HMOProfile      `gorm:"foreignKey:UserProfileID" json:"hmo_profile,omitempty"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}

// PhoneOrEmpty returns the phone number or "" when none is set.
func (p *UserProfile) PhoneOrEmpty() string {
	if p.Phone == nil {
		return ""
	}
	return *p.Phone
}
