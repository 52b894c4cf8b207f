package repository

import (
	"benihealth/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role-specific profile stores. Exactly one row per user profile of the
// matching role; the provisioning service owns creation.

type EmployerProfileRepository interface {
	Create(db *gorm.DB, profile *entity.EmployerProfile) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.EmployerProfile, error)
	// FindByUserProfileID returns (nil, nil) when no employer profile exists.
	FindByUserProfileID(db *gorm.DB, userProfileID uuid.UUID) (*entity.EmployerProfile, error)
	Update(db *gorm.DB, profile *entity.EmployerProfile) error
}

type EmployeeProfileRepository interface {
	Create(db *gorm.DB, profile *entity.EmployeeProfile) error
	// FindByUserProfileID returns (nil, nil) when no employee profile exists.
	FindByUserProfileID(db *gorm.DB, userProfileID uuid.UUID) (*entity.EmployeeProfile, error)
	Update(db *gorm.DB, profile *entity.EmployeeProfile) error
}

type ProviderProfileRepository interface {
	Create(db *gorm.DB, profile *entity.ProviderProfile) error
	// FindByUserProfileID returns (nil, nil) when no provider profile exists.
	FindByUserProfileID(db *gorm.DB, userProfileID uuid.UUID) (*entity.ProviderProfile, error)
	Update(db *gorm.DB, profile *entity.ProviderProfile) error
}

type HMOProfileRepository interface {
	Create(db *gorm.DB, profile *entity.HMOProfile) error
	// FindByUserProfileID returns (nil, nil) when no HMO profile exists.
	FindByUserProfileID(db *gorm.DB, userProfileID uuid.UUID) (*entity.HMOProfile, error)
}
