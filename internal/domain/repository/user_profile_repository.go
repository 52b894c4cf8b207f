package repository

import (
	"benihealth/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserProfileRepository interface {
	Create(db *gorm.DB, profile *entity.UserProfile) error
	// FindByUserID returns (nil, nil) when the user has no profile yet.
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.UserProfile, error)
	Update(db *gorm.DB, profile *entity.UserProfile) error
}
