package repository

import (
	"errors"

	"benihealth/internal/domain/entity"
	domainRepo "benihealth/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type userProfileRepository struct{}

func NewUserProfileRepository() domainRepo.UserProfileRepository {
	return &userProfileRepository{}
}

func (r *userProfileRepository) Create(db *gorm.DB, profile *entity.UserProfile) error {
	return db.Create(profile).Error
}

func (r *userProfileRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.UserProfile, error) {
	var profile entity.UserProfile
	err := db.Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *userProfileRepository) Update(db *gorm.DB, profile *entity.UserProfile) error {
	return db.Save(profile).Error
}
