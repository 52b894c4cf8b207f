package repository

import (
	"errors"

	"benihealth/internal/domain/entity"
	domainRepo "benihealth/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type employerProfileRepository struct{}

func NewEmployerProfileRepository() domainRepo.EmployerProfileRepository {
	return &employerProfileRepository{}
}

func (r *employerProfileRepository) Create(db *gorm.DB, profile *entity.EmployerProfile) error {
	return db.Create(profile).Error
}

func (r *employerProfileRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.EmployerProfile, error) {
	var profile entity.EmployerProfile
	err := db.Where("id = ?", id).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *employerProfileRepository) FindByUserProfileID(db *gorm.DB, userProfileID uuid.UUID) (*entity.EmployerProfile, error) {
	var profile entity.EmployerProfile
	err := db.Where("user_profile_id = ?", userProfileID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *employerProfileRepository) Update(db *gorm.DB, profile *entity.EmployerProfile) error {
	return db.Save(profile).Error
}

type employeeProfileRepository struct{}

func NewEmployeeProfileRepository() domainRepo.EmployeeProfileRepository {
	return &employeeProfileRepository{}
}

func (r *employeeProfileRepository) Create(db *gorm.DB, profile *entity.EmployeeProfile) error {
	return db.Create(profile).Error
}

func (r *employeeProfileRepository) FindByUserProfileID(db *gorm.DB, userProfileID uuid.UUID) (*entity.EmployeeProfile, error) {
	var profile entity.EmployeeProfile
	err := db.Where("user_profile_id = ?", userProfileID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *employeeProfileRepository) Update(db *gorm.DB, profile *entity.EmployeeProfile) error {
	return db.Save(profile).Error
}

type providerProfileRepository struct{}

func NewProviderProfileRepository() domainRepo.ProviderProfileRepository {
	return &providerProfileRepository{}
}

func (r *providerProfileRepository) Create(db *gorm.DB, profile *entity.ProviderProfile) error {
	return db.Create(profile).Error
}

func (r *providerProfileRepository) FindByUserProfileID(db *gorm.DB, userProfileID uuid.UUID) (*entity.ProviderProfile, error) {
	var profile entity.ProviderProfile
	err := db.Where("user_profile_id = ?", userProfileID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *providerProfileRepository) Update(db *gorm.DB, profile *entity.ProviderProfile) error {
	return db.Save(profile).Error
}

type hmoProfileRepository struct{}

func NewHMOProfileRepository() domainRepo.HMOProfileRepository {
	return &hmoProfileRepository{}
}

func (r *hmoProfileRepository) Create(db *gorm.DB, profile *entity.HMOProfile) error {
	return db.Create(profile).Error
}

func (r *hmoProfileRepository) FindByUserProfileID(db *gorm.DB, userProfileID uuid.UUID) (*entity.HMOProfile, error) {
	var profile entity.HMOProfile
	err := db.Where("user_profile_id = ?", userProfileID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
