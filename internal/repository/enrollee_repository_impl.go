package repository

import (
	"errors"

	"benihealth/internal/domain/entity"
	domainRepo "benihealth/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type enrolleeRepository struct{}

func NewEnrolleeRepository() domainRepo.EnrolleeRepository {
	return &enrolleeRepository{}
}

func (r *enrolleeRepository) Create(db *gorm.DB, enrollee *entity.Enrollee) error {
	return db.Create(enrollee).Error
}

func (r *enrolleeRepository) FindByEnrolleeID(db *gorm.DB, enrolleeID string) (*entity.Enrollee, error) {
	var enrollee entity.Enrollee
	err := db.Preload("Plan").Where("enrollee_id = ?", enrolleeID).First(&enrollee).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &enrollee, nil
}

func (r *enrolleeRepository) FindFirstByEmail(db *gorm.DB, email string) (*entity.Enrollee, error) {
	var enrollee entity.Enrollee
	err := db.Where("email = ?", email).Order("created_at ASC").First(&enrollee).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &enrollee, nil
}

func (r *enrolleeRepository) FindAllByEmployer(db *gorm.DB, employerID uuid.UUID) ([]entity.Enrollee, error) {
	var enrollees []entity.Enrollee
	err := db.Preload("Plan").
		Where("employer_id = ?", employerID).
		Order("created_at DESC").
		Find(&enrollees).Error
	return enrollees, err
}

func (r *enrolleeRepository) CountByEmployer(db *gorm.DB, employerID uuid.UUID) (int64, error) {
	var count int64
	err := db.Model(&entity.Enrollee{}).Where("employer_id = ?", employerID).Count(&count).Error
	return count, err
}

func (r *enrolleeRepository) Search(db *gorm.DB, search domainRepo.EnrolleeSearch) (*entity.Enrollee, error) {
	query := db.Preload("Plan")

	conditions := db.Session(&gorm.Session{NewDB: true})
	if search.Phone != "" {
		conditions = conditions.Or("phone ILIKE ?", "%"+search.Phone+"%")
	}
	if search.Email != "" {
		conditions = conditions.Or("email ILIKE ?", "%"+search.Email+"%")
	}
	if search.EnrolleeID != "" {
		conditions = conditions.Or("enrollee_id ILIKE ?", "%"+search.EnrolleeID+"%")
	}
	if search.FirstName != "" && search.LastName != "" {
		conditions = conditions.Or(
			db.Session(&gorm.Session{NewDB: true}).
				Where("first_name ILIKE ?", "%"+search.FirstName+"%").
				Where("last_name ILIKE ?", "%"+search.LastName+"%"),
		)
	}

	var enrollee entity.Enrollee
	err := query.Where(conditions).First(&enrollee).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &enrollee, nil
}

func (r *enrolleeRepository) Update(db *gorm.DB, enrollee *entity.Enrollee) error {
	return db.Save(enrollee).Error
}
