package repository

import (
	"errors"

	"benihealth/internal/domain/entity"
	domainRepo "benihealth/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type planRepository struct{}

func NewPlanRepository() domainRepo.PlanRepository {
	return &planRepository{}
}

func (r *planRepository) Create(db *gorm.DB, plan *entity.Plan) error {
	return db.Create(plan).Error
}

func (r *planRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Plan, error) {
	var plan entity.Plan
	err := db.Where("id = ?", id).First(&plan).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *planRepository) FindByCode(db *gorm.DB, code string) (*entity.Plan, error) {
	var plan entity.Plan
	err := db.Where("plan_code = ?", code).First(&plan).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *planRepository) FindAll(db *gorm.DB, limit, offset int) ([]entity.Plan, int64, error) {
	var plans []entity.Plan
	var total int64

	if err := db.Model(&entity.Plan{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Order("name ASC").Limit(limit).Offset(offset).Find(&plans).Error
	if err != nil {
		return nil, 0, err
	}

	return plans, total, nil
}

func (r *planRepository) Update(db *gorm.DB, plan *entity.Plan) error {
	return db.Save(plan).Error
}
