package repository

import (
	"benihealth/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PlanRepository interface {
	Create(db *gorm.DB, plan *entity.Plan) error
	// FindByID returns (nil, nil) when no plan matches.
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Plan, error)
	// FindByCode returns (nil, nil) when no plan matches.
	FindByCode(db *gorm.DB, code string) (*entity.Plan, error)
	FindAll(db *gorm.DB, limit, offset int) ([]entity.Plan, int64, error)
	Update(db *gorm.DB, plan *entity.Plan) error
}
