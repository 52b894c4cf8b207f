package usecase

import (
	"context"
	"errors"

	"benihealth/internal/converter"
	"benihealth/internal/delivery/dto"
	"benihealth/internal/delivery/http/middleware"
	"benihealth/internal/domain/entity"
	"benihealth/internal/domain/repository"
	"benihealth/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrPlanCodeExists = errors.New("a plan with this code already exists")

type PlanUsecase interface {
	Create(ctx context.Context, req *dto.CreatePlanRequest) (*dto.PlanResponse, error)
	GetAll(ctx context.Context, limit, offset int) ([]dto.PlanResponse, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.PlanResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdatePlanRequest) (*dto.PlanResponse, error)
}

type planUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	planRepo     repository.PlanRepository
	auditService service.AuditService
}

func NewPlanUsecase(db *gorm.DB, log *logrus.Logger, planRepo repository.PlanRepository, auditService service.AuditService) PlanUsecase {
	return &planUsecase{
		db:           db,
		log:          log,
		planRepo:     planRepo,
		auditService: auditService,
	}
}

func (u *planUsecase) Create(ctx context.Context, req *dto.CreatePlanRequest) (*dto.PlanResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	plan := &entity.Plan{
		PlanCode:         req.PlanCode,
		Name:             req.Name,
		Description:      req.Description,
		AnnualCap:        req.AnnualCap,
		VisitCap:         req.VisitCap,
		CoveredServices:  entity.JSONList(req.CoveredServices),
		CoPayRules:       entity.JSON(req.CoPayRules),
		ReferralRequired: req.ReferralRequired,
	}

	if err := u.planRepo.Create(tx, plan); err != nil {
		if isDuplicateKeyError(err, "plan_code") {
			return nil, ErrPlanCodeExists
		}
		u.log.Warnf("Failed to create plan: %+v", err)
		return nil, err
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogCreate(ctx, tx, &userID, entity.AuditActionPlanCreate, "plan", plan.PlanCode, map[string]interface{}{
		"plan_code": plan.PlanCode,
		"name":      plan.Name,
	}); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PlanToResponse(plan), nil
}

func (u *planUsecase) GetAll(ctx context.Context, limit, offset int) ([]dto.PlanResponse, int64, error) {
	db := u.db.WithContext(ctx)

	plans, total, err := u.planRepo.FindAll(db, limit, offset)
	if err != nil {
		u.log.Warnf("Failed to list plans: %+v", err)
		return nil, 0, err
	}

	responses := make([]dto.PlanResponse, 0, len(plans))
	for i := range plans {
		responses = append(responses, *converter.PlanToResponse(&plans[i]))
	}

	return responses, total, nil
}

func (u *planUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.PlanResponse, error) {
	db := u.db.WithContext(ctx)

	plan, err := u.planRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find plan: %+v", err)
		return nil, err
	}
	if plan == nil {
		return nil, ErrPlanNotFound
	}

	return converter.PlanToResponse(plan), nil
}

func (u *planUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdatePlanRequest) (*dto.PlanResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	plan, err := u.planRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find plan: %+v", err)
		return nil, err
	}
	if plan == nil {
		return nil, ErrPlanNotFound
	}

	if req.Name != "" {
		plan.Name = req.Name
	}
	if req.Description != "" {
		plan.Description = req.Description
	}
	if req.AnnualCap != nil {
		plan.AnnualCap = *req.AnnualCap
	}
	if req.VisitCap != nil {
		plan.VisitCap = *req.VisitCap
	}
	if req.CoveredServices != nil {
		plan.CoveredServices = entity.JSONList(req.CoveredServices)
	}
	if req.CoPayRules != nil {
		plan.CoPayRules = entity.JSON(req.CoPayRules)
	}
	if req.ReferralRequired != nil {
		plan.ReferralRequired = *req.ReferralRequired
	}

	if err := u.planRepo.Update(tx, plan); err != nil {
		u.log.Warnf("Failed to update plan: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PlanToResponse(plan), nil
}
