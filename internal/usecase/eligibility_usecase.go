package usecase

import (
	"context"
	"errors"
	"time"

	"benihealth/internal/delivery/dto"
	"benihealth/internal/domain/entity"
	"benihealth/internal/domain/repository"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrSearchTermsRequired = errors.New("at least one search term is required")
	ErrCoverageInactive    = errors.New("enrollee coverage is not active")
)

type EligibilityUsecase interface {
	VerifyEnrollee(ctx context.Context, req *dto.VerifyEnrolleeRequest) (*dto.VerifyEnrolleeResponse, error)
}

type eligibilityUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	enrolleeRepo repository.EnrolleeRepository
}

func NewEligibilityUsecase(db *gorm.DB, log *logrus.Logger, enrolleeRepo repository.EnrolleeRepository) EligibilityUsecase {
	return &eligibilityUsecase{
		db:           db,
		log:          log,
		enrolleeRepo: enrolleeRepo,
	}
}

// VerifyEnrollee is the point-of-care eligibility check a provider runs before
// rendering a service.
func (u *eligibilityUsecase) VerifyEnrollee(ctx context.Context, req *dto.VerifyEnrolleeRequest) (*dto.VerifyEnrolleeResponse, error) {
	search := repository.EnrolleeSearch{
		Phone:      req.Phone,
		Email:      req.Email,
		EnrolleeID: req.EnrolleeID,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
	}
	if search.IsEmpty() {
		return nil, ErrSearchTermsRequired
	}

	db := u.db.WithContext(ctx)

	enrollee, err := u.enrolleeRepo.Search(db, search)
	if err != nil {
		u.log.Warnf("Failed to search enrollee: %+v", err)
		return nil, err
	}
	if enrollee == nil {
		return nil, ErrEnrolleeNotFound
	}

	now := time.Now()
	if !enrollee.IsCoverageActive(now) {
		return nil, ErrCoverageInactive
	}

	return buildEligibilityResponse(enrollee, now), nil
}

func buildEligibilityResponse(enrollee *entity.Enrollee, now time.Time) *dto.VerifyEnrolleeResponse {
	annualCap := enrollee.Plan.AnnualCap

	// Claims processing is out of scope for now, so nothing has been spent
	// against the cap yet. TODO: subtract approved claim totals once the
	// claims module lands.
	used := decimal.Zero
	remaining := annualCap.Sub(used)

	percentageUsed := 0.0
	if annualCap.IsPositive() {
		percentageUsed = used.Div(annualCap).Mul(decimal.NewFromInt(100)).InexactFloat64()
	}

	daysRemaining := int(entity.DateOnly(enrollee.CoverageEnd).Sub(entity.DateOnly(now)).Hours() / 24)
	if daysRemaining < 0 {
		daysRemaining = 0
	}

	return &dto.VerifyEnrolleeResponse{
		Status: "ELIGIBLE",
		Enrollee: dto.EnrolleeSummary{
			ID:         enrollee.ID,
			EnrolleeID: enrollee.EnrolleeID,
			Name:       enrollee.FullName(),
			DOB:        enrollee.DOB.Format("2006-01-02"),
			Phone:      enrollee.Phone,
			Email:      enrollee.Email,
		},
		Plan: dto.PlanSummary{
			Name:      enrollee.Plan.Name,
			AnnualCap: annualCap,
		},
		Balance: dto.BalanceSummary{
			AnnualCap:      annualCap,
			Used:           used,
			Remaining:      remaining,
			PercentageUsed: percentageUsed,
		},
		Coverage: dto.CoverageOverview{
			StartDate:     enrollee.CoverageStart.Format("2006-01-02"),
			EndDate:       enrollee.CoverageEnd.Format("2006-01-02"),
			DaysRemaining: daysRemaining,
		},
	}
}
