package usecase

import (
	"context"
	"errors"
	"fmt"

	"benihealth/internal/delivery/dto"
	"benihealth/internal/delivery/http/middleware"
	"benihealth/internal/domain/entity"
	"benihealth/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrEmployeeProfileNotFound = errors.New("employee profile not found")

type DashboardUsecase interface {
	EmployerDashboard(ctx context.Context) (*dto.EmployerDashboardResponse, error)
	EmployeeDashboard(ctx context.Context) (*dto.EmployeeDashboardResponse, error)
}

type dashboardUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	userProfileRepo repository.UserProfileRepository
	employerRepo    repository.EmployerProfileRepository
	employeeRepo    repository.EmployeeProfileRepository
	enrolleeRepo    repository.EnrolleeRepository
}

func NewDashboardUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userProfileRepo repository.UserProfileRepository,
	employerRepo repository.EmployerProfileRepository,
	employeeRepo repository.EmployeeProfileRepository,
	enrolleeRepo repository.EnrolleeRepository,
) DashboardUsecase {
	return &dashboardUsecase{
		db:              db,
		log:             log,
		userProfileRepo: userProfileRepo,
		employerRepo:    employerRepo,
		employeeRepo:    employeeRepo,
		enrolleeRepo:    enrolleeRepo,
	}
}

func (u *dashboardUsecase) EmployerDashboard(ctx context.Context) (*dto.EmployerDashboardResponse, error) {
	db := u.db.WithContext(ctx)

	profile, err := u.profileFromContext(ctx, db)
	if err != nil {
		return nil, err
	}

	employer, err := u.employerRepo.FindByUserProfileID(db, profile.ID)
	if err != nil {
		u.log.Warnf("Failed to find employer profile: %+v", err)
		return nil, err
	}
	if employer == nil {
		return nil, ErrEmployerProfileNotFound
	}

	enrolleeCount, err := u.enrolleeRepo.CountByEmployer(db, employer.ID)
	if err != nil {
		u.log.Warnf("Failed to count enrollees: %+v", err)
		return nil, err
	}

	return &dto.EmployerDashboardResponse{
		Message: fmt.Sprintf("Welcome back, %s", employer.CompanyName),
		Employer: &dto.EmployerOverview{
			CompanyName:       employer.CompanyName,
			Industry:          employer.Industry,
			NumberOfEmployees: employer.NumberOfEmployees,
			EnrolleeCount:     enrolleeCount,
		},
	}, nil
}

func (u *dashboardUsecase) EmployeeDashboard(ctx context.Context) (*dto.EmployeeDashboardResponse, error) {
	db := u.db.WithContext(ctx)

	profile, err := u.profileFromContext(ctx, db)
	if err != nil {
		return nil, err
	}

	employee, err := u.employeeRepo.FindByUserProfileID(db, profile.ID)
	if err != nil {
		u.log.Warnf("Failed to find employee profile: %+v", err)
		return nil, err
	}
	if employee == nil {
		return nil, ErrEmployeeProfileNotFound
	}

	overview := &dto.EmployeeOverview{
		EmployeeID: employee.EmployeeID,
		Department: employee.Department,
		JobTitle:   employee.JobTitle,
	}

	if employee.IsLinked() {
		employer, err := u.employerRepo.FindByID(db, *employee.EmployerID)
		if err != nil {
			u.log.Warnf("Failed to find employer: %+v", err)
			return nil, err
		}
		if employer != nil {
			overview.Employer = &employer.CompanyName
		}
	}

	return &dto.EmployeeDashboardResponse{
		Message:  "Welcome to your health dashboard",
		Employee: overview,
	}, nil
}

func (u *dashboardUsecase) profileFromContext(ctx context.Context, db *gorm.DB) (*entity.UserProfile, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	profile, err := u.userProfileRepo.FindByUserID(db, userID)
	if err != nil {
		u.log.Warnf("Failed to find user profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	return profile, nil
}
