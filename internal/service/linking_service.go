package service

import (
	"benihealth/internal/domain/entity"
	"benihealth/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// LinkingService is the reverse direction of the claim relationship handled
// by ProvisioningService: when an enrollee record is created for a person who
// already registered as an EMPLOYEE, the existing employee profile gets the
// employer link backfilled.
//
// Day 1: employee self-registers (employee profile created, not linked).
// Day 5: employer enrolls the employee (this service links them).
//
// The caller runs it in a transaction of its own, after the enrollee insert
// has committed: linking is best-effort and must never fail enrollee
// creation.
type LinkingService interface {
	LinkEnrolleeToAccount(tx *gorm.DB, enrollee *entity.Enrollee) error
}

type linkingService struct {
	log             *logrus.Logger
	userRepo        repository.UserRepository
	userProfileRepo repository.UserProfileRepository
	employeeRepo    repository.EmployeeProfileRepository
}

func NewLinkingService(
	log *logrus.Logger,
	userRepo repository.UserRepository,
	userProfileRepo repository.UserProfileRepository,
	employeeRepo repository.EmployeeProfileRepository,
) LinkingService {
	return &linkingService{
		log:             log,
		userRepo:        userRepo,
		userProfileRepo: userProfileRepo,
		employeeRepo:    employeeRepo,
	}
}

func (s *linkingService) LinkEnrolleeToAccount(tx *gorm.DB, enrollee *entity.Enrollee) error {
	if enrollee.Email == "" {
		return nil
	}

	user, err := s.userRepo.FindByEmail(tx, enrollee.Email)
	if err != nil {
		return err
	}
	if user == nil {
		// No account with this email yet; they can claim later at registration.
		return nil
	}

	profile, err := s.userProfileRepo.FindByUserID(tx, user.ID)
	if err != nil {
		return err
	}
	if profile == nil {
		// Account exists but the role is not set yet; defer linking.
		return nil
	}
	if profile.Role != entity.RoleEmployee {
		return nil
	}

	employee, err := s.employeeRepo.FindByUserProfileID(tx, profile.ID)
	if err != nil {
		return err
	}

	dob := enrollee.DOB
	employeeID := enrollee.EnrolleeID

	if employee == nil {
		employee = &entity.EmployeeProfile{
			UserProfileID: profile.ID,
			EmployerID:    enrollee.EmployerID,
			EmployeeID:    &employeeID,
			DateOfBirth:   &dob,
		}
		if err := s.employeeRepo.Create(tx, employee); err != nil {
			return err
		}
		s.log.Infof("Linked enrollee %s to account %s", enrollee.EnrolleeID, user.Email)
		return nil
	}

	// Never overwrite an existing employer link.
	if employee.IsLinked() {
		return nil
	}

	employee.EmployerID = enrollee.EmployerID
	employee.EmployeeID = &employeeID
	employee.DateOfBirth = &dob

	if err := s.employeeRepo.Update(tx, employee); err != nil {
		return err
	}

	s.log.Infof("Linked enrollee %s to account %s", enrollee.EnrolleeID, user.Email)

	return nil
}
