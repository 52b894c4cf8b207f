package service

import (
	"fmt"

	"benihealth/internal/domain/entity"
	"benihealth/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// DefaultJobTitle is assigned when an employee profile is claimed from an
// enrollee record and no job title is known yet.
const DefaultJobTitle = "Employee"

// ProvisioningService creates the role-specific profile that must accompany
// every UserProfile. It is called explicitly from the registration
// transaction, so any failure rolls the whole registration back: a
// UserProfile never persists without its specialized counterpart (ADMIN
// excepted, which has none).
type ProvisioningService interface {
	ProvisionRoleProfile(tx *gorm.DB, user *entity.User, profile *entity.UserProfile) error
}

type provisioningService struct {
	log          *logrus.Logger
	employerRepo repository.EmployerProfileRepository
	employeeRepo repository.EmployeeProfileRepository
	providerRepo repository.ProviderProfileRepository
	hmoRepo      repository.HMOProfileRepository
	enrolleeRepo repository.EnrolleeRepository
}

func NewProvisioningService(
	log *logrus.Logger,
	employerRepo repository.EmployerProfileRepository,
	employeeRepo repository.EmployeeProfileRepository,
	providerRepo repository.ProviderProfileRepository,
	hmoRepo repository.HMOProfileRepository,
	enrolleeRepo repository.EnrolleeRepository,
) ProvisioningService {
	return &provisioningService{
		log:          log,
		employerRepo: employerRepo,
		employeeRepo: employeeRepo,
		providerRepo: providerRepo,
		hmoRepo:      hmoRepo,
		enrolleeRepo: enrolleeRepo,
	}
}

func (s *provisioningService) ProvisionRoleProfile(tx *gorm.DB, user *entity.User, profile *entity.UserProfile) error {
	switch profile.Role {
	case entity.RoleEmployer:
		return s.provisionEmployer(tx, user, profile)
	case entity.RoleEmployee:
		return s.provisionEmployee(tx, user, profile)
	case entity.RoleProvider:
		return s.provisionProvider(tx, user, profile)
	case entity.RoleHMO:
		return s.provisionHMO(tx, user, profile)
	case entity.RoleAdmin:
		// Admins have no specialized profile.
		return nil
	default:
		return fmt.Errorf("unknown role %q", profile.Role)
	}
}

func (s *provisioningService) provisionEmployer(tx *gorm.DB, user *entity.User, profile *entity.UserProfile) error {
	employer := &entity.EmployerProfile{
		UserProfileID: profile.ID,
		CompanyName:   fmt.Sprintf("Company for %s", user.Email), // Placeholder until the employer completes onboarding
		CompanyPhone:  profile.PhoneOrEmpty(),
		CompanyEmail:  user.Email,
	}
	return s.employerRepo.Create(tx, employer)
}

// provisionEmployee creates an empty employee profile and then tries to claim
// a pre-existing enrollee record with the same email: the employer enrolled
// this person before they registered, so the employer link and employee ID
// carry over. First match wins if duplicates exist.
func (s *provisioningService) provisionEmployee(tx *gorm.DB, user *entity.User, profile *entity.UserProfile) error {
	employee := &entity.EmployeeProfile{
		UserProfileID: profile.ID,
	}
	if err := s.employeeRepo.Create(tx, employee); err != nil {
		return err
	}

	enrollee, err := s.enrolleeRepo.FindFirstByEmail(tx, user.Email)
	if err != nil {
		return err
	}
	if enrollee == nil {
		return nil
	}

	employeeID := enrollee.EnrolleeID
	employee.EmployerID = enrollee.EmployerID
	employee.EmployeeID = &employeeID
	employee.JobTitle = DefaultJobTitle

	s.log.Infof("Claimed enrollee %s for newly registered employee %s", enrollee.EnrolleeID, user.Email)

	return s.employeeRepo.Update(tx, employee)
}

func (s *provisioningService) provisionProvider(tx *gorm.DB, user *entity.User, profile *entity.UserProfile) error {
	provider := &entity.ProviderProfile{
		UserProfileID:       profile.ID,
		FacilityName:        fmt.Sprintf("Facility for %s", user.Email), // Placeholder
		FacilityType:        entity.FacilityTypeHospital,                // Default, provider must update
		AccreditationStatus: entity.AccreditationPending,
		ContactPhone:        profile.PhoneOrEmpty(),
		ContactEmail:        user.Email,
	}
	return s.providerRepo.Create(tx, provider)
}

func (s *provisioningService) provisionHMO(tx *gorm.DB, user *entity.User, profile *entity.UserProfile) error {
	hmo := &entity.HMOProfile{
		UserProfileID: profile.ID,
		HMOName:       fmt.Sprintf("HMO for %s", user.Email), // Placeholder
		ContactEmail:  user.Email,
		ContactPhone:  profile.PhoneOrEmpty(),
	}
	return s.hmoRepo.Create(tx, hmo)
}
