package service

import (
	"testing"
	"time"

	"benihealth/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProvisioningFixture() (ProvisioningService, *fakeEmployerRepo, *fakeEmployeeRepo, *fakeProviderRepo, *fakeHMORepo, *fakeEnrolleeRepo) {
	employerRepo := &fakeEmployerRepo{}
	employeeRepo := newFakeEmployeeRepo()
	providerRepo := &fakeProviderRepo{}
	hmoRepo := &fakeHMORepo{}
	enrolleeRepo := &fakeEnrolleeRepo{}

	svc := NewProvisioningService(logrus.New(), employerRepo, employeeRepo, providerRepo, hmoRepo, enrolleeRepo)
	return svc, employerRepo, employeeRepo, providerRepo, hmoRepo, enrolleeRepo
}

func testUserAndProfile(email, role string) (*entity.User, *entity.UserProfile) {
	user := &entity.User{ID: uuid.New(), Email: email}
	profile := &entity.UserProfile{ID: uuid.New(), UserID: user.ID, Role: role}
	return user, profile
}

func TestProvisionEmployer(t *testing.T) {
	svc, employerRepo, _, _, _, _ := newProvisioningFixture()
	user, profile := testUserAndProfile("hr@acme.test", entity.RoleEmployer)

	err := svc.ProvisionRoleProfile(nil, user, profile)
	require.NoError(t, err)

	require.Len(t, employerRepo.created, 1)
	created := employerRepo.created[0]
	assert.Equal(t, profile.ID, created.UserProfileID)
	assert.Equal(t, "Company for hr@acme.test", created.CompanyName)
	assert.Equal(t, user.Email, created.CompanyEmail)
}

func TestProvisionEmployeeWithoutEnrollee(t *testing.T) {
	svc, _, employeeRepo, _, _, _ := newProvisioningFixture()
	user, profile := testUserAndProfile("new@person.test", entity.RoleEmployee)

	err := svc.ProvisionRoleProfile(nil, user, profile)
	require.NoError(t, err)

	employee := employeeRepo.byUserProfileID[profile.ID]
	require.NotNil(t, employee)
	assert.False(t, employee.IsLinked())
	assert.Nil(t, employee.EmployeeID)
}

func TestProvisionEmployeeClaimsMatchingEnrollee(t *testing.T) {
	svc, _, employeeRepo, _, _, enrolleeRepo := newProvisioningFixture()

	employerID := uuid.New()
	enrolleeRepo.enrollees = append(enrolleeRepo.enrollees, &entity.Enrollee{
		ID:         uuid.New(),
		EnrolleeID: "HL-250110-0007",
		Email:      "worker@example.com",
		EmployerID: &employerID,
	})

	user, profile := testUserAndProfile("worker@example.com", entity.RoleEmployee)

	err := svc.ProvisionRoleProfile(nil, user, profile)
	require.NoError(t, err)

	employee := employeeRepo.byUserProfileID[profile.ID]
	require.NotNil(t, employee)
	assert.True(t, employee.IsLinked())
	assert.Equal(t, employerID, *employee.EmployerID)
	require.NotNil(t, employee.EmployeeID)
	assert.Equal(t, "HL-250110-0007", *employee.EmployeeID)
	assert.Equal(t, DefaultJobTitle, employee.JobTitle)
}

func TestProvisionEmployeeClaimsOldestOnDuplicateEmail(t *testing.T) {
	svc, _, employeeRepo, _, _, enrolleeRepo := newProvisioningFixture()

	employerID := uuid.New()
	older := &entity.Enrollee{
		ID:         uuid.New(),
		EnrolleeID: "HL-250101-0001",
		Email:      "dup@example.com",
		EmployerID: &employerID,
		CreatedAt:  time.Now().Add(-time.Hour),
	}
	newer := &entity.Enrollee{
		ID:         uuid.New(),
		EnrolleeID: "HL-250102-0001",
		Email:      "dup@example.com",
		EmployerID: &employerID,
	}
	enrolleeRepo.enrollees = append(enrolleeRepo.enrollees, older, newer)

	user, profile := testUserAndProfile("dup@example.com", entity.RoleEmployee)

	err := svc.ProvisionRoleProfile(nil, user, profile)
	require.NoError(t, err)

	employee := employeeRepo.byUserProfileID[profile.ID]
	require.NotNil(t, employee)
	assert.Equal(t, "HL-250101-0001", *employee.EmployeeID)
}

func TestProvisionProvider(t *testing.T) {
	svc, _, _, providerRepo, _, _ := newProvisioningFixture()
	user, profile := testUserAndProfile("clinic@care.test", entity.RoleProvider)

	err := svc.ProvisionRoleProfile(nil, user, profile)
	require.NoError(t, err)

	require.Len(t, providerRepo.created, 1)
	created := providerRepo.created[0]
	assert.Equal(t, entity.FacilityTypeHospital, created.FacilityType)
	assert.Equal(t, entity.AccreditationPending, created.AccreditationStatus)
}

func TestProvisionHMO(t *testing.T) {
	svc, _, _, _, hmoRepo, _ := newProvisioningFixture()
	user, profile := testUserAndProfile("ops@hmo.test", entity.RoleHMO)

	err := svc.ProvisionRoleProfile(nil, user, profile)
	require.NoError(t, err)

	require.Len(t, hmoRepo.created, 1)
	assert.Equal(t, "ops@hmo.test", hmoRepo.created[0].ContactEmail)
}

func TestProvisionAdminCreatesNothing(t *testing.T) {
	svc, employerRepo, employeeRepo, providerRepo, hmoRepo, _ := newProvisioningFixture()
	user, profile := testUserAndProfile("root@admin.test", entity.RoleAdmin)

	err := svc.ProvisionRoleProfile(nil, user, profile)
	require.NoError(t, err)

	assert.Empty(t, employerRepo.created)
	assert.Empty(t, employeeRepo.byUserProfileID)
	assert.Empty(t, providerRepo.created)
	assert.Empty(t, hmoRepo.created)
}

func TestProvisionUnknownRole(t *testing.T) {
	svc, _, _, _, _, _ := newProvisioningFixture()
	user, profile := testUserAndProfile("x@y.test", "SUPERHERO")

	err := svc.ProvisionRoleProfile(nil, user, profile)
	assert.Error(t, err)
}
