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

func newLinkingFixture() (LinkingService, *fakeUserRepo, *fakeUserProfileRepo, *fakeEmployeeRepo) {
	userRepo := newFakeUserRepo()
	userProfileRepo := newFakeUserProfileRepo()
	employeeRepo := newFakeEmployeeRepo()

	svc := NewLinkingService(logrus.New(), userRepo, userProfileRepo, employeeRepo)
	return svc, userRepo, userProfileRepo, employeeRepo
}

func registeredEmployee(userRepo *fakeUserRepo, userProfileRepo *fakeUserProfileRepo, email string) *entity.UserProfile {
	user := &entity.User{ID: uuid.New(), Email: email}
	userRepo.byEmail[email] = user

	profile := &entity.UserProfile{ID: uuid.New(), UserID: user.ID, Role: entity.RoleEmployee}
	userProfileRepo.byUserID[user.ID] = profile
	return profile
}

func testEnrollee(email string) *entity.Enrollee {
	employerID := uuid.New()
	return &entity.Enrollee{
		ID:         uuid.New(),
		EnrolleeID: "HL-250110-0001",
		Email:      email,
		EmployerID: &employerID,
		DOB:        time.Date(1990, 4, 2, 0, 0, 0, 0, time.UTC),
	}
}

func TestLinkSkipsEnrolleeWithoutEmail(t *testing.T) {
	svc, _, _, employeeRepo := newLinkingFixture()

	enrollee := testEnrollee("")
	err := svc.LinkEnrolleeToAccount(nil, enrollee)

	require.NoError(t, err)
	assert.Empty(t, employeeRepo.byUserProfileID)
}

func TestLinkSkipsWhenNoAccountExists(t *testing.T) {
	svc, _, _, employeeRepo := newLinkingFixture()

	err := svc.LinkEnrolleeToAccount(nil, testEnrollee("nobody@example.com"))

	require.NoError(t, err)
	assert.Empty(t, employeeRepo.byUserProfileID)
}

func TestLinkSkipsNonEmployeeAccount(t *testing.T) {
	svc, userRepo, userProfileRepo, employeeRepo := newLinkingFixture()

	profile := registeredEmployee(userRepo, userProfileRepo, "boss@example.com")
	profile.Role = entity.RoleEmployer

	err := svc.LinkEnrolleeToAccount(nil, testEnrollee("boss@example.com"))

	require.NoError(t, err)
	assert.Empty(t, employeeRepo.byUserProfileID)
}

func TestLinkBackfillsUnlinkedProfile(t *testing.T) {
	svc, userRepo, userProfileRepo, employeeRepo := newLinkingFixture()

	profile := registeredEmployee(userRepo, userProfileRepo, "worker@example.com")
	employeeRepo.byUserProfileID[profile.ID] = &entity.EmployeeProfile{
		ID:            uuid.New(),
		UserProfileID: profile.ID,
	}

	enrollee := testEnrollee("worker@example.com")
	err := svc.LinkEnrolleeToAccount(nil, enrollee)
	require.NoError(t, err)

	employee := employeeRepo.byUserProfileID[profile.ID]
	assert.True(t, employee.IsLinked())
	assert.Equal(t, *enrollee.EmployerID, *employee.EmployerID)
	assert.Equal(t, enrollee.EnrolleeID, *employee.EmployeeID)
	require.NotNil(t, employee.DateOfBirth)
	assert.Equal(t, enrollee.DOB, *employee.DateOfBirth)
}

func TestLinkCreatesProfileWhenMissing(t *testing.T) {
	svc, userRepo, userProfileRepo, employeeRepo := newLinkingFixture()

	profile := registeredEmployee(userRepo, userProfileRepo, "worker@example.com")

	enrollee := testEnrollee("worker@example.com")
	err := svc.LinkEnrolleeToAccount(nil, enrollee)
	require.NoError(t, err)

	employee := employeeRepo.byUserProfileID[profile.ID]
	require.NotNil(t, employee)
	assert.True(t, employee.IsLinked())
	assert.Equal(t, enrollee.EnrolleeID, *employee.EmployeeID)
}

func TestLinkNeverOverwritesExistingLink(t *testing.T) {
	svc, userRepo, userProfileRepo, employeeRepo := newLinkingFixture()

	profile := registeredEmployee(userRepo, userProfileRepo, "worker@example.com")

	originalEmployer := uuid.New()
	originalEmployeeID := "HL-240101-0009"
	employeeRepo.byUserProfileID[profile.ID] = &entity.EmployeeProfile{
		ID:            uuid.New(),
		UserProfileID: profile.ID,
		EmployerID:    &originalEmployer,
		EmployeeID:    &originalEmployeeID,
	}

	err := svc.LinkEnrolleeToAccount(nil, testEnrollee("worker@example.com"))
	require.NoError(t, err)

	employee := employeeRepo.byUserProfileID[profile.ID]
	assert.Equal(t, originalEmployer, *employee.EmployerID)
	assert.Equal(t, originalEmployeeID, *employee.EmployeeID)
}

// Both claim directions must converge on the same linked state no matter
// which record exists first.
func TestClaimIsSymmetric(t *testing.T) {
	employerID := uuid.New()

	t.Run("enrollee first, then registration", func(t *testing.T) {
		svc, _, employeeRepo, _, _, enrolleeRepo := newProvisioningFixture()

		enrolleeRepo.enrollees = append(enrolleeRepo.enrollees, &entity.Enrollee{
			ID:         uuid.New(),
			EnrolleeID: "HL-250110-0001",
			Email:      "sym@example.com",
			EmployerID: &employerID,
		})

		user, profile := testUserAndProfile("sym@example.com", entity.RoleEmployee)
		require.NoError(t, svc.ProvisionRoleProfile(nil, user, profile))

		employee := employeeRepo.byUserProfileID[profile.ID]
		require.NotNil(t, employee)
		assert.Equal(t, employerID, *employee.EmployerID)
		assert.Equal(t, "HL-250110-0001", *employee.EmployeeID)
	})

	t.Run("registration first, then enrollment", func(t *testing.T) {
		svc, userRepo, userProfileRepo, employeeRepo := newLinkingFixture()

		profile := registeredEmployee(userRepo, userProfileRepo, "sym@example.com")
		employeeRepo.byUserProfileID[profile.ID] = &entity.EmployeeProfile{
			ID:            uuid.New(),
			UserProfileID: profile.ID,
		}

		enrollee := testEnrollee("sym@example.com")
		enrollee.EmployerID = &employerID
		require.NoError(t, svc.LinkEnrolleeToAccount(nil, enrollee))

		employee := employeeRepo.byUserProfileID[profile.ID]
		assert.Equal(t, employerID, *employee.EmployerID)
		assert.Equal(t, enrollee.EnrolleeID, *employee.EmployeeID)
	})
}
