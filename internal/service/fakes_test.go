package service

import (
	"benihealth/internal/domain/entity"
	"benihealth/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// In-memory repository fakes. The db argument is ignored so tests pass nil.

type fakeUserRepo struct {
	byEmail map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]*entity.User{}}
}

func (f *fakeUserRepo) Create(db *gorm.DB, user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	f.byEmail[user.Email] = user
	return nil
}

func (f *fakeUserRepo) FindByEmail(db *gorm.DB, email string) (*entity.User, error) {
	return f.byEmail[email], nil
}

func (f *fakeUserRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(db *gorm.DB, user *entity.User) error {
	f.byEmail[user.Email] = user
	return nil
}

type fakeUserProfileRepo struct {
	byUserID map[uuid.UUID]*entity.UserProfile
}

func newFakeUserProfileRepo() *fakeUserProfileRepo {
	return &fakeUserProfileRepo{byUserID: map[uuid.UUID]*entity.UserProfile{}}
}

func (f *fakeUserProfileRepo) Create(db *gorm.DB, profile *entity.UserProfile) error {
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	f.byUserID[profile.UserID] = profile
	return nil
}

func (f *fakeUserProfileRepo) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.UserProfile, error) {
	return f.byUserID[userID], nil
}

func (f *fakeUserProfileRepo) Update(db *gorm.DB, profile *entity.UserProfile) error {
	f.byUserID[profile.UserID] = profile
	return nil
}

type fakeEmployerRepo struct {
	created []*entity.EmployerProfile
}

func (f *fakeEmployerRepo) Create(db *gorm.DB, profile *entity.EmployerProfile) error {
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	f.created = append(f.created, profile)
	return nil
}

func (f *fakeEmployerRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.EmployerProfile, error) {
	for _, p := range f.created {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeEmployerRepo) FindByUserProfileID(db *gorm.DB, userProfileID uuid.UUID) (*entity.EmployerProfile, error) {
	for _, p := range f.created {
		if p.UserProfileID == userProfileID {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeEmployerRepo) Update(db *gorm.DB, profile *entity.EmployerProfile) error {
	return nil
}

type fakeEmployeeRepo struct {
	byUserProfileID map[uuid.UUID]*entity.EmployeeProfile
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{byUserProfileID: map[uuid.UUID]*entity.EmployeeProfile{}}
}

func (f *fakeEmployeeRepo) Create(db *gorm.DB, profile *entity.EmployeeProfile) error {
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	f.byUserProfileID[profile.UserProfileID] = profile
	return nil
}

func (f *fakeEmployeeRepo) FindByUserProfileID(db *gorm.DB, userProfileID uuid.UUID) (*entity.EmployeeProfile, error) {
	return f.byUserProfileID[userProfileID], nil
}

func (f *fakeEmployeeRepo) Update(db *gorm.DB, profile *entity.EmployeeProfile) error {
	f.byUserProfileID[profile.UserProfileID] = profile
	return nil
}

type fakeProviderRepo struct {
	created []*entity.ProviderProfile
}

func (f *fakeProviderRepo) Create(db *gorm.DB, profile *entity.ProviderProfile) error {
	f.created = append(f.created, profile)
	return nil
}

func (f *fakeProviderRepo) FindByUserProfileID(db *gorm.DB, userProfileID uuid.UUID) (*entity.ProviderProfile, error) {
	for _, p := range f.created {
		if p.UserProfileID == userProfileID {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProviderRepo) Update(db *gorm.DB, profile *entity.ProviderProfile) error {
	return nil
}

type fakeHMORepo struct {
	created []*entity.HMOProfile
}

func (f *fakeHMORepo) Create(db *gorm.DB, profile *entity.HMOProfile) error {
	f.created = append(f.created, profile)
	return nil
}

func (f *fakeHMORepo) FindByUserProfileID(db *gorm.DB, userProfileID uuid.UUID) (*entity.HMOProfile, error) {
	return nil, nil
}

type fakeEnrolleeRepo struct {
	enrollees []*entity.Enrollee
}

func (f *fakeEnrolleeRepo) Create(db *gorm.DB, enrollee *entity.Enrollee) error {
	if enrollee.ID == uuid.Nil {
		enrollee.ID = uuid.New()
	}
	f.enrollees = append(f.enrollees, enrollee)
	return nil
}

func (f *fakeEnrolleeRepo) FindByEnrolleeID(db *gorm.DB, enrolleeID string) (*entity.Enrollee, error) {
	for _, e := range f.enrollees {
		if e.EnrolleeID == enrolleeID {
			return e, nil
		}
	}
	return nil, nil
}

func (f *fakeEnrolleeRepo) FindFirstByEmail(db *gorm.DB, email string) (*entity.Enrollee, error) {
	for _, e := range f.enrollees {
		if e.Email == email {
			return e, nil
		}
	}
	return nil, nil
}

func (f *fakeEnrolleeRepo) FindAllByEmployer(db *gorm.DB, employerID uuid.UUID) ([]entity.Enrollee, error) {
	var out []entity.Enrollee
	for _, e := range f.enrollees {
		if e.EmployerID != nil && *e.EmployerID == employerID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (f *fakeEnrolleeRepo) CountByEmployer(db *gorm.DB, employerID uuid.UUID) (int64, error) {
	all, _ := f.FindAllByEmployer(db, employerID)
	return int64(len(all)), nil
}

func (f *fakeEnrolleeRepo) Search(db *gorm.DB, search repository.EnrolleeSearch) (*entity.Enrollee, error) {
	for _, e := range f.enrollees {
		if search.Phone != "" && e.Phone == search.Phone {
			return e, nil
		}
		if search.EnrolleeID != "" && e.EnrolleeID == search.EnrolleeID {
			return e, nil
		}
		if search.Email != "" && e.Email == search.Email {
			return e, nil
		}
	}
	return nil, nil
}

func (f *fakeEnrolleeRepo) Update(db *gorm.DB, enrollee *entity.Enrollee) error {
	for i, e := range f.enrollees {
		if e.ID == enrollee.ID {
			f.enrollees[i] = enrollee
			return nil
		}
	}
	f.enrollees = append(f.enrollees, enrollee)
	return nil
}
