package repository

import (
	"benihealth/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EnrolleeSearch carries the eligibility lookup terms a provider may supply.
// At least one of phone/email/enrollee ID/full name must be set.
type EnrolleeSearch struct {
	Phone      string
	Email      string
	EnrolleeID string
	FirstName  string
	LastName   string
}

// IsEmpty reports whether no usable search term was supplied.
func (s EnrolleeSearch) IsEmpty() bool {
	return s.Phone == "" && s.Email == "" && s.EnrolleeID == "" &&
		(s.FirstName == "" || s.LastName == "")
}

type EnrolleeRepository interface {
	Create(db *gorm.DB, enrollee *entity.Enrollee) error
	// FindByEnrolleeID returns (nil, nil) when no enrollee matches.
	FindByEnrolleeID(db *gorm.DB, enrolleeID string) (*entity.Enrollee, error)
	// FindFirstByEmail returns the oldest enrollee with the exact email, or
	// (nil, nil). Duplicate emails are not expected but must not error.
	FindFirstByEmail(db *gorm.DB, email string) (*entity.Enrollee, error)
	FindAllByEmployer(db *gorm.DB, employerID uuid.UUID) ([]entity.Enrollee, error)
	CountByEmployer(db *gorm.DB, employerID uuid.UUID) (int64, error)
	// Search returns the first enrollee matching any of the supplied terms
	// (case-insensitive partial match), with the plan preloaded, or (nil, nil).
	Search(db *gorm.DB, search EnrolleeSearch) (*entity.Enrollee, error)
	Update(db *gorm.DB, enrollee *entity.Enrollee) error
}
