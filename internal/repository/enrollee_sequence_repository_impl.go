package repository

import (
	"time"

	"benihealth/internal/domain/entity"
	domainRepo "benihealth/internal/domain/repository"

	"gorm.io/gorm"
)

type enrolleeSequenceRepository struct{}

func NewEnrolleeSequenceRepository() domainRepo.EnrolleeSequenceRepository {
	return &enrolleeSequenceRepository{}
}

// Next relies on the row-level lock taken by ON CONFLICT DO UPDATE, so two
// transactions creating enrollees on the same day serialize on the counter
// row and can never draw the same sequence number.
func (r *enrolleeSequenceRepository) Next(db *gorm.DB, day time.Time) (int64, error) {
	var counter int64
	err := db.Raw(
		`INSERT INTO enrollee_sequences (day, counter)
		 VALUES (?, 1)
		 ON CONFLICT (day) DO UPDATE SET counter = enrollee_sequences.counter + 1
		 RETURNING counter`,
		entity.DateOnly(day),
	).Scan(&counter).Error
	if err != nil {
		return 0, err
	}
	return counter, nil
}
