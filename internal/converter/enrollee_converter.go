package converter

import (
	"time"

	"benihealth/internal/delivery/dto"
	"benihealth/internal/domain/entity"
)

// EnrolleeToResponse converts an Enrollee entity to its response DTO. The
// plan is included when preloaded; is_active is evaluated against now.
func EnrolleeToResponse(e *entity.Enrollee, now time.Time) *dto.EnrolleeResponse {
	if e == nil {
		return nil
	}

	response := &dto.EnrolleeResponse{
		ID:            e.ID,
		EnrolleeID:    e.EnrolleeID,
		FirstName:     e.FirstName,
		LastName:      e.LastName,
		DOB:           e.DOB.Format("2006-01-02"),
		Gender:        e.Gender,
		Phone:         e.Phone,
		Email:         e.Email,
		NationalID:    e.NationalID,
		Address:       e.Address,
		EmployerID:    e.EmployerID,
		Status:        string(e.Status),
		CoverageStart: e.CoverageStart.Format("2006-01-02"),
		CoverageEnd:   e.CoverageEnd.Format("2006-01-02"),
		IsActive:      e.IsCoverageActive(now),
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}

	if e.Plan.PlanCode != "" {
		response.Plan = PlanToResponse(&e.Plan)
	}

	return response
}
