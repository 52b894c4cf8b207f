package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateEnrolleeRequest struct {
	// EnrolleeID is optional; when empty the service generates one.
	EnrolleeID    string                 `json:"enrollee_id" validate:"omitempty,max=50"`
	FirstName     string                 `json:"first_name" validate:"required,max=100"`
	LastName      string                 `json:"last_name" validate:"required,max=100"`
	DOB           string                 `json:"dob" validate:"required,datetime=2006-01-02"`
	Gender        string                 `json:"gender" validate:"required,oneof=M F"`
	Phone         string                 `json:"phone" validate:"required,max=20"`
	Email         string                 `json:"email" validate:"omitempty,email"`
	NationalID    string                 `json:"national_id" validate:"omitempty,max=50"`
	Address       map[string]interface{} `json:"address"`
	PlanCode      string                 `json:"plan_code" validate:"required"`
	Status        string                 `json:"status" validate:"omitempty,oneof=ACTIVE SUSPENDED TERMINATED"`
	CoverageStart string                 `json:"coverage_start" validate:"required,datetime=2006-01-02"`
	CoverageEnd   string                 `json:"coverage_end" validate:"required,datetime=2006-01-02"`
}

type UpdateEnrolleeRequest struct {
	FirstName     string                 `json:"first_name" validate:"omitempty,max=100"`
	LastName      string                 `json:"last_name" validate:"omitempty,max=100"`
	Phone         string                 `json:"phone" validate:"omitempty,max=20"`
	Email         string                 `json:"email" validate:"omitempty,email"`
	NationalID    string                 `json:"national_id" validate:"omitempty,max=50"`
	Address       map[string]interface{} `json:"address"`
	Status        string                 `json:"status" validate:"omitempty,oneof=ACTIVE SUSPENDED TERMINATED"`
	CoverageStart string                 `json:"coverage_start" validate:"omitempty,datetime=2006-01-02"`
	CoverageEnd   string                 `json:"coverage_end" validate:"omitempty,datetime=2006-01-02"`
}

type EnrolleeResponse struct {
	ID            uuid.UUID              `json:"id"`
	EnrolleeID    string                 `json:"enrollee_id"`
	FirstName     string                 `json:"first_name"`
	LastName      string                 `json:"last_name"`
	DOB           string                 `json:"dob"`
	Gender        string                 `json:"gender"`
	Phone         string                 `json:"phone"`
	Email         string                 `json:"email,omitempty"`
	NationalID    string                 `json:"national_id,omitempty"`
	Address       map[string]interface{} `json:"address,omitempty"`
	EmployerID    *uuid.UUID             `json:"employer_id,omitempty"`
	Plan          *PlanResponse          `json:"plan_details,omitempty"`
	Status        string                 `json:"status"`
	CoverageStart string                 `json:"coverage_start"`
	CoverageEnd   string                 `json:"coverage_end"`
	IsActive      bool                   `json:"is_active"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`
}

// Bulk import

type BulkRowError struct {
	Row   int    `json:"row"`
	Error string `json:"error"`
}

type BulkImportResult struct {
	TotalRows int            `json:"total_rows"`
	Created   int            `json:"created"`
	Failed    int            `json:"failed"`
	Errors    []BulkRowError `json:"errors,omitempty"`
}
