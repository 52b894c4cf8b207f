package dto

import (
	"github.com/google/uuid"
)

type EmployerProfileResponse struct {
	ID                uuid.UUID              `json:"id"`
	CompanyName       string                 `json:"company_name"`
	Industry          string                 `json:"industry,omitempty"`
	NumberOfEmployees int                    `json:"number_of_employees"`
	CompanyAddress    map[string]interface{} `json:"company_address,omitempty"`
	CompanyPhone      string                 `json:"company_phone,omitempty"`
	CompanyEmail      string                 `json:"company_email,omitempty"`
}

type EmployeeProfileResponse struct {
	ID          uuid.UUID  `json:"id"`
	EmployerID  *uuid.UUID `json:"employer_id,omitempty"`
	EmployeeID  *string    `json:"employee_id,omitempty"`
	Department  string     `json:"department,omitempty"`
	JobTitle    string     `json:"job_title,omitempty"`
	DateOfBirth string     `json:"date_of_birth,omitempty"`
}

type ProviderProfileResponse struct {
	ID                  uuid.UUID `json:"id"`
	FacilityName        string    `json:"facility_name"`
	FacilityType        string    `json:"facility_type"`
	LicenseNumber       string    `json:"license_number,omitempty"`
	AccreditationStatus string    `json:"accreditation_status"`
	ContactPhone        string    `json:"contact_phone,omitempty"`
	ContactEmail        string    `json:"contact_email,omitempty"`
}

type HMOProfileResponse struct {
	ID               uuid.UUID `json:"id"`
	HMOName          string    `json:"hmo_name"`
	HMOLicenseNumber string    `json:"hmo_license_number,omitempty"`
	ContactEmail     string    `json:"contact_email,omitempty"`
	ContactPhone     string    `json:"contact_phone,omitempty"`
}

// Dashboard projections

type EmployerDashboardResponse struct {
	Message  string            `json:"message"`
	Employer *EmployerOverview `json:"employer"`
}

type EmployerOverview struct {
	CompanyName       string `json:"company_name"`
	Industry          string `json:"industry,omitempty"`
	NumberOfEmployees int    `json:"number_of_employees"`
	EnrolleeCount     int64  `json:"enrollee_count"`
}

type EmployeeDashboardResponse struct {
	Message  string            `json:"message"`
	Employee *EmployeeOverview `json:"employee"`
}

type EmployeeOverview struct {
	EmployeeID *string `json:"employee_id,omitempty"`
	Department string  `json:"department,omitempty"`
	JobTitle   string  `json:"job_title,omitempty"`
	Employer   *string `json:"employer,omitempty"`
}
