package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VerifyEnrolleeRequest accepts any combination of search terms; the handler
// rejects a request where none is usable.
type VerifyEnrolleeRequest struct {
	Phone      string `json:"phone" validate:"omitempty"`
	Email      string `json:"email" validate:"omitempty"`
	EnrolleeID string `json:"enrollee_id" validate:"omitempty"`
	FirstName  string `json:"first_name" validate:"omitempty"`
	LastName   string `json:"last_name" validate:"omitempty"`
}

type VerifyEnrolleeResponse struct {
	Status   string           `json:"status"`
	Enrollee EnrolleeSummary  `json:"enrollee"`
	Plan     PlanSummary      `json:"plan"`
	Balance  BalanceSummary   `json:"balance"`
	Coverage CoverageOverview `json:"coverage"`
}

type EnrolleeSummary struct {
	ID         uuid.UUID `json:"id"`
	EnrolleeID string    `json:"enrollee_id"`
	Name       string    `json:"name"`
	DOB        string    `json:"dob"`
	Phone      string    `json:"phone"`
	Email      string    `json:"email,omitempty"`
}

type PlanSummary struct {
	Name      string          `json:"name"`
	AnnualCap decimal.Decimal `json:"annual_cap"`
}

type BalanceSummary struct {
	AnnualCap      decimal.Decimal `json:"annual_cap"`
	Used           decimal.Decimal `json:"used"`
	Remaining      decimal.Decimal `json:"remaining"`
	PercentageUsed float64         `json:"percentage_used"`
}

type CoverageOverview struct {
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	DaysRemaining int    `json:"days_remaining"`
}
