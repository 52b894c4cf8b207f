package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreatePlanRequest struct {
	PlanCode         string                 `json:"plan_code" validate:"required,max=50"`
	Name             string                 `json:"name" validate:"required,max=200"`
	Description      string                 `json:"description" validate:"omitempty"`
	AnnualCap        decimal.Decimal        `json:"annual_cap" validate:"required"`
	VisitCap         int                    `json:"visit_cap" validate:"required,min=1"`
	CoveredServices  []interface{}          `json:"covered_services"`
	CoPayRules       map[string]interface{} `json:"co_pay_rules"`
	ReferralRequired bool                   `json:"referral_required"`
}

type UpdatePlanRequest struct {
	Name             string                 `json:"name" validate:"omitempty,max=200"`
	Description      string                 `json:"description" validate:"omitempty"`
	AnnualCap        *decimal.Decimal       `json:"annual_cap"`
	VisitCap         *int                   `json:"visit_cap" validate:"omitempty,min=1"`
	CoveredServices  []interface{}          `json:"covered_services"`
	CoPayRules       map[string]interface{} `json:"co_pay_rules"`
	ReferralRequired *bool                  `json:"referral_required"`
}

type PlanResponse struct {
	ID               uuid.UUID              `json:"id"`
	PlanCode         string                 `json:"plan_code"`
	Name             string                 `json:"name"`
	Description      string                 `json:"description,omitempty"`
	AnnualCap        decimal.Decimal        `json:"annual_cap"`
	VisitCap         int                    `json:"visit_cap"`
	CoveredServices  []interface{}          `json:"covered_services,omitempty"`
	CoPayRules       map[string]interface{} `json:"co_pay_rules,omitempty"`
	ReferralRequired bool                   `json:"referral_required"`
	CreatedAt        time.Time              `json:"created_at"`
	UpdatedAt        time.Time              `json:"updated_at"`
}
