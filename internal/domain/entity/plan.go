package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Plan defines what an insurance product covers, its limits and rules.
// Plans are referenced, never owned, by enrollees.
type Plan struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PlanCode         string          `gorm:"type:varchar(50);uniqueIndex;not null" json:"plan_code"`
	Name             string          `gorm:"type:varchar(200);not null" json:"name"`
	Description      string          `gorm:"type:text" json:"description,omitempty"`
	AnnualCap        decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"annual_cap"`
	VisitCap         int             `gorm:"not null" json:"visit_cap"`
	CoveredServices  JSONList        `gorm:"type:jsonb" json:"covered_services,omitempty"`
	CoPayRules       JSON            `gorm:"type:jsonb" json:"co_pay_rules,omitempty"`
	ReferralRequired bool            `gorm:"not null;default:false" json:"referral_required"`
	CreatedAt        time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Enrollees []Enrollee `gorm:"foreignKey:PlanID" json:"enrollees,omitempty"`
}

func (Plan) TableName() string {
	return "plans"
}
