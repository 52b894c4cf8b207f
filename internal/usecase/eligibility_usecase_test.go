package usecase

import (
	"testing"
	"time"

	"benihealth/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestBuildEligibilityResponse(t *testing.T) {
	enrollee := &entity.Enrollee{
		EnrolleeID:    "HL-250110-0001",
		FirstName:     "Ada",
		LastName:      "Obi",
		DOB:           time.Date(1991, 5, 20, 0, 0, 0, 0, time.UTC),
		Phone:         "+2348012345678",
		Status:        entity.EnrolleeStatusActive,
		CoverageStart: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		CoverageEnd:   time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
		Plan: entity.Plan{
			PlanCode:  "GOLD",
			Name:      "Gold Family",
			AnnualCap: decimal.NewFromInt(500000),
		},
	}

	now := time.Date(2025, 12, 21, 10, 30, 0, 0, time.UTC)
	resp := buildEligibilityResponse(enrollee, now)

	assert.Equal(t, "ELIGIBLE", resp.Status)
	assert.Equal(t, "Ada Obi", resp.Enrollee.Name)
	assert.Equal(t, "1991-05-20", resp.Enrollee.DOB)
	assert.Equal(t, "Gold Family", resp.Plan.Name)

	assert.True(t, resp.Balance.Remaining.Equal(decimal.NewFromInt(500000)))
	assert.True(t, resp.Balance.Used.IsZero())
	assert.Equal(t, 0.0, resp.Balance.PercentageUsed)

	assert.Equal(t, "2025-01-01", resp.Coverage.StartDate)
	assert.Equal(t, 10, resp.Coverage.DaysRemaining)
}

func TestBuildEligibilityResponseLastCoveredDay(t *testing.T) {
	enrollee := &entity.Enrollee{
		Status:        entity.EnrolleeStatusActive,
		CoverageStart: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		CoverageEnd:   time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
		Plan:          entity.Plan{AnnualCap: decimal.NewFromInt(100000)},
	}

	resp := buildEligibilityResponse(enrollee, time.Date(2025, 12, 31, 23, 0, 0, 0, time.UTC))
	assert.Equal(t, 0, resp.Coverage.DaysRemaining)
}
