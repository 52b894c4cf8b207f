package converter

import (
	"benihealth/internal/delivery/dto"
	"benihealth/internal/domain/entity"
)

func PlanToResponse(p *entity.Plan) *dto.PlanResponse {
	if p == nil {
		return nil
	}
	return &dto.PlanResponse{
		ID:               p.ID,
		PlanCode:         p.PlanCode,
		Name:             p.Name,
		Description:      p.Description,
		AnnualCap:        p.AnnualCap,
		VisitCap:         p.VisitCap,
		CoveredServices:  p.CoveredServices,
		CoPayRules:       p.CoPayRules,
		ReferralRequired: p.ReferralRequired,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}
