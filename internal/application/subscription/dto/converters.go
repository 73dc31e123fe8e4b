package dto

import (
	"siloops/internal/domain/subscription"
)

// PlanToDTO converts a plan definition to its transport shape.
func PlanToDTO(plan subscription.Plan) *PlanDTO {
	return &PlanDTO{
		ID:                    plan.ID().String(),
		Name:                  plan.DisplayName(),
		MonthlyOperationLimit: plan.MonthlyOperationLimit(),
		MonthlyPrice:          float64(plan.MonthlyPriceCents()) / 100,
		Features:              plan.Features(),
	}
}

// PlansToDTOs converts a catalog slice preserving order.
func PlansToDTOs(plans []subscription.Plan) []*PlanDTO {
	out := make([]*PlanDTO, 0, len(plans))
	for _, p := range plans {
		out = append(out, PlanToDTO(p))
	}
	return out
}

// SubscriptionInfoToDTO joins subscription state with its plan definition.
func SubscriptionInfoToDTO(sub *subscription.CompanySubscription, plan subscription.Plan) *SubscriptionInfoDTO {
	return &SubscriptionInfoDTO{
		CompanyID:    sub.CompanyID(),
		Plan:         sub.PlanID().String(),
		PlanName:     plan.DisplayName(),
		MonthlyPrice: float64(plan.MonthlyPriceCents()) / 100,
		Features:     plan.Features(),
		Status:       sub.Status().String(),
		CurrentCount: sub.OperationsCount(),
		Limit:        plan.MonthlyOperationLimit(),
		CycleStart:   sub.CycleStart(),
		CycleEnd:     sub.CycleEnd(),
	}
}
