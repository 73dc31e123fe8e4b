package usecases

import (
	"context"

	"siloops/internal/application/subscription/dto"
	"siloops/internal/domain/subscription"
)

// ListPlansUseCase exposes the public plan catalog in stable display order.
type ListPlansUseCase struct {
	registry subscription.PlanRegistry
}

func NewListPlansUseCase(registry subscription.PlanRegistry) *ListPlansUseCase {
	return &ListPlansUseCase{registry: registry}
}

func (uc *ListPlansUseCase) Execute(ctx context.Context) []*dto.PlanDTO {
	return dto.PlansToDTOs(uc.registry.AllPlans())
}
