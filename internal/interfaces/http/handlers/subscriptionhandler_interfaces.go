package handlers

import (
	"context"

	subdto "siloops/internal/application/subscription/dto"
	subUsecases "siloops/internal/application/subscription/usecases"
)

// Use case interfaces for SubscriptionHandler

type getSubscriptionInfoUseCase interface {
	Execute(ctx context.Context, companyID string) (*subdto.SubscriptionInfoDTO, error)
}

type checkOperationLimitUseCase interface {
	Execute(ctx context.Context, companyID string) (*subUsecases.AdmissionDecision, error)
}

type updateSubscriptionPlanUseCase interface {
	Execute(ctx context.Context, companyID string, newPlanID string) error
}
