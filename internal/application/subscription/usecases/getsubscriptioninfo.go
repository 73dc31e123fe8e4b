package usecases

import (
	"context"
	"fmt"

	"siloops/internal/application/subscription/dto"
	"siloops/internal/domain/subscription"
	"siloops/internal/shared/logger"
)

// GetSubscriptionInfoUseCase builds the read-only joined view of a
// company's subscription state and plan, behind a read-through cache.
type GetSubscriptionInfoUseCase struct {
	subscriptionRepo subscription.CompanySubscriptionRepository
	registry         subscription.PlanRegistry
	cache            SubscriptionInfoCache
	logger           logger.Interface
}

// NewGetSubscriptionInfoUseCase creates the subscription info reporter.
func NewGetSubscriptionInfoUseCase(
	subscriptionRepo subscription.CompanySubscriptionRepository,
	registry subscription.PlanRegistry,
	cache SubscriptionInfoCache,
	logger logger.Interface,
) *GetSubscriptionInfoUseCase {
	return &GetSubscriptionInfoUseCase{
		subscriptionRepo: subscriptionRepo,
		registry:         registry,
		cache:            cache,
		logger:           logger,
	}
}

// Execute returns the joined view, or (nil, nil) when the company has no
// subscription state. Cache failures degrade to database reads.
func (uc *GetSubscriptionInfoUseCase) Execute(ctx context.Context, companyID string) (*dto.SubscriptionInfoDTO, error) {
	if cached, hit, err := uc.cache.Get(ctx, companyID); err != nil {
		uc.logger.Warnw("subscription info cache read failed",
			"company_id", companyID,
			"error", err,
		)
	} else if hit {
		return cached, nil
	}

	sub, err := uc.subscriptionRepo.GetByCompanyID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load subscription state: %w", err)
	}
	if sub == nil {
		if err := uc.cache.SetNotFound(ctx, companyID); err != nil {
			uc.logger.Warnw("failed to cache not-found marker",
				"company_id", companyID,
				"error", err,
			)
		}
		return nil, nil
	}

	plan, err := uc.registry.GetPlan(sub.PlanID())
	if err != nil {
		return nil, fmt.Errorf("failed to resolve plan %q: %w", sub.PlanID(), err)
	}

	info := dto.SubscriptionInfoToDTO(sub, plan)

	if err := uc.cache.Set(ctx, companyID, info); err != nil {
		uc.logger.Warnw("failed to cache subscription info",
			"company_id", companyID,
			"error", err,
		)
	}

	return info, nil
}
