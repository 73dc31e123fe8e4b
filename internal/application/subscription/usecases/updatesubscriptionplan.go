package usecases

import (
	"context"
	"fmt"

	"siloops/internal/domain/subscription"
	appErrors "siloops/internal/shared/errors"
	"siloops/internal/shared/logger"
)

// UpdateSubscriptionPlanUseCase changes a company's plan. The usage counter
// and cycle dates are deliberately untouched: upgrades take effect against
// usage already accumulated in the running cycle.
type UpdateSubscriptionPlanUseCase struct {
	subscriptionRepo subscription.CompanySubscriptionRepository
	registry         subscription.PlanRegistry
	cache            SubscriptionInfoCache
	logger           logger.Interface
}

// NewUpdateSubscriptionPlanUseCase creates the plan change use case.
func NewUpdateSubscriptionPlanUseCase(
	subscriptionRepo subscription.CompanySubscriptionRepository,
	registry subscription.PlanRegistry,
	cache SubscriptionInfoCache,
	logger logger.Interface,
) *UpdateSubscriptionPlanUseCase {
	return &UpdateSubscriptionPlanUseCase{
		subscriptionRepo: subscriptionRepo,
		registry:         registry,
		cache:            cache,
		logger:           logger,
	}
}

// Execute validates the new plan and overwrites the company's plan ID.
func (uc *UpdateSubscriptionPlanUseCase) Execute(ctx context.Context, companyID string, newPlanID string) error {
	planID := subscription.PlanID(newPlanID)
	if _, err := uc.registry.GetPlan(planID); err != nil {
		return appErrors.NewValidationError(
			fmt.Sprintf("invalid plan: %s", newPlanID),
			"plan must be one of free, basic, enterprise",
		)
	}

	sub, err := uc.subscriptionRepo.GetByCompanyID(ctx, companyID)
	if err != nil {
		return fmt.Errorf("failed to load subscription state: %w", err)
	}
	if sub == nil {
		return appErrors.NewNotFoundError("company subscription not found", companyID)
	}

	previous := sub.PlanID()
	if err := sub.ChangePlan(planID); err != nil {
		return appErrors.NewValidationError(err.Error())
	}

	if err := uc.subscriptionRepo.Update(ctx, sub); err != nil {
		return fmt.Errorf("failed to persist plan change: %w", err)
	}

	if err := uc.cache.Invalidate(ctx, companyID); err != nil {
		uc.logger.Warnw("failed to invalidate subscription info cache",
			"company_id", companyID,
			"error", err,
		)
	}

	uc.logger.Infow("subscription plan updated",
		"company_id", companyID,
		"previous_plan", previous,
		"new_plan", planID,
	)
	return nil
}
