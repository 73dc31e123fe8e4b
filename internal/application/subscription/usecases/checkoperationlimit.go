package usecases

import (
	"context"
	"fmt"
	"time"

	"siloops/internal/domain/subscription"
	appErrors "siloops/internal/shared/errors"
	"siloops/internal/shared/logger"
)

// AdmissionDecision is the outcome of a quota check for a prospective
// operation. Remaining is -1 for unlimited plans. ErrorMessage is empty
// when the operation is admitted.
type AdmissionDecision struct {
	CanCreate    bool
	PlanID       subscription.PlanID
	PlanName     string
	CurrentCount int
	Limit        int
	Remaining    int
	ErrorMessage string
}

// CheckOperationLimitUseCase decides whether a company may create another
// operation in the current billing cycle. It is a pure read: repeated calls
// without an intervening increment return identical decisions, and no quota
// state is written. Rollover of an expired cycle is only simulated here; the
// persisted reset happens on the increment path.
type CheckOperationLimitUseCase struct {
	subscriptionRepo subscription.CompanySubscriptionRepository
	registry         subscription.PlanRegistry
	logger           logger.Interface
}

// NewCheckOperationLimitUseCase creates the quota evaluator.
func NewCheckOperationLimitUseCase(
	subscriptionRepo subscription.CompanySubscriptionRepository,
	registry subscription.PlanRegistry,
	logger logger.Interface,
) *CheckOperationLimitUseCase {
	return &CheckOperationLimitUseCase{
		subscriptionRepo: subscriptionRepo,
		registry:         registry,
		logger:           logger,
	}
}

// Execute evaluates admission for the given company. Storage failures
// propagate so the caller fails closed; a missing company maps to a 404.
func (uc *CheckOperationLimitUseCase) Execute(ctx context.Context, companyID string) (*AdmissionDecision, error) {
	sub, err := uc.subscriptionRepo.GetByCompanyID(ctx, companyID)
	if err != nil {
		uc.logger.Errorw("failed to load subscription state for admission check",
			"company_id", companyID,
			"error", err,
		)
		return nil, fmt.Errorf("failed to load subscription state: %w", err)
	}
	if sub == nil {
		return nil, appErrors.NewNotFoundError("company subscription not found", companyID)
	}

	plan, err := uc.registry.GetPlan(sub.PlanID())
	if err != nil {
		uc.logger.Errorw("subscription references unknown plan",
			"company_id", companyID,
			"plan_id", sub.PlanID(),
			"error", err,
		)
		return nil, fmt.Errorf("failed to resolve plan %q: %w", sub.PlanID(), err)
	}

	now := time.Now().UTC()
	effectiveCount := sub.EffectiveOperationsCount(now)
	limit := plan.MonthlyOperationLimit()

	decision := &AdmissionDecision{
		PlanID:       plan.ID(),
		PlanName:     plan.DisplayName(),
		CurrentCount: effectiveCount,
		Limit:        limit,
	}

	if plan.IsUnlimited() {
		decision.CanCreate = true
		decision.Remaining = subscription.UnlimitedOperations
	} else {
		decision.CanCreate = effectiveCount < limit
		decision.Remaining = max(0, limit-effectiveCount)
		if !decision.CanCreate {
			decision.ErrorMessage = fmt.Sprintf(
				"Monthly limit of %d operations reached for plan %s", limit, plan.DisplayName())
		}
	}

	// A non-active subscription blocks creation regardless of quota.
	if !sub.IsActive() {
		decision.CanCreate = false
		decision.ErrorMessage = fmt.Sprintf("Subscription is %s; operation creation is disabled", sub.Status())
	}

	return decision, nil
}
