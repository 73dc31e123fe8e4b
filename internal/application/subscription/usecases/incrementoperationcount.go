package usecases

import (
	"context"
	"fmt"
	"time"

	"siloops/internal/domain/subscription"
	"siloops/internal/shared/logger"
)

// IncrementOperationCountUseCase records that an operation was created,
// advancing the company's cycle counter and rolling the cycle over when it
// has expired. It must run only after the operation row is durable.
type IncrementOperationCountUseCase struct {
	subscriptionRepo subscription.CompanySubscriptionRepository
	cache            SubscriptionInfoCache
	cycleDays        int
	logger           logger.Interface
}

// NewIncrementOperationCountUseCase creates the usage counter mutator.
func NewIncrementOperationCountUseCase(
	subscriptionRepo subscription.CompanySubscriptionRepository,
	cache SubscriptionInfoCache,
	cycleDays int,
	logger logger.Interface,
) *IncrementOperationCountUseCase {
	if cycleDays <= 0 {
		cycleDays = subscription.DefaultCycleDays
	}
	return &IncrementOperationCountUseCase{
		subscriptionRepo: subscriptionRepo,
		cache:            cache,
		cycleDays:        cycleDays,
		logger:           logger,
	}
}

// Execute is the soft-limit increment: load, roll over if expired, add one,
// persist. Bookkeeping failures are logged and reported as false, never as
// an error; the already-created operation stands and the counter may
// temporarily undercount.
func (uc *IncrementOperationCountUseCase) Execute(ctx context.Context, companyID string) bool {
	sub, err := uc.subscriptionRepo.GetByCompanyID(ctx, companyID)
	if err != nil {
		uc.logger.Errorw("failed to load subscription state for usage increment",
			"company_id", companyID,
			"error", err,
		)
		return false
	}
	if sub == nil {
		uc.logger.Warnw("usage increment for company without subscription state",
			"company_id", companyID,
		)
		return false
	}

	now := time.Now().UTC()
	if sub.CycleExpired(now) {
		sub.RolloverCycle(now, uc.cycleDays)
		uc.logger.Infow("billing cycle rolled over",
			"company_id", companyID,
			"cycle_start", sub.CycleStart(),
			"cycle_end", sub.CycleEnd(),
		)
	}

	sub.IncrementOperationsCount()

	if err := uc.subscriptionRepo.Update(ctx, sub); err != nil {
		uc.logger.Errorw("failed to persist usage increment",
			"company_id", companyID,
			"error", err,
		)
		return false
	}

	uc.invalidateCache(ctx, companyID)
	return true
}

// ExecuteConditional is the atomic variant: after ensuring the cycle is
// current it applies a single conditional increment that only succeeds while
// the stored counter is below limit. (false, nil) is a late rejection: the
// caller lost the race against the quota boundary and must roll back the
// operation it just created. A negative limit increments unconditionally.
func (uc *IncrementOperationCountUseCase) ExecuteConditional(ctx context.Context, companyID string, limit int) (bool, error) {
	sub, err := uc.subscriptionRepo.GetByCompanyID(ctx, companyID)
	if err != nil {
		return false, fmt.Errorf("failed to load subscription state: %w", err)
	}
	if sub == nil {
		return false, subscription.ErrCompanyNotFound
	}

	now := time.Now().UTC()
	if sub.CycleExpired(now) {
		sub.RolloverCycle(now, uc.cycleDays)
		if err := uc.subscriptionRepo.Update(ctx, sub); err != nil {
			return false, fmt.Errorf("failed to persist cycle rollover: %w", err)
		}
		uc.logger.Infow("billing cycle rolled over",
			"company_id", companyID,
			"cycle_start", sub.CycleStart(),
			"cycle_end", sub.CycleEnd(),
		)
	}

	applied, err := uc.subscriptionRepo.IncrementIfBelow(ctx, companyID, limit)
	if err != nil {
		return false, fmt.Errorf("failed to apply conditional increment: %w", err)
	}

	if applied {
		uc.invalidateCache(ctx, companyID)
	}
	return applied, nil
}

func (uc *IncrementOperationCountUseCase) invalidateCache(ctx context.Context, companyID string) {
	if err := uc.cache.Invalidate(ctx, companyID); err != nil {
		uc.logger.Warnw("failed to invalidate subscription info cache",
			"company_id", companyID,
			"error", err,
		)
	}
}
