package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"siloops/internal/domain/subscription"
	appErrors "siloops/internal/shared/errors"
)

const testCompanyID = "cmp_test123"

func testRegistry(t *testing.T) subscription.PlanRegistry {
	t.Helper()
	free, err := subscription.NewPlan(subscription.PlanFree, "Free", 50, 0, nil)
	require.NoError(t, err)
	basic, err := subscription.NewPlan(subscription.PlanBasic, "Basic", 500, 4990, nil)
	require.NoError(t, err)
	enterprise, err := subscription.NewPlan(subscription.PlanEnterprise, "Enterprise", subscription.UnlimitedOperations, 29900, nil)
	require.NoError(t, err)
	registry, err := subscription.NewPlanRegistry([]subscription.Plan{free, basic, enterprise})
	require.NoError(t, err)
	return registry
}

func subscriptionWith(t *testing.T, planID subscription.PlanID, count int, cycleEnd time.Time, status subscription.Status) *subscription.CompanySubscription {
	t.Helper()
	now := time.Now().UTC()
	sub, err := subscription.ReconstructCompanySubscription(
		1, testCompanyID, planID, count,
		cycleEnd.AddDate(0, 0, -subscription.DefaultCycleDays), cycleEnd,
		status, nil, 1, now.AddDate(0, -2, 0), now,
	)
	require.NoError(t, err)
	return sub
}

func futureCycleEnd() time.Time {
	return time.Now().UTC().Add(24 * time.Hour)
}

func TestCheckOperationLimit_AtLimit(t *testing.T) {
	repo := new(mockSubscriptionRepo)
	sub := subscriptionWith(t, subscription.PlanBasic, 500, futureCycleEnd(), subscription.StatusActive)
	repo.On("GetByCompanyID", mock.Anything, testCompanyID).Return(sub, nil)

	uc := NewCheckOperationLimitUseCase(repo, testRegistry(t), testLogger{})
	decision, err := uc.Execute(context.Background(), testCompanyID)

	require.NoError(t, err)
	assert.False(t, decision.CanCreate)
	assert.Equal(t, 0, decision.Remaining)
	assert.Equal(t, 500, decision.CurrentCount)
	assert.Equal(t, 500, decision.Limit)
	assert.Contains(t, decision.ErrorMessage, "Monthly limit of 500 operations reached")
	assert.Contains(t, decision.ErrorMessage, "Basic")
}

func TestCheckOperationLimit_OneBelowLimit(t *testing.T) {
	repo := new(mockSubscriptionRepo)
	sub := subscriptionWith(t, subscription.PlanBasic, 499, futureCycleEnd(), subscription.StatusActive)
	repo.On("GetByCompanyID", mock.Anything, testCompanyID).Return(sub, nil)

	uc := NewCheckOperationLimitUseCase(repo, testRegistry(t), testLogger{})
	decision, err := uc.Execute(context.Background(), testCompanyID)

	require.NoError(t, err)
	assert.True(t, decision.CanCreate)
	assert.Equal(t, 1, decision.Remaining)
	assert.Empty(t, decision.ErrorMessage)
}

func TestCheckOperationLimit_UnlimitedPlan(t *testing.T) {
	repo := new(mockSubscriptionRepo)
	// An absurdly high counter must not matter on the unlimited tier.
	sub := subscriptionWith(t, subscription.PlanEnterprise, 1_000_000, futureCycleEnd(), subscription.StatusActive)
	repo.On("GetByCompanyID", mock.Anything, testCompanyID).Return(sub, nil)

	uc := NewCheckOperationLimitUseCase(repo, testRegistry(t), testLogger{})
	decision, err := uc.Execute(context.Background(), testCompanyID)

	require.NoError(t, err)
	assert.True(t, decision.CanCreate)
	assert.Equal(t, subscription.UnlimitedOperations, decision.Remaining)
	assert.Equal(t, subscription.UnlimitedOperations, decision.Limit)
}

func TestCheckOperationLimit_ExpiredCycleReadsAsZero(t *testing.T) {
	repo := new(mockSubscriptionRepo)
	pastEnd := time.Now().UTC().Add(-time.Hour)
	sub := subscriptionWith(t, subscription.PlanBasic, 500, pastEnd, subscription.StatusActive)
	repo.On("GetByCompanyID", mock.Anything, testCompanyID).Return(sub, nil)

	uc := NewCheckOperationLimitUseCase(repo, testRegistry(t), testLogger{})
	decision, err := uc.Execute(context.Background(), testCompanyID)

	require.NoError(t, err)
	assert.True(t, decision.CanCreate)
	assert.Equal(t, 0, decision.CurrentCount)
	assert.Equal(t, 500, decision.Remaining)
	// The evaluator never persists the rollover.
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	assert.Equal(t, 500, sub.OperationsCount())
}

func TestCheckOperationLimit_SuspendedBlocksEvenBelowLimit(t *testing.T) {
	for _, status := range []subscription.Status{subscription.StatusSuspended, subscription.StatusCancelled} {
		repo := new(mockSubscriptionRepo)
		sub := subscriptionWith(t, subscription.PlanBasic, 1, futureCycleEnd(), status)
		repo.On("GetByCompanyID", mock.Anything, testCompanyID).Return(sub, nil)

		uc := NewCheckOperationLimitUseCase(repo, testRegistry(t), testLogger{})
		decision, err := uc.Execute(context.Background(), testCompanyID)

		require.NoError(t, err)
		assert.False(t, decision.CanCreate)
		assert.Contains(t, decision.ErrorMessage, string(status))
	}
}

func TestCheckOperationLimit_Idempotent(t *testing.T) {
	repo := new(mockSubscriptionRepo)
	sub := subscriptionWith(t, subscription.PlanBasic, 123, futureCycleEnd(), subscription.StatusActive)
	repo.On("GetByCompanyID", mock.Anything, testCompanyID).Return(sub, nil)

	uc := NewCheckOperationLimitUseCase(repo, testRegistry(t), testLogger{})

	first, err := uc.Execute(context.Background(), testCompanyID)
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), testCompanyID)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "IncrementIfBelow", mock.Anything, mock.Anything, mock.Anything)
}

func TestCheckOperationLimit_CompanyNotFound(t *testing.T) {
	repo := new(mockSubscriptionRepo)
	repo.On("GetByCompanyID", mock.Anything, "cmp_missing").Return(nil, nil)

	uc := NewCheckOperationLimitUseCase(repo, testRegistry(t), testLogger{})
	decision, err := uc.Execute(context.Background(), "cmp_missing")

	assert.Nil(t, decision)
	assert.True(t, appErrors.IsNotFoundError(err))
}

// Storage failures propagate so the HTTP layer fails closed with a 500
// instead of silently admitting the operation.
func TestCheckOperationLimit_StorageFailureFailsClosed(t *testing.T) {
	repo := new(mockSubscriptionRepo)
	repo.On("GetByCompanyID", mock.Anything, testCompanyID).Return(nil, errors.New("connection reset"))

	uc := NewCheckOperationLimitUseCase(repo, testRegistry(t), testLogger{})
	decision, err := uc.Execute(context.Background(), testCompanyID)

	assert.Nil(t, decision)
	assert.Error(t, err)
	assert.False(t, appErrors.IsNotFoundError(err))
}
