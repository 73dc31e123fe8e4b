package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	appErrors "siloops/internal/shared/errors"
	"siloops/internal/domain/subscription"
)

func TestUpdateSubscriptionPlan_Upgrade(t *testing.T) {
	repo := new(mockSubscriptionRepo)
	cache := new(mockInfoCache)
	sub := subscriptionWith(t, subscription.PlanFree, 30, futureCycleEnd(), subscription.StatusActive)
	repo.On("GetByCompanyID", mock.Anything, testCompanyID).Return(sub, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)
	cache.On("Invalidate", mock.Anything, testCompanyID).Return(nil)

	uc := NewUpdateSubscriptionPlanUseCase(repo, testRegistry(t), cache, testLogger{})
	err := uc.Execute(context.Background(), testCompanyID, "basic")

	require.NoError(t, err)
	assert.Equal(t, subscription.PlanBasic, sub.PlanID())
	assert.Equal(t, 30, sub.OperationsCount())
	repo.AssertCalled(t, "Update", mock.Anything, sub)
	cache.AssertCalled(t, "Invalidate", mock.Anything, testCompanyID)
}

func TestUpdateSubscriptionPlan_InvalidPlanRejectedWithoutMutation(t *testing.T) {
	repo := new(mockSubscriptionRepo)
	cache := new(mockInfoCache)

	uc := NewUpdateSubscriptionPlanUseCase(repo, testRegistry(t), cache, testLogger{})
	err := uc.Execute(context.Background(), testCompanyID, "gold")

	require.Error(t, err)
	assert.True(t, appErrors.IsValidationError(err))
	repo.AssertNotCalled(t, "GetByCompanyID", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateSubscriptionPlan_CompanyNotFound(t *testing.T) {
	repo := new(mockSubscriptionRepo)
	cache := new(mockInfoCache)
	repo.On("GetByCompanyID", mock.Anything, "cmp_missing").Return(nil, nil)

	uc := NewUpdateSubscriptionPlanUseCase(repo, testRegistry(t), cache, testLogger{})
	err := uc.Execute(context.Background(), "cmp_missing", "enterprise")

	require.Error(t, err)
	assert.True(t, appErrors.IsNotFoundError(err))
}

func TestUpdateSubscriptionPlan_DowngradeKeepsCounter(t *testing.T) {
	repo := new(mockSubscriptionRepo)
	cache := new(mockInfoCache)
	sub := subscriptionWith(t, subscription.PlanEnterprise, 900, futureCycleEnd(), subscription.StatusActive)
	repo.On("GetByCompanyID", mock.Anything, testCompanyID).Return(sub, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)
	cache.On("Invalidate", mock.Anything, testCompanyID).Return(nil)

	uc := NewUpdateSubscriptionPlanUseCase(repo, testRegistry(t), cache, testLogger{})
	err := uc.Execute(context.Background(), testCompanyID, "basic")

	require.NoError(t, err)
	assert.Equal(t, subscription.PlanBasic, sub.PlanID())
	assert.Equal(t, 900, sub.OperationsCount())
}
