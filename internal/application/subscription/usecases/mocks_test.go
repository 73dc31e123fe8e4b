package usecases

import (
	"context"

	"github.com/stretchr/testify/mock"

	"siloops/internal/application/subscription/dto"
	"siloops/internal/domain/subscription"
	"siloops/internal/shared/logger"
)

type mockSubscriptionRepo struct {
	mock.Mock
}

func (m *mockSubscriptionRepo) Create(ctx context.Context, sub *subscription.CompanySubscription) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *mockSubscriptionRepo) GetByCompanyID(ctx context.Context, companyID string) (*subscription.CompanySubscription, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*subscription.CompanySubscription), args.Error(1)
}

func (m *mockSubscriptionRepo) Update(ctx context.Context, sub *subscription.CompanySubscription) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *mockSubscriptionRepo) Delete(ctx context.Context, companyID string) error {
	args := m.Called(ctx, companyID)
	return args.Error(0)
}

func (m *mockSubscriptionRepo) IncrementIfBelow(ctx context.Context, companyID string, limit int) (bool, error) {
	args := m.Called(ctx, companyID, limit)
	return args.Bool(0), args.Error(1)
}

type mockInfoCache struct {
	mock.Mock
}

func (m *mockInfoCache) Get(ctx context.Context, companyID string) (*dto.SubscriptionInfoDTO, bool, error) {
	args := m.Called(ctx, companyID)
	var info *dto.SubscriptionInfoDTO
	if args.Get(0) != nil {
		info = args.Get(0).(*dto.SubscriptionInfoDTO)
	}
	return info, args.Bool(1), args.Error(2)
}

func (m *mockInfoCache) Set(ctx context.Context, companyID string, info *dto.SubscriptionInfoDTO) error {
	args := m.Called(ctx, companyID, info)
	return args.Error(0)
}

func (m *mockInfoCache) SetNotFound(ctx context.Context, companyID string) error {
	args := m.Called(ctx, companyID)
	return args.Error(0)
}

func (m *mockInfoCache) Invalidate(ctx context.Context, companyID string) error {
	args := m.Called(ctx, companyID)
	return args.Error(0)
}

// testLogger is a no-op logger for use case tests.
type testLogger struct{}

func (testLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (testLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (testLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (testLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (l testLogger) With(args ...any) logger.Interface             { return l }
func (l testLogger) Named(name string) logger.Interface            { return l }
