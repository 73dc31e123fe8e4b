package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"siloops/internal/application/company/dto"
	"siloops/internal/domain/company"
	"siloops/internal/domain/subscription"
	"siloops/internal/shared/logger"
)

type mockCompanyRepo struct {
	mock.Mock
}

func (m *mockCompanyRepo) Create(ctx context.Context, c *company.Company) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *mockCompanyRepo) GetBySID(ctx context.Context, sid string) (*company.Company, error) {
	args := m.Called(ctx, sid)
	if c := args.Get(0); c != nil {
		return c.(*company.Company), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCompanyRepo) List(ctx context.Context, page, pageSize int) ([]*company.Company, int64, error) {
	args := m.Called(ctx, page, pageSize)
	if cs := args.Get(0); cs != nil {
		return cs.([]*company.Company), args.Get(1).(int64), args.Error(2)
	}
	return nil, args.Get(1).(int64), args.Error(2)
}

type mockSubscriptionRepo struct {
	mock.Mock
}

func (m *mockSubscriptionRepo) Create(ctx context.Context, sub *subscription.CompanySubscription) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *mockSubscriptionRepo) GetByCompanyID(ctx context.Context, companyID string) (*subscription.CompanySubscription, error) {
	args := m.Called(ctx, companyID)
	if sub := args.Get(0); sub != nil {
		return sub.(*subscription.CompanySubscription), args.Error(1)
	}
	return nil, args.Error(1)
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

// passthroughTx runs the function without a real database.
type passthroughTx struct{}

func (passthroughTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type testLogger struct{}

func (testLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (testLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (testLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (testLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (l testLogger) With(args ...any) logger.Interface             { return l }
func (l testLogger) Named(name string) logger.Interface            { return l }

func TestCreateCompany_ProvisionsFreeSubscription(t *testing.T) {
	companyRepo := new(mockCompanyRepo)
	subRepo := new(mockSubscriptionRepo)
	companyRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	var createdSub *subscription.CompanySubscription
	subRepo.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		createdSub = args.Get(1).(*subscription.CompanySubscription)
	}).Return(nil)

	uc := NewCreateCompanyUseCase(companyRepo, subRepo, passthroughTx{}, 30, testLogger{})
	result, err := uc.Execute(context.Background(), &dto.CreateCompanyDTO{Name: "Acopio Norte SA", TaxID: "30-11223344-5"})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, len(result.ID) > 4 && result.ID[:4] == "cmp_")
	assert.Equal(t, "active", result.Status)
	require.NotNil(t, createdSub)
	assert.Equal(t, result.ID, createdSub.CompanyID())
	assert.Equal(t, subscription.PlanFree, createdSub.PlanID())
	assert.Equal(t, 0, createdSub.OperationsCount())
}

func TestCreateCompany_SubscriptionFailureAbortsProvisioning(t *testing.T) {
	companyRepo := new(mockCompanyRepo)
	subRepo := new(mockSubscriptionRepo)
	companyRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	subRepo.On("Create", mock.Anything, mock.Anything).Return(errors.New("duplicate entry"))

	uc := NewCreateCompanyUseCase(companyRepo, subRepo, passthroughTx{}, 30, testLogger{})
	result, err := uc.Execute(context.Background(), &dto.CreateCompanyDTO{Name: "Acopio Norte SA"})

	require.Error(t, err)
	assert.Nil(t, result)
}

func TestCreateCompany_EmptyNameRejected(t *testing.T) {
	companyRepo := new(mockCompanyRepo)
	subRepo := new(mockSubscriptionRepo)

	uc := NewCreateCompanyUseCase(companyRepo, subRepo, passthroughTx{}, 30, testLogger{})
	_, err := uc.Execute(context.Background(), &dto.CreateCompanyDTO{Name: "   "})

	require.Error(t, err)
	companyRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
