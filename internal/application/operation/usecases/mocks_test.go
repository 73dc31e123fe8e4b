package usecases

import (
	"context"

	"github.com/stretchr/testify/mock"

	subUsecases "siloops/internal/application/subscription/usecases"
	"siloops/internal/domain/operation"
	"siloops/internal/shared/logger"
)

type mockOperationRepo struct {
	mock.Mock
}

func (m *mockOperationRepo) Create(ctx context.Context, op *operation.Operation) error {
	args := m.Called(ctx, op)
	return args.Error(0)
}

func (m *mockOperationRepo) GetBySID(ctx context.Context, sid string) (*operation.Operation, error) {
	args := m.Called(ctx, sid)
	if op := args.Get(0); op != nil {
		return op.(*operation.Operation), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockOperationRepo) ListByCompany(ctx context.Context, filter operation.ListFilter) ([]*operation.Operation, int64, error) {
	args := m.Called(ctx, filter)
	if ops := args.Get(0); ops != nil {
		return ops.([]*operation.Operation), args.Get(1).(int64), args.Error(2)
	}
	return nil, args.Get(1).(int64), args.Error(2)
}

func (m *mockOperationRepo) DeleteBySID(ctx context.Context, sid string) error {
	args := m.Called(ctx, sid)
	return args.Error(0)
}

type mockQuotaChecker struct {
	mock.Mock
}

func (m *mockQuotaChecker) Execute(ctx context.Context, companyID string) (*subUsecases.AdmissionDecision, error) {
	args := m.Called(ctx, companyID)
	if d := args.Get(0); d != nil {
		return d.(*subUsecases.AdmissionDecision), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockQuotaMutator struct {
	mock.Mock
}

func (m *mockQuotaMutator) Execute(ctx context.Context, companyID string) bool {
	args := m.Called(ctx, companyID)
	return args.Bool(0)
}

func (m *mockQuotaMutator) ExecuteConditional(ctx context.Context, companyID string, limit int) (bool, error) {
	args := m.Called(ctx, companyID, limit)
	return args.Bool(0), args.Error(1)
}

type testLogger struct{}

func (testLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (testLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (testLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (testLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (l testLogger) With(args ...any) logger.Interface             { return l }
func (l testLogger) Named(name string) logger.Interface            { return l }
