package usecases

import (
	"context"

	subUsecases "siloops/internal/application/subscription/usecases"
)

// QuotaChecker evaluates whether a company may create another operation.
type QuotaChecker interface {
	Execute(ctx context.Context, companyID string) (*subUsecases.AdmissionDecision, error)
}

// QuotaMutator advances the usage counter after an operation is recorded.
// Execute never fails the caller; ExecuteConditional reserves quota
// atomically and reports (false, nil) when the limit was reached between
// check and increment.
type QuotaMutator interface {
	Execute(ctx context.Context, companyID string) bool
	ExecuteConditional(ctx context.Context, companyID string, limit int) (bool, error)
}
