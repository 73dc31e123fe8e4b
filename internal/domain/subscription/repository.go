package subscription

import "context"

// CompanySubscriptionRepository persists per-company quota state.
// Lookups return (nil, nil) when the company has no subscription state.
type CompanySubscriptionRepository interface {
	Create(ctx context.Context, sub *CompanySubscription) error
	GetByCompanyID(ctx context.Context, companyID string) (*CompanySubscription, error)
	Update(ctx context.Context, sub *CompanySubscription) error
	Delete(ctx context.Context, companyID string) error

	// IncrementIfBelow atomically increments the cycle counter in a single
	// conditional update, applied only while the stored counter is below
	// limit. A negative limit means unconditional. Returns whether the
	// increment was applied; (false, nil) means the guard rejected it.
	IncrementIfBelow(ctx context.Context, companyID string, limit int) (bool, error)
}
