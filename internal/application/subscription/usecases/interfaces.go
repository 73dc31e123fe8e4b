// Package usecases provides application-level use cases for subscription
// quota management: admission checks, usage counting and plan changes.
package usecases

import (
	"context"

	"siloops/internal/application/subscription/dto"
)

// SubscriptionInfoCache caches joined subscription views. Get returns
// (info, true, nil) on a hit, (nil, true, nil) when a not-found marker is
// cached, and (nil, false, nil) on a miss. Implementations must treat cache
// failures as misses on the read path.
type SubscriptionInfoCache interface {
	Get(ctx context.Context, companyID string) (*dto.SubscriptionInfoDTO, bool, error)
	Set(ctx context.Context, companyID string, info *dto.SubscriptionInfoDTO) error
	SetNotFound(ctx context.Context, companyID string) error
	Invalidate(ctx context.Context, companyID string) error
}

// NoopSubscriptionInfoCache is used when redis is disabled.
type NoopSubscriptionInfoCache struct{}

func (NoopSubscriptionInfoCache) Get(ctx context.Context, companyID string) (*dto.SubscriptionInfoDTO, bool, error) {
	return nil, false, nil
}

func (NoopSubscriptionInfoCache) Set(ctx context.Context, companyID string, info *dto.SubscriptionInfoDTO) error {
	return nil
}

func (NoopSubscriptionInfoCache) SetNotFound(ctx context.Context, companyID string) error {
	return nil
}

func (NoopSubscriptionInfoCache) Invalidate(ctx context.Context, companyID string) error {
	return nil
}
