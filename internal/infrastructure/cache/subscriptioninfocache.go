// Package cache contains Redis-backed read caches.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/redis/go-redis/v9"

	"siloops/internal/application/subscription/dto"
	"siloops/internal/shared/logger"
)

const (
	infoKeyPrefix = "subscription:info:"
	baseInfoTTL   = 5 * time.Minute
	infoTTLJitter = 2 * time.Minute // anti-stampede
	// Short TTL for not-found markers so repeated lookups for companies
	// without quota state do not hammer the database (anti-penetration).
	nullMarkerTTL   = 2 * time.Minute
	nullMarkerValue = "_null"
)

// RedisSubscriptionInfoCache caches subscription info DTOs as JSON values.
type RedisSubscriptionInfoCache struct {
	client *redis.Client
	logger logger.Interface
}

// NewRedisSubscriptionInfoCache creates a Redis-backed subscription info cache.
func NewRedisSubscriptionInfoCache(client *redis.Client, logger logger.Interface) *RedisSubscriptionInfoCache {
	return &RedisSubscriptionInfoCache{client: client, logger: logger}
}

func (c *RedisSubscriptionInfoCache) key(companyID string) string {
	return infoKeyPrefix + companyID
}

// Get returns (info, hit, err). A hit with a nil info means the company was
// recently confirmed absent.
func (c *RedisSubscriptionInfoCache) Get(ctx context.Context, companyID string) (*dto.SubscriptionInfoDTO, bool, error) {
	raw, err := c.client.Get(ctx, c.key(companyID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get subscription info from cache: %w", err)
	}

	if raw == nullMarkerValue {
		return nil, true, nil
	}

	var info dto.SubscriptionInfoDTO
	if err := json.Unmarshal([]byte(raw), &info); err != nil {
		c.logger.Warnw("corrupt subscription info cache entry, dropping", "company_id", companyID, "error", err)
		c.client.Del(ctx, c.key(companyID))
		return nil, false, nil
	}

	return &info, true, nil
}

func (c *RedisSubscriptionInfoCache) Set(ctx context.Context, companyID string, info *dto.SubscriptionInfoDTO) error {
	raw, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to marshal subscription info: %w", err)
	}

	ttl := baseInfoTTL + time.Duration(rand.Int64N(int64(infoTTLJitter)))
	if err := c.client.Set(ctx, c.key(companyID), raw, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache subscription info: %w", err)
	}
	return nil
}

func (c *RedisSubscriptionInfoCache) SetNotFound(ctx context.Context, companyID string) error {
	if err := c.client.Set(ctx, c.key(companyID), nullMarkerValue, nullMarkerTTL).Err(); err != nil {
		return fmt.Errorf("failed to cache not-found marker: %w", err)
	}
	return nil
}

func (c *RedisSubscriptionInfoCache) Invalidate(ctx context.Context, companyID string) error {
	if err := c.client.Del(ctx, c.key(companyID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate subscription info: %w", err)
	}
	return nil
}
