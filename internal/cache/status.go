package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jamesychung/livelocalgadget3-sub004/internal/domain"
)

const statusKeyPrefix = "event:status:"

// StatusCache keeps derived event statuses in Redis. Values are the status
// strings themselves; an unknown value on read is treated as a miss rather
// than an error, so stale entries from older versions age out harmlessly.
type StatusCache struct {
	client *redis.Client
}

func NewStatusCache(client *redis.Client) *StatusCache {
	return &StatusCache{client: client}
}

func (c *StatusCache) Get(ctx context.Context, eventID string) (domain.EventStatus, bool, error) {
	val, err := c.client.Get(ctx, statusKeyPrefix+eventID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("cache get: %w", err)
	}

	status := domain.EventStatus(val)
	if !status.IsValid() {
		return "", false, nil
	}

	return status, true, nil
}

func (c *StatusCache) Set(ctx context.Context, eventID string, status domain.EventStatus, ttl time.Duration) error {
	if err := c.client.Set(ctx, statusKeyPrefix+eventID, status.String(), ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

func (c *StatusCache) Invalidate(ctx context.Context, eventID string) error {
	if err := c.client.Del(ctx, statusKeyPrefix+eventID).Err(); err != nil {
		return fmt.Errorf("cache invalidate: %w", err)
	}
	return nil
}
