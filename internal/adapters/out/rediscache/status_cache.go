// Package rediscache implements the order status cache on Redis. Entries
// carry a TTL so a missed invalidation degrades into a slow read, never a
// permanently wrong answer.
package rediscache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/order"

	"github.com/redis/go-redis/v9"
)

// StatusCache caches each order's current status under a per-order key,
// stored as the canonical status name. Implements ports.StatusCache.
type StatusCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStatusCache creates a cache backed by the given Redis client.
// Entries expire after ttl; a non-positive ttl keeps them forever.
func NewStatusCache(client *redis.Client, ttl time.Duration) *StatusCache {
	return &StatusCache{client: client, ttl: ttl}
}

// Get returns the cached status for the order number.
// A cache miss comes back as (Unknown, false, nil). A cached value that no
// longer normalizes is treated as a miss so a poisoned entry heals itself
// on the next Set.
func (c *StatusCache) Get(ctx context.Context, orderNumber int64) (order.Status, bool, error) {
	raw, err := c.client.Get(ctx, statusKey(orderNumber)).Result()
	if errors.Is(err, redis.Nil) {
		return order.Unknown, false, nil
	}
	if err != nil {
		return order.Unknown, false, err
	}

	status, ok := order.NormalizeStatus(raw)
	if !ok {
		return order.Unknown, false, nil
	}

	return status, true, nil
}

// Set stores the status for the order number under the cache TTL.
func (c *StatusCache) Set(ctx context.Context, orderNumber int64, status order.Status) error {
	return c.client.Set(ctx, statusKey(orderNumber), status.String(), c.ttl).Err()
}

func statusKey(orderNumber int64) string {
	return fmt.Sprintf("fulfillment:status:%d", orderNumber)
}
