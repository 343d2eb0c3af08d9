package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// UnreadCountCache memoizes per-user unread notification counts.
type UnreadCountCache interface {
	// Get returns the cached count; ok is false on a miss.
	Get(ctx context.Context, userID uint) (count int64, ok bool, err error)
	Set(ctx context.Context, userID uint, count int64) error
	Invalidate(ctx context.Context, userID uint) error
}

// RedisUnreadCountCache stores counts as plain integers under prefix+userID.
type RedisUnreadCountCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisUnreadCountCache(client *redis.Client, prefix string, ttl time.Duration) *RedisUnreadCountCache {
	return &RedisUnreadCountCache{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (c *RedisUnreadCountCache) Get(ctx context.Context, userID uint) (int64, bool, error) {
	val, err := c.client.Get(ctx, c.buildKey(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("failed to read unread count from redis: %w", err)
	}

	count, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("corrupt unread count for user %d: %w", userID, err)
	}
	return count, true, nil
}

func (c *RedisUnreadCountCache) Set(ctx context.Context, userID uint, count int64) error {
	if err := c.client.Set(ctx, c.buildKey(userID), count, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store unread count in redis: %w", err)
	}
	return nil
}

func (c *RedisUnreadCountCache) Invalidate(ctx context.Context, userID uint) error {
	if err := c.client.Del(ctx, c.buildKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate unread count: %w", err)
	}
	return nil
}

func (c *RedisUnreadCountCache) buildKey(userID uint) string {
	return c.prefix + strconv.FormatUint(uint64(userID), 10)
}

// NoopUnreadCountCache always misses.
type NoopUnreadCountCache struct{}

func (NoopUnreadCountCache) Get(context.Context, uint) (int64, bool, error) { return 0, false, nil }
func (NoopUnreadCountCache) Set(context.Context, uint, int64) error         { return nil }
func (NoopUnreadCountCache) Invalidate(context.Context, uint) error         { return nil }
