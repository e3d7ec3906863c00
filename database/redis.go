package database

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
)

// RedisConfig holds the redis connection settings.
type RedisConfig struct {
	URL          string
	PoolSize     int
	DialTimeout  time.Duration
	MinIdleConns int
	ReadTimeout  time.Duration
	MaxRetries   int
}

// NewRedisClient creates a Redis client with the provided configuration and
// pings it.
func NewRedisClient(ctx context.Context, config RedisConfig) (*redis.Client, error) {
	opt, err := redis.ParseURL(config.URL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse Redis URL")
	}

	if config.PoolSize > 0 {
		opt.PoolSize = config.PoolSize
	}
	if config.MinIdleConns > 0 {
		opt.MinIdleConns = config.MinIdleConns
	}
	if config.DialTimeout > 0 {
		opt.DialTimeout = config.DialTimeout
	}
	if config.ReadTimeout > 0 {
		opt.ReadTimeout = config.ReadTimeout
	}
	opt.MaxRetries = config.MaxRetries

	client := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Wrap(err, "failed to ping Redis server")
	}
	return client, nil
}

// NewLock acquires a lock key with SETNX.
func NewLock(ctx context.Context, client *redis.Client, key, value string, ttl time.Duration) (bool, error) {
	if client == nil {
		return false, errors.New("Redis client is not initialized")
	}
	return client.SetNX(ctx, key, value, ttl).Result()
}

const releaseLockScript = `
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
else
	return 0
end
`

// ReleaseLock deletes the lock key only if value still owns it.
func ReleaseLock(ctx context.Context, client *redis.Client, key, value string) error {
	if client == nil {
		return errors.New("Redis client is not initialized")
	}

	result, err := redis.NewScript(releaseLockScript).Run(ctx, client, []string{key}, value).Result()
	if err != nil {
		return fmt.Errorf("failed to release lock: %w", err)
	}
	if n, ok := result.(int64); !ok || n == 0 {
		return errors.New("lock release failed: not the lock owner")
	}
	return nil
}
