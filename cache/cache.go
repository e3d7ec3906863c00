package cache

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

// Cache is a namespaced key/value view over a redis client.
type Cache struct {
	client *redis.Client
	prefix string
}

// NewCache creates a Cache whose keys are stored under prefix.
func NewCache(client *redis.Client, prefix string) (*Cache, error) {
	if client == nil {
		return nil, errors.New("Redis client is not initialized")
	}
	return &Cache{client: client, prefix: prefix}, nil
}

// Client exposes the underlying redis client.
func (c *Cache) Client() *redis.Client {
	return c.client
}

// Key returns the namespaced form of key.
func (c *Cache) Key(key string) string {
	return c.prefix + key
}

func (c *Cache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return c.client.Set(ctx, c.Key(key), value, expiration).Err()
}

// Get returns the value and whether the key exists.
func (c *Cache) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := c.client.Get(ctx, c.Key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}
