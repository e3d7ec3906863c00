package repositories

import (
	"ClinicDesk/cache"
	"ClinicDesk/database"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	lockTTL        = 10 * time.Second
	lockMaxRetries = 3
	lockRetryDelay = 200 * time.Millisecond
)

// RedisRepository stores documents in redis. Writes take a per-key lock so
// two processes sharing the same redis never interleave a document write.
type RedisRepository struct {
	cache *cache.Cache
}

func NewRedisRepository(cache *cache.Cache) *RedisRepository {
	return &RedisRepository{cache: cache}
}

func (r *RedisRepository) Get(ctx context.Context, key string) (string, bool, error) {
	val, found, err := r.cache.Get(ctx, documentKey(key))
	if err != nil {
		return "", false, errors.Wrapf(err, "failed to get document %s", key)
	}
	return val, found, nil
}

func (r *RedisRepository) Set(ctx context.Context, key, value string) error {
	lockKey := r.cache.Key(fmt.Sprintf("clinic_lock:%s", key))
	lockValue := uuid.New().String()

	var locked bool
	var err error
	for i := 0; i < lockMaxRetries; i++ {
		locked, err = database.NewLock(ctx, r.cache.Client(), lockKey, lockValue, lockTTL)
		if err == nil && locked {
			break
		}
		if i < lockMaxRetries-1 {
			time.Sleep(lockRetryDelay)
		}
	}
	if !locked {
		if err == nil {
			err = errors.New("lock held by another writer")
		}
		return errors.Wrapf(err, "failed to acquire lock for document %s", key)
	}
	defer func() {
		_ = database.ReleaseLock(ctx, r.cache.Client(), lockKey, lockValue)
	}()

	if err := r.cache.Set(ctx, documentKey(key), value, 0); err != nil {
		return errors.Wrapf(err, "failed to set document %s", key)
	}
	return nil
}

func documentKey(key string) string {
	return "document:" + key
}
