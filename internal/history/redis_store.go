package history

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// redisKV is the subset of redis.Cmdable the store needs.
type redisKV interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

type RedisStore struct {
	client redisKV
}

func NewRedisStore(client redisKV) *RedisStore {
	return &RedisStore{client: client}
}

func storageKey(owner string) string {
	return fmt.Sprintf("%s:%s", Key, owner)
}

func (s *RedisStore) Load(ctx context.Context, owner string) (string, bool, error) {
	val, err := s.client.Get(ctx, storageKey(owner)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

// Save writes without expiry; the list lives until cleared or overwritten.
func (s *RedisStore) Save(ctx context.Context, owner, value string) error {
	return s.client.Set(ctx, storageKey(owner), value, 0).Err()
}

func (s *RedisStore) Delete(ctx context.Context, owner string) error {
	return s.client.Del(ctx, storageKey(owner)).Err()
}
