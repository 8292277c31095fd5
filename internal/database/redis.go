package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisClients keeps key/value traffic off the connection that holds
// long-lived subscriptions.
type RedisClients struct {
	// KV backs the fact history store.
	KV *redis.Client
	// PubSub carries workspace updates between server instances.
	PubSub *redis.Client
}

// NewRedisClients opens both clients against redisURL and pings each one
// within ctx. Nothing is left open when an error is returned.
func NewRedisClients(ctx context.Context, redisURL string) (*RedisClients, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	clients := &RedisClients{KV: redis.NewClient(opt)}
	subOpt := *opt
	clients.PubSub = redis.NewClient(&subOpt)

	for name, c := range map[string]*redis.Client{"kv": clients.KV, "pubsub": clients.PubSub} {
		if err := c.Ping(ctx).Err(); err != nil {
			clients.Close()
			return nil, fmt.Errorf("failed to ping Redis (%s): %w", name, err)
		}
	}
	return clients, nil
}

// Close shuts both clients. It is safe on a nil receiver.
func (r *RedisClients) Close() error {
	if r == nil {
		return nil
	}
	var errs []error
	for _, c := range []*redis.Client{r.KV, r.PubSub} {
		if c != nil {
			errs = append(errs, c.Close())
		}
	}
	return errors.Join(errs...)
}
