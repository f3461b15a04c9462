// Package redis persists key-value documents in a Redis server. This is
// the asynchronous, possibly cross-process medium: values survive app
// restarts on the same host and can be shared with companion tooling.
//
// The provider connects lazily. Construction never fails even when the
// server is unreachable, so the app stays usable (in-memory state plus
// logged write failures) until the medium comes back.
package redis

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/go-redis/redis/v8"

	"github.com/vitalog/vitalog/internal/storage"
)

// Config holds the Redis connection parameters.
type Config struct {
	Addr     string
	Password string
	DB       int
}

// Provider implements storage.Adapter over a Redis client.
type Provider struct {
	client *redis.Client
}

// New creates the provider. The connection is only probed, not required:
// an unreachable server is logged and retried implicitly on first use.
func New(cfg Config) *Provider {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Printf("WARNING: Redis storage at %s is not reachable yet: %v", cfg.Addr, err)
	} else {
		log.Printf("Redis storage connected at %s", cfg.Addr)
	}

	return &Provider{client: client}
}

func (p *Provider) Get(ctx context.Context, key string) (string, error) {
	value, err := p.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", storage.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("redis get %s: %w", key, err)
	}
	return value, nil
}

func (p *Provider) Set(ctx context.Context, key, value string) error {
	if err := p.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (p *Provider) Remove(ctx context.Context, key string) error {
	if err := p.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}

func (p *Provider) Ping(ctx context.Context) error {
	return p.client.Ping(ctx).Err()
}

func (p *Provider) Close() error {
	return p.client.Close()
}
