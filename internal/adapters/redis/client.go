package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redis "github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/selivandex/team-pulse/internal/adapters/config"
	"github.com/selivandex/team-pulse/pkg/logger"
)

// Client wraps the redis connection used for short-lived caching: per-user
// recommendation bundles, team sentiment snapshots and the event trail.
type Client struct {
	cache *redis.Client
}

// New creates new redis client
func New(cfg *config.RedisConfig) (*Client, error) {
	cache := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := cache.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.Info("redis cache client initialized",
		zap.String("address", cfg.Addr()),
		zap.Int("db", cfg.DB),
	)

	return &Client{cache: cache}, nil
}

// GetJSON reads a key and unmarshals it into v. Returns false on a miss.
func (c *Client) GetJSON(ctx context.Context, key string, v interface{}) (bool, error) {
	data, err := c.cache.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read cache key %s: %w", key, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("failed to unmarshal cached value for %s: %w", key, err)
	}

	return true, nil
}

// SetJSON marshals v and stores it under key with the given TTL
func (c *Client) SetJSON(ctx context.Context, key string, v interface{}, ttl time.Duration) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal value for %s: %w", key, err)
	}

	if err := c.cache.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to write cache key %s: %w", key, err)
	}

	return nil
}

// Close closes the redis connection
func (c *Client) Close() error {
	if c.cache != nil {
		logger.Info("closing redis cache client")
		if err := c.cache.Close(); err != nil {
			return fmt.Errorf("failed to close redis client: %w", err)
		}
	}
	return nil
}

// Health checks redis health
func (c *Client) Health() error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := c.cache.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis health check failed: %w", err)
	}

	return nil
}
