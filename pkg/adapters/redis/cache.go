package redis

import (
	"context"
	"errors"
	"time"

	"github.com/aretw0/textops/pkg/domain"
	backend "github.com/redis/go-redis/v9"
)

// DefaultPrefix namespaces cached results.
const DefaultPrefix = "textops:result:"

// Cache implements ports.ResultCache using Redis.
type Cache struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

type Option func(*Cache)

// WithTTL sets the expiration for cached results.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) {
		c.ttl = ttl
	}
}

// WithPrefix sets the key prefix for cached results.
func WithPrefix(prefix string) Option {
	return func(c *Cache) {
		c.prefix = prefix
	}
}

// NewCache creates a new Redis cache with options.
func NewCache(address, password string, db int, opts ...Option) *Cache {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewCacheFromClient(rdb, opts...)
}

// NewCacheFromClient creates a new Redis cache from an existing client.
func NewCacheFromClient(client *backend.Client, opts ...Option) *Cache {
	cache := &Cache{
		client: client,
		prefix: DefaultPrefix,
		ttl:    0, // No expiration by default
	}

	for _, opt := range opts {
		opt(cache)
	}

	return cache
}

func (c *Cache) key(key string) string {
	return c.prefix + key
}

// Get retrieves a cached result from Redis.
func (c *Cache) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := c.client.Get(ctx, c.key(key)).Result()
	if err != nil {
		if errors.Is(err, backend.Nil) {
			return "", false, nil
		}
		return "", false, domain.NewCacheError("get", err)
	}
	return val, true, nil
}

// Set stores a result in Redis.
// Use 0 for no expiration if ttl is not set.
func (c *Cache) Set(ctx context.Context, key, value string) error {
	if err := c.client.Set(ctx, c.key(key), value, c.ttl).Err(); err != nil {
		return domain.NewCacheError("set", err)
	}
	return nil
}

// Ping checks connectivity with the Redis server.
func (c *Cache) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return domain.NewCacheError("ping", err)
	}
	return nil
}

// Close closes the redis client.
func (c *Cache) Close() error {
	return c.client.Close()
}
