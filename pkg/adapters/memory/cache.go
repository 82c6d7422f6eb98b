package memory

import (
	"context"
	"sync"
)

// Cache implements ports.ResultCache in memory.
// Safe for concurrent use.
type Cache struct {
	mu         sync.RWMutex
	data       map[string]string
	order      []string // insertion order, oldest first
	maxEntries int
}

// Option configures the cache.
type Option func(*Cache)

// WithMaxEntries bounds the cache size. The oldest entry is evicted first.
// Zero or negative means unbounded.
func WithMaxEntries(n int) Option {
	return func(c *Cache) {
		c.maxEntries = n
	}
}

// NewCache creates a new in-memory cache.
func NewCache(opts ...Option) *Cache {
	c := &Cache{
		data: make(map[string]string),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get retrieves a result from memory.
func (c *Cache) Get(ctx context.Context, key string) (string, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	v, ok := c.data[key]
	return v, ok, nil
}

// Set stores a result in memory.
func (c *Cache) Set(ctx context.Context, key, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.data[key]; !exists {
		c.order = append(c.order, key)
	}
	c.data[key] = value

	if c.maxEntries > 0 {
		for len(c.order) > c.maxEntries {
			oldest := c.order[0]
			c.order = c.order[1:]
			delete(c.data, oldest)
		}
	}
	return nil
}

// Len returns the number of cached results.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.data)
}

// Clear drops every cached result.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string]string)
	c.order = nil
}
