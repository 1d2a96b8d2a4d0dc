package vimeo

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"sync"
	"time"
)

// Cache stores processed responses keyed by method and parameter set.
type Cache interface {
	Get(ctx context.Context, key string) (*CacheEntry, error)
	Set(ctx context.Context, key string, entry *CacheEntry) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
	Has(ctx context.Context, key string) bool
}

// CacheEntry is a cached response body with its lifetime.
type CacheEntry struct {
	Data      []byte
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether the entry is past its expiry.
func (e *CacheEntry) Expired() bool {
	return !e.ExpiresAt.IsZero() && time.Now().After(e.ExpiresAt)
}

// CacheKey derives the cache key for a method call. Parameters are encoded
// in canonical sorted order, so the key is independent of argument order and
// differing parameter sets never collide.
func CacheKey(method string, params Params) string {
	values := url.Values{}
	for k, v := range params {
		values.Set(k, v)
	}

	// url.Values.Encode sorts by key.
	sum := sha256.Sum256([]byte(method + "?" + values.Encode()))

	return hex.EncodeToString(sum[:])
}

// MemoryCache is a bounded in-memory cache with lazy expiry: expired
// entries are evicted on the next access, and a full cache drops its oldest
// entry to make room.
type MemoryCache struct {
	mu      sync.Mutex
	entries map[string]*CacheEntry
	maxSize int
}

// NewMemoryCache creates a memory cache holding at most maxSize entries.
func NewMemoryCache(maxSize int) *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]*CacheEntry),
		maxSize: maxSize,
	}
}

// Get retrieves an entry. An expired entry is evicted and reported as such.
func (c *MemoryCache) Get(ctx context.Context, key string) (*CacheEntry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, ErrCacheEntryNotFound
	}

	if entry.Expired() {
		delete(c.entries, key)

		return nil, ErrCacheEntryExpired
	}

	return entry, nil
}

// Set stores an entry, evicting expired entries first and the oldest entry
// if the cache is still full.
func (c *MemoryCache) Set(ctx context.Context, key string, entry *CacheEntry) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.evictExpiredLocked()

	if c.maxSize > 0 && len(c.entries) >= c.maxSize {
		if _, exists := c.entries[key]; !exists {
			c.evictOldestLocked()
		}
	}

	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	c.entries[key] = entry

	return nil
}

// Delete removes an entry.
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)

	return nil
}

// Clear removes all entries unconditionally.
func (c *MemoryCache) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*CacheEntry)

	return nil
}

// Has reports whether a live entry exists for the key.
func (c *MemoryCache) Has(ctx context.Context, key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]

	return ok && !entry.Expired()
}

// EvictExpired removes every expired entry. Dispatch runs this before each
// call so stale entries never outlive the timeout by more than one call.
func (c *MemoryCache) EvictExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.evictExpiredLocked()
}

func (c *MemoryCache) evictExpiredLocked() {
	for key, entry := range c.entries {
		if entry.Expired() {
			delete(c.entries, key)
		}
	}
}

func (c *MemoryCache) evictOldestLocked() {
	var (
		oldestKey string
		oldestAt  time.Time
	)

	for key, entry := range c.entries {
		if oldestKey == "" || entry.CreatedAt.Before(oldestAt) {
			oldestKey = key
			oldestAt = entry.CreatedAt
		}
	}

	if oldestKey != "" {
		delete(c.entries, oldestKey)
	}
}

// NoOpCache is a cache that does nothing. It backs clients configured with
// a zero cache timeout.
type NoOpCache struct{}

// NewNoOpCache creates a new no-op cache.
func NewNoOpCache() *NoOpCache {
	return &NoOpCache{}
}

// Get always returns an error (nothing cached).
func (c *NoOpCache) Get(ctx context.Context, key string) (*CacheEntry, error) {
	return nil, ErrCacheDisabled
}

// Set does nothing.
func (c *NoOpCache) Set(ctx context.Context, key string, entry *CacheEntry) error {
	return nil
}

// Delete does nothing.
func (c *NoOpCache) Delete(ctx context.Context, key string) error {
	return nil
}

// Clear does nothing.
func (c *NoOpCache) Clear(ctx context.Context) error {
	return nil
}

// Has always returns false.
func (c *NoOpCache) Has(ctx context.Context, key string) bool {
	return false
}
