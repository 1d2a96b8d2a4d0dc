package vimeo

import (
	"time"
)

// CacheType represents the type of cache backend.
type CacheType string

const (
	// CacheTypeMemory represents the in-memory cache.
	CacheTypeMemory CacheType = "memory"

	// CacheTypeNone represents no caching.
	CacheTypeNone CacheType = "none"
)

// CacheConfig configures the response cache backend.
type CacheConfig struct {
	// Type is the cache backend type.
	Type CacheType

	// MaxSize is the maximum number of cached responses.
	MaxSize int

	// Timeout is how long an entry stays valid. Zero disables caching
	// regardless of Type.
	Timeout time.Duration
}

// DefaultCacheConfig returns the default cache configuration.
func DefaultCacheConfig() *CacheConfig {
	return &CacheConfig{
		Type:    CacheTypeMemory,
		MaxSize: 1000,
		Timeout: 120 * time.Second,
	}
}

// NewCacheFromConfig creates a cache backend from configuration. A zero
// timeout always yields the no-op cache: with immediate eviction there is
// nothing worth storing.
func NewCacheFromConfig(config *CacheConfig) Cache {
	if config == nil {
		config = DefaultCacheConfig()
	}

	if config.Timeout <= 0 || config.Type == CacheTypeNone {
		return NewNoOpCache()
	}

	maxSize := config.MaxSize
	if maxSize <= 0 {
		maxSize = DefaultCacheConfig().MaxSize
	}

	return NewMemoryCache(maxSize)
}

// CacheBuilder helps build cache configurations.
type CacheBuilder struct {
	config *CacheConfig
}

// NewCacheBuilder creates a new cache builder.
func NewCacheBuilder() *CacheBuilder {
	return &CacheBuilder{config: DefaultCacheConfig()}
}

// WithType sets the cache type.
func (b *CacheBuilder) WithType(cacheType CacheType) *CacheBuilder {
	b.config.Type = cacheType

	return b
}

// WithMaxSize sets the maximum number of cached responses.
func (b *CacheBuilder) WithMaxSize(maxSize int) *CacheBuilder {
	b.config.MaxSize = maxSize

	return b
}

// WithTimeout sets the entry lifetime.
func (b *CacheBuilder) WithTimeout(timeout time.Duration) *CacheBuilder {
	b.config.Timeout = timeout

	return b
}

// Build creates the cache from the configuration.
func (b *CacheBuilder) Build() Cache {
	return NewCacheFromConfig(b.config)
}
