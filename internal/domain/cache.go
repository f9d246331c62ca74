package domain

import (
	"context"
	"time"
)

// Cache defines the interface for caching operations.
// Supports two-phase caching: local LRU (Community) + Redis (Pro).
// All methods require tenantID for strict multi-tenancy isolation.
type Cache interface {
	// Get retrieves a value from cache.
	// Returns nil, nil if key not found.
	Get(ctx context.Context, tenantID string, key string) ([]byte, error)

	// Set stores a value in cache with expiration.
	Set(ctx context.Context, tenantID string, key string, value []byte, ttl time.Duration) error

	// Delete removes a value from cache.
	Delete(ctx context.Context, tenantID string, key string) error

	// GetRecommendations retrieves a memoized recommendation set by the
	// input hash of (profile, risk profile, wellness scores, catalog).
	GetRecommendations(ctx context.Context, tenantID string, inputHash string) (*RecommendationSet, error)

	// SetRecommendations memoizes a recommendation set.
	SetRecommendations(ctx context.Context, tenantID string, inputHash string, set *RecommendationSet, ttl time.Duration) error

	// IncrementCounter atomically increments a counter and returns new value.
	// Used for per-client assessment counting in a time window.
	IncrementCounter(ctx context.Context, tenantID string, key string, window time.Duration) (int64, error)

	// Health check
	Ping(ctx context.Context) error

	// Lifecycle
	Close() error
}

// RecommendationSet is a cached recommendation result. Memoization is an
// optimization only: every engine function stays a pure function of its
// inputs.
type RecommendationSet struct {
	Recommendations []ProductRecommendation `json:"recommendations"`
	Allocation      map[string]float64      `json:"allocation"`
	Exclusions      []ProductExclusion      `json:"exclusions,omitempty"`
}

// CacheConfig holds configuration for cache initialization.
type CacheConfig struct {
	// Type is the cache type: "memory" or "redis"
	Type string

	// Local LRU cache settings (Community tier)
	LocalMaxSize int
	LocalTTL     time.Duration

	// Redis settings (Pro tier)
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Two-phase settings
	EnableTwoPhase bool // If true, check local first, then Redis
}
