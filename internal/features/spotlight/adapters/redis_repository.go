package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"loopa-api/internal/core/cache"
	"loopa-api/internal/features/spotlight/domain"
)

const spotlightCacheKey = "storefront_spotlight"

// RedisSpotlightRepository implements ports.SpotlightRepository on the cache port.
type RedisSpotlightRepository struct {
	cache cache.Cache
}

// NewRedisSpotlightRepository creates a new RedisSpotlightRepository.
func NewRedisSpotlightRepository(c cache.Cache) *RedisSpotlightRepository {
	return &RedisSpotlightRepository{
		cache: c,
	}
}

// Save stores the spotlight in the cache, expiring after its duration.
func (r *RedisSpotlightRepository) Save(ctx context.Context, spotlight *domain.Spotlight) error {
	data, err := json.Marshal(spotlight)
	if err != nil {
		return fmt.Errorf("failed to marshal spotlight: %w", err)
	}

	// Duration 0 means permanent; the cache treats a zero TTL as no expiration.
	ttl := time.Duration(spotlight.Duration) * time.Second

	if err := r.cache.Set(ctx, spotlightCacheKey, data, ttl); err != nil {
		return fmt.Errorf("failed to save spotlight to cache: %w", err)
	}

	return nil
}

// Get retrieves the spotlight from the cache. Returns nil, nil when absent.
func (r *RedisSpotlightRepository) Get(ctx context.Context) (*domain.Spotlight, error) {
	data, err := r.cache.Get(ctx, spotlightCacheKey)
	if err != nil {
		if errors.Is(err, cache.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get spotlight from cache: %w", err)
	}

	var spotlight domain.Spotlight
	if err := json.Unmarshal(data, &spotlight); err != nil {
		return nil, fmt.Errorf("failed to unmarshal spotlight: %w", err)
	}

	return &spotlight, nil
}

// Delete removes the spotlight from the cache.
func (r *RedisSpotlightRepository) Delete(ctx context.Context) error {
	if err := r.cache.Delete(ctx, spotlightCacheKey); err != nil {
		return fmt.Errorf("failed to delete spotlight from cache: %w", err)
	}
	return nil
}
