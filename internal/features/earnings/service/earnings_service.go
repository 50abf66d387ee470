package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"loopa-api/internal/core/cache"
	"loopa-api/internal/core/logger"
	"loopa-api/internal/features/earnings/domain"
	orderports "loopa-api/internal/features/orders/ports"

	"go.uber.org/zap"
)

const (
	overallCacheKey = "stats:overall"
	designsCacheKey = "stats:designs"
)

// EarningsService computes creator earnings reports from the storefront
// order history, with a short-lived cache in front of the fold.
type EarningsService struct {
	provider orderports.OrderProvider
	cache    cache.Cache
	policy   domain.PayoutPolicy
	ttl      time.Duration
}

// NewEarningsService creates a new EarningsService.
func NewEarningsService(provider orderports.OrderProvider, c cache.Cache, policy domain.PayoutPolicy, ttl time.Duration) *EarningsService {
	return &EarningsService{
		provider: provider,
		cache:    c,
		policy:   policy,
		ttl:      ttl,
	}
}

// GetOverallStats returns the storewide sales summary.
func (s *EarningsService) GetOverallStats(ctx context.Context) (*domain.OverallStats, error) {
	key := s.cacheKey(overallCacheKey)

	var cached domain.OverallStats
	if s.lookup(ctx, key, &cached) {
		return &cached, nil
	}

	orders, err := s.provider.ListOrders()
	if err != nil {
		return nil, fmt.Errorf("service: failed to list orders: %w", err)
	}

	overall := domain.ComputeOverallStats(orders, s.policy)
	s.store(ctx, key, overall)

	return &overall, nil
}

// GetDesignStats returns per-design sales statistics sorted by revenue,
// highest first, ties broken by design id for a stable display order.
func (s *EarningsService) GetDesignStats(ctx context.Context) ([]domain.DesignSalesStats, error) {
	key := s.cacheKey(designsCacheKey)

	var cached []domain.DesignSalesStats
	if s.lookup(ctx, key, &cached) {
		return cached, nil
	}

	orders, err := s.provider.ListOrders()
	if err != nil {
		return nil, fmt.Errorf("service: failed to list orders: %w", err)
	}

	byDesign := domain.ComputeDesignStats(orders, s.policy)

	stats := make([]domain.DesignSalesStats, 0, len(byDesign))
	for _, entry := range byDesign {
		stats = append(stats, *entry)
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Revenue != stats[j].Revenue {
			return stats[i].Revenue > stats[j].Revenue
		}
		return stats[i].DesignID < stats[j].DesignID
	})

	s.store(ctx, key, stats)

	return stats, nil
}

// cacheKey namespaces cached reports by the payout policy parameters that
// feed the fold, so no config change serves stale splits for the TTL.
func (s *EarningsService) cacheKey(base string) string {
	if s.policy.Model == domain.PayoutModelFixed {
		return fmt.Sprintf("%s:%s:%g:%g", base, s.policy.Model, s.policy.CreatorPerUnit, s.policy.PlatformPerUnit)
	}
	return fmt.Sprintf("%s:%s:%g", base, s.policy.Model, s.policy.Share())
}

// lookup fills out from the cache and reports whether it succeeded.
// Unreadable cached entries are discarded, not returned as errors.
func (s *EarningsService) lookup(ctx context.Context, key string, out interface{}) bool {
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		return false
	}

	if err := json.Unmarshal(data, out); err != nil {
		logger.Get().Warn("Discarding unreadable cached stats",
			zap.String("key", key),
			zap.Error(err),
		)
		return false
	}

	return true
}

// store caches a computed report; failures are logged and otherwise ignored
// since the report has already been computed.
func (s *EarningsService) store(ctx context.Context, key string, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}

	if err := s.cache.Set(ctx, key, data, s.ttl); err != nil {
		logger.Get().Warn("Failed to cache stats",
			zap.String("key", key),
			zap.Error(err),
		)
	}
}
