// File: services/scheduling/cache.go
package scheduling

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"appointments/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Cache key prefixes for the free-slot response cache.
const (
	slotCachePrefix   = "slots:"
	slotVersionPrefix = "slotsver:"
)

const defaultSlotCacheTTL = 5 * time.Minute

// slotCacheKey builds the cache key for a service/horizon pair. The
// key embeds today's date (entries do not survive a day rollover) and
// the per-service version, so a booking write invalidates all cached
// horizons for that service at once.
func (s *DefaultSchedulingService) slotCacheKey(ctx context.Context, serviceID string, days int) (string, bool) {
	if s.Cache == nil {
		return "", false
	}
	ver, err := s.Cache.Get(ctx, slotVersionPrefix+serviceID).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			return "", false
		}
		ver = "0"
	}
	date := s.today().Format("2006-01-02")
	return fmt.Sprintf("%s%s:%d:%s:v%s", slotCachePrefix, serviceID, days, date, ver), true
}

func (s *DefaultSchedulingService) cachedSlots(ctx context.Context, serviceID string, days int) ([]models.FreeSlot, bool) {
	key, ok := s.slotCacheKey(ctx, serviceID, days)
	if !ok {
		return nil, false
	}
	raw, err := s.Cache.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	var slots []models.FreeSlot
	if err := json.Unmarshal(raw, &slots); err != nil {
		return nil, false
	}
	return slots, true
}

func (s *DefaultSchedulingService) storeSlots(ctx context.Context, serviceID string, days int, slots []models.FreeSlot) {
	key, ok := s.slotCacheKey(ctx, serviceID, days)
	if !ok {
		return
	}
	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}
	ttl := s.CacheTTL
	if ttl <= 0 {
		ttl = defaultSlotCacheTTL
	}
	if err := s.Cache.Set(ctx, key, raw, ttl).Err(); err != nil {
		s.logger().Warn("slot cache write failed", zap.Error(err))
	}
}

// bumpSlotVersion invalidates every cached horizon for a service.
func (s *DefaultSchedulingService) bumpSlotVersion(ctx context.Context, serviceID string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Incr(ctx, slotVersionPrefix+serviceID).Err(); err != nil {
		s.logger().Warn("slot cache invalidation failed",
			zap.String("service_id", serviceID), zap.Error(err))
	}
}
