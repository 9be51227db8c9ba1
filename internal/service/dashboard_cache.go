package service

import (
	"context"
	"encoding/json"
	"time"

	"student-recommendation-platform/internal/delivery/dto"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const dashboardCacheKey = "dashboard:aggregates"

// DashboardCache keeps the computed dashboard aggregates in Redis for a short TTL.
// It holds derived data only; the document store stays the sole owner of profiles.
// Every failure here is non-fatal: callers fall back to recomputing from the store.
type DashboardCache struct {
	redisClient *redis.Client
	ttl         time.Duration
	log         *logrus.Logger
}

func NewDashboardCache(redisClient *redis.Client, ttl time.Duration, log *logrus.Logger) *DashboardCache {
	return &DashboardCache{
		redisClient: redisClient,
		ttl:         ttl,
		log:         log,
	}
}

// Get returns the cached aggregates, or (nil, false) on miss or Redis failure.
func (c *DashboardCache) Get(ctx context.Context) (*dto.DashboardResponse, bool) {
	payload, err := c.redisClient.Get(ctx, dashboardCacheKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warnf("Failed to read dashboard cache: %+v", err)
		}
		return nil, false
	}

	var cached dto.DashboardResponse
	if err := json.Unmarshal(payload, &cached); err != nil {
		c.log.Warnf("Failed to decode dashboard cache, dropping it: %+v", err)
		_ = c.redisClient.Del(ctx, dashboardCacheKey).Err()
		return nil, false
	}

	return &cached, true
}

// Set stores the aggregates with the configured TTL.
func (c *DashboardCache) Set(ctx context.Context, aggregates *dto.DashboardResponse) {
	payload, err := json.Marshal(aggregates)
	if err != nil {
		c.log.Warnf("Failed to encode dashboard cache: %+v", err)
		return
	}

	if err := c.redisClient.Set(ctx, dashboardCacheKey, payload, c.ttl).Err(); err != nil {
		c.log.Warnf("Failed to write dashboard cache: %+v", err)
	}
}

// Invalidate drops the cached aggregates. Called after every successful upsert.
func (c *DashboardCache) Invalidate(ctx context.Context) {
	if err := c.redisClient.Del(ctx, dashboardCacheKey).Err(); err != nil {
		c.log.Warnf("Failed to invalidate dashboard cache: %+v", err)
	}
}
