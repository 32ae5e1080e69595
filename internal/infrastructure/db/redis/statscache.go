package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/priorityparcel/portal-api/internal/core/ports"
)

const (
	statsKey = "dashboard:stats"
	statsTTL = 30 * time.Second
)

// StatsCache caches the dashboard aggregates in Redis for a short window.
// Cache failures are logged and treated as misses; the caller recomputes.
type StatsCache struct {
	client *redis.Client
	log    zerolog.Logger
}

// NewStatsCache creates a StatsCache wrapping the given Redis client.
func NewStatsCache(client *redis.Client, log zerolog.Logger) *StatsCache {
	return &StatsCache{client: client, log: log}
}

// Get returns the cached stats and true on a hit.
func (c *StatsCache) Get(ctx context.Context) (*ports.DashboardStats, bool) {
	raw, err := c.client.Get(ctx, statsKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Msg("stats cache read failed")
		}
		return nil, false
	}

	var stats ports.DashboardStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		c.log.Warn().Err(err).Msg("stats cache decode failed")
		return nil, false
	}
	return &stats, true
}

// Set stores the stats with the cache TTL.
func (c *StatsCache) Set(ctx context.Context, stats *ports.DashboardStats) {
	raw, err := json.Marshal(stats)
	if err != nil {
		c.log.Warn().Err(err).Msg("stats cache encode failed")
		return
	}
	if err := c.client.Set(ctx, statsKey, raw, statsTTL).Err(); err != nil {
		c.log.Warn().Err(err).Msg("stats cache write failed")
	}
}
