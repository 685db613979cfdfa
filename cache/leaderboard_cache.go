package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Dosada05/micro-tournaments/models"
	"github.com/redis/go-redis/v9"
)

const LeaderboardTTL = time.Minute

// LeaderboardCache keeps the last computed global leaderboard as one JSON value.
type LeaderboardCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewLeaderboardCache(rdb *redis.Client, ttl time.Duration) *LeaderboardCache {
	if ttl <= 0 {
		ttl = LeaderboardTTL
	}
	return &LeaderboardCache{rdb: rdb, ttl: ttl}
}

// Get returns ok=false on a cache miss.
func (c *LeaderboardCache) Get(ctx context.Context) ([]models.LeaderboardEntry, bool, error) {
	data, err := c.rdb.Get(ctx, key("leaderboard")).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read cached leaderboard: %w", err)
	}

	var entries []models.LeaderboardEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, false, fmt.Errorf("failed to decode cached leaderboard: %w", err)
	}
	return entries, true, nil
}

func (c *LeaderboardCache) Set(ctx context.Context, entries []models.LeaderboardEntry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to encode leaderboard: %w", err)
	}
	if err := c.rdb.Set(ctx, key("leaderboard"), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache leaderboard: %w", err)
	}
	return nil
}
