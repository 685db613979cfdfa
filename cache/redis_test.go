package cache

import (
	"context"
	"testing"
	"time"

	"github.com/Dosada05/micro-tournaments/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	assert.Equal(t, "mtt:leaderboard", key("leaderboard"))
	assert.Equal(t, "mtt:revoked:abc", key("revoked", "abc"))
}

func TestNewRedisClient_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := NewRedisClient(ctx, config.Redis{Addr: "127.0.0.1:1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "127.0.0.1:1")
}

func TestNewLeaderboardCache_DefaultTTL(t *testing.T) {
	c := NewLeaderboardCache(nil, 0)
	assert.Equal(t, LeaderboardTTL, c.ttl)
}
