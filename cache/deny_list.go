package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenDenyList хранит идентификаторы отозванных токенов до истечения их срока.
type TokenDenyList struct {
	rdb *redis.Client
}

func NewTokenDenyList(rdb *redis.Client) *TokenDenyList {
	return &TokenDenyList{rdb: rdb}
}

func (d *TokenDenyList) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	if err := d.rdb.Set(ctx, key("revoked", tokenID), 1, ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke token %s: %w", tokenID, err)
	}
	return nil
}

func (d *TokenDenyList) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := d.rdb.Exists(ctx, key("revoked", tokenID)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check revoked token %s: %w", tokenID, err)
	}
	return n > 0, nil
}
