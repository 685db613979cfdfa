package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Dosada05/micro-tournaments/models"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

const DefaultTokenTTL = 24 * time.Hour

// TokenDenyList stores ids of tokens revoked before expiry.
type TokenDenyList interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type sessionClaims struct {
	PlayerID string `json:"player_id"`
	Role     string `json:"role"`
	Gamertag string `json:"gamertag"`
	jwt.RegisteredClaims
}

// TokenManager выпускает и проверяет подписанные токены сессии (HS256).
type TokenManager struct {
	secret   []byte
	ttl      time.Duration
	denyList TokenDenyList
	now      Clock
}

// NewTokenManager creates a manager; denyList may be nil, then logout only ends
// the session on the client.
func NewTokenManager(secret string, ttl time.Duration, denyList TokenDenyList) *TokenManager {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenManager{
		secret:   []byte(secret),
		ttl:      ttl,
		denyList: denyList,
		now:      systemClock,
	}
}

func (m *TokenManager) Issue(player *models.Player) (string, *models.Session, error) {
	now := m.now()
	session := &models.Session{
		PlayerID:  player.ID,
		Role:      player.Role,
		Gamertag:  player.Gamertag,
		TokenID:   uuid.NewString(),
		ExpiresAt: now.Add(m.ttl).Truncate(time.Second),
	}

	claims := sessionClaims{
		PlayerID: player.ID.String(),
		Role:     string(player.Role),
		Gamertag: player.Gamertag,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        session.TokenID,
			Subject:   player.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, session, nil
}

// Verify parses a token and returns its session. Any problem with the token is
// reported as ErrAuthenticationFailed or ErrTokenRevoked.
func (m *TokenManager) Verify(ctx context.Context, tokenString string) (*models.Session, error) {
	claims := &sessionClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAuthenticationFailed, err)
	}

	playerID, err := uuid.Parse(claims.PlayerID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid player_id claim", ErrAuthenticationFailed)
	}
	if claims.ID == "" || claims.ExpiresAt == nil {
		return nil, fmt.Errorf("%w: token has no id or expiry", ErrAuthenticationFailed)
	}

	if m.denyList != nil {
		revoked, err := m.denyList.IsRevoked(ctx, claims.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to check token: %w", err)
		}
		if revoked {
			return nil, ErrTokenRevoked
		}
	}

	return &models.Session{
		PlayerID:  playerID,
		Role:      models.PlayerRole(claims.Role),
		Gamertag:  claims.Gamertag,
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

func (m *TokenManager) Revoke(ctx context.Context, session models.Session) error {
	if m.denyList == nil {
		return nil
	}
	if session.TokenID == "" {
		return errors.New("session has no token id")
	}
	return m.denyList.Revoke(ctx, session.TokenID, session.ExpiresAt)
}
