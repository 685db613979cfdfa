package services

import (
	"context"
	"testing"
	"time"

	"github.com/Dosada05/micro-tournaments/models"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPlayer() *models.Player {
	return &models.Player{
		ID:       uuid.New(),
		Gamertag: "ProGamer123",
		Role:     models.RoleUser,
	}
}

func TestTokenManager_IssueAndVerify(t *testing.T) {
	m := NewTokenManager("secret", time.Hour, nil)
	player := testPlayer()

	token, session, err := m.Issue(player)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, player.ID, session.PlayerID)
	assert.NotEmpty(t, session.TokenID)

	got, err := m.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, player.ID, got.PlayerID)
	assert.Equal(t, models.RoleUser, got.Role)
	assert.Equal(t, "ProGamer123", got.Gamertag)
	assert.Equal(t, session.TokenID, got.TokenID)
	assert.True(t, session.ExpiresAt.Equal(got.ExpiresAt))
}

func TestTokenManager_DefaultTTL(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	m := NewTokenManager("secret", 0, nil)
	m.now = fixedClock(now)

	_, session, err := m.Issue(testPlayer())
	require.NoError(t, err)
	assert.Equal(t, now.Add(24*time.Hour), session.ExpiresAt)
}

func TestTokenManager_VerifyRejects(t *testing.T) {
	player := testPlayer()
	m := NewTokenManager("secret", time.Hour, nil)

	t.Run("wrong secret", func(t *testing.T) {
		other := NewTokenManager("another-secret", time.Hour, nil)
		token, _, err := other.Issue(player)
		require.NoError(t, err)

		_, err = m.Verify(context.Background(), token)
		assert.ErrorIs(t, err, ErrAuthenticationFailed)
	})

	t.Run("expired", func(t *testing.T) {
		old := NewTokenManager("secret", time.Hour, nil)
		old.now = fixedClock(time.Now().Add(-3 * time.Hour))
		token, _, err := old.Issue(player)
		require.NoError(t, err)

		_, err = m.Verify(context.Background(), token)
		assert.ErrorIs(t, err, ErrAuthenticationFailed)
	})

	t.Run("unsigned", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"player_id": player.ID.String()})
		signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = m.Verify(context.Background(), signed)
		assert.ErrorIs(t, err, ErrAuthenticationFailed)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := m.Verify(context.Background(), "not-a-token")
		assert.ErrorIs(t, err, ErrAuthenticationFailed)
	})

	t.Run("bad player id", func(t *testing.T) {
		claims := sessionClaims{
			PlayerID: "nope",
			RegisteredClaims: jwt.RegisteredClaims{
				ID:        uuid.NewString(),
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
		require.NoError(t, err)

		_, err = m.Verify(context.Background(), signed)
		assert.ErrorIs(t, err, ErrAuthenticationFailed)
	})
}

func TestTokenManager_Revoke(t *testing.T) {
	denyList := newFakeDenyList()
	m := NewTokenManager("secret", time.Hour, denyList)

	token, session, err := m.Issue(testPlayer())
	require.NoError(t, err)

	require.NoError(t, m.Revoke(context.Background(), *session))
	assert.Contains(t, denyList.revoked, session.TokenID)

	_, err = m.Verify(context.Background(), token)
	assert.ErrorIs(t, err, ErrTokenRevoked)
}

func TestTokenManager_DenyListError(t *testing.T) {
	denyList := newFakeDenyList()
	denyList.err = errStore
	m := NewTokenManager("secret", time.Hour, denyList)

	token, _, err := m.Issue(testPlayer())
	require.NoError(t, err)

	_, err = m.Verify(context.Background(), token)
	assert.ErrorIs(t, err, errStore)
	assert.NotErrorIs(t, err, ErrAuthenticationFailed)
}

func TestTokenManager_RevokeWithoutDenyList(t *testing.T) {
	m := NewTokenManager("secret", time.Hour, nil)
	token, session, err := m.Issue(testPlayer())
	require.NoError(t, err)

	assert.NoError(t, m.Revoke(context.Background(), *session))
	_, err = m.Verify(context.Background(), token)
	assert.NoError(t, err)
}
