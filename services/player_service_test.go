package services

import (
	"context"
	"strings"
	"testing"

	"github.com/Dosada05/micro-tournaments/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerService_GetProfile(t *testing.T) {
	key := "avatars/a.png"
	player := models.Player{ID: uuid.New(), Gamertag: "ProGamer123", PasswordHash: "hash", AvatarKey: &key}
	svc := NewPlayerService(&fakePlayerRepo{players: []models.Player{player}}, newFakeUploader(), testLogger())

	got, err := svc.GetProfile(context.Background(), player.ID)
	require.NoError(t, err)
	assert.Empty(t, got.PasswordHash)
	require.NotNil(t, got.AvatarURL)
	assert.Equal(t, "https://cdn.example.com/avatars/a.png", *got.AvatarURL)

	_, err = svc.GetProfile(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrPlayerNotFound)
}

func TestPlayerService_UpdateAvatar(t *testing.T) {
	oldKey := "avatars/old.png"
	player := models.Player{ID: uuid.New(), AvatarKey: &oldKey}
	repo := &fakePlayerRepo{players: []models.Player{player}}
	uploader := newFakeUploader()
	svc := NewPlayerService(repo, uploader, testLogger())

	got, err := svc.UpdateAvatar(context.Background(), player.ID, strings.NewReader("png-bytes"), "image/png")
	require.NoError(t, err)

	require.NotNil(t, got.AvatarKey)
	newKey := *got.AvatarKey
	assert.True(t, strings.HasPrefix(newKey, "avatars/"+player.ID.String()+"/"))
	assert.True(t, strings.HasSuffix(newKey, ".png"))
	assert.Equal(t, []byte("png-bytes"), uploader.objects[newKey])
	assert.Equal(t, []string{oldKey}, uploader.deleted)
	assert.Equal(t, newKey, *repo.players[0].AvatarKey)
}

func TestPlayerService_UpdateAvatarErrors(t *testing.T) {
	player := models.Player{ID: uuid.New()}

	t.Run("uploads disabled", func(t *testing.T) {
		svc := NewPlayerService(&fakePlayerRepo{players: []models.Player{player}}, nil, testLogger())
		_, err := svc.UpdateAvatar(context.Background(), player.ID, strings.NewReader("x"), "image/png")
		assert.ErrorIs(t, err, ErrUploadsDisabled)
	})

	t.Run("unsupported type", func(t *testing.T) {
		svc := NewPlayerService(&fakePlayerRepo{players: []models.Player{player}}, newFakeUploader(), testLogger())
		_, err := svc.UpdateAvatar(context.Background(), player.ID, strings.NewReader("x"), "text/plain")
		assert.ErrorIs(t, err, ErrUnsupportedFileType)
	})

	t.Run("unknown player", func(t *testing.T) {
		uploader := newFakeUploader()
		svc := NewPlayerService(&fakePlayerRepo{}, uploader, testLogger())
		_, err := svc.UpdateAvatar(context.Background(), player.ID, strings.NewReader("x"), "image/png")
		assert.ErrorIs(t, err, ErrPlayerNotFound)
		assert.Empty(t, uploader.objects)
	})

	t.Run("save fails removes upload", func(t *testing.T) {
		uploader := newFakeUploader()
		repo := &fakePlayerRepo{players: []models.Player{player}, updateErr: errStore}
		svc := NewPlayerService(repo, uploader, testLogger())

		_, err := svc.UpdateAvatar(context.Background(), player.ID, strings.NewReader("x"), "image/jpeg")
		assert.ErrorIs(t, err, errStore)
		assert.Empty(t, uploader.objects)
		assert.Len(t, uploader.deleted, 1)
	})
}
