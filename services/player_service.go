package services

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/Dosada05/micro-tournaments/models"
	"github.com/Dosada05/micro-tournaments/repositories"
	"github.com/Dosada05/micro-tournaments/storage"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type PlayerService interface {
	GetProfile(ctx context.Context, playerID uuid.UUID) (*models.Player, error)
	UpdateAvatar(ctx context.Context, playerID uuid.UUID, file io.Reader, contentType string) (*models.Player, error)
}

type playerService struct {
	playerRepo repositories.PlayerRepository
	uploader   storage.FileUploader
	logger     logrus.FieldLogger
}

func NewPlayerService(playerRepo repositories.PlayerRepository, uploader storage.FileUploader, logger logrus.FieldLogger) PlayerService {
	return &playerService{
		playerRepo: playerRepo,
		uploader:   uploader,
		logger:     logger,
	}
}

func (s *playerService) GetProfile(ctx context.Context, playerID uuid.UUID) (*models.Player, error) {
	player, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player %s: %w", playerID, err)
	}
	populatePlayerDetailsFunc(player, s.uploader)
	return player, nil
}

func (s *playerService) UpdateAvatar(ctx context.Context, playerID uuid.UUID, file io.Reader, contentType string) (*models.Player, error) {
	if s.uploader == nil {
		return nil, ErrUploadsDisabled
	}
	ext, err := storage.ExtensionForContentType(contentType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFileType, err)
	}

	player, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player %s: %w", playerID, err)
	}
	oldKey := player.AvatarKey

	key := storage.AvatarKey(playerID, ext)
	if _, err := s.uploader.Upload(ctx, key, contentType, file); err != nil {
		return nil, fmt.Errorf("failed to upload avatar: %w", err)
	}

	if err := s.playerRepo.UpdateAvatarKey(ctx, playerID, &key); err != nil {
		if delErr := s.uploader.Delete(ctx, key); delErr != nil {
			s.logger.WithError(delErr).WithField("key", key).Warn("failed to clean up orphaned avatar")
		}
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to save avatar key: %w", err)
	}

	if oldKey != nil && *oldKey != "" && *oldKey != key {
		if err := s.uploader.Delete(ctx, *oldKey); err != nil {
			s.logger.WithError(err).WithField("key", *oldKey).Warn("failed to delete previous avatar")
		}
	}

	player.AvatarKey = &key
	populatePlayerDetailsFunc(player, s.uploader)
	return player, nil
}
