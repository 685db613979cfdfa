package services

import (
	"context"
	"fmt"

	"github.com/Dosada05/micro-tournaments/models"
	"github.com/Dosada05/micro-tournaments/repositories"
	"github.com/Dosada05/micro-tournaments/storage"
)

type PlayerListResponse struct {
	Players    []models.Player `json:"players"`
	TotalCount int             `json:"total_count"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
}

type AdminPlayerService interface {
	ListPlayers(ctx context.Context, page, limit int) (*PlayerListResponse, error)
}

type adminPlayerService struct {
	playerRepo repositories.PlayerRepository
	uploader   storage.FileUploader
}

func NewAdminPlayerService(playerRepo repositories.PlayerRepository, uploader storage.FileUploader) AdminPlayerService {
	return &adminPlayerService{playerRepo: playerRepo, uploader: uploader}
}

func (s *adminPlayerService) ListPlayers(ctx context.Context, page, limit int) (*PlayerListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	total, err := s.playerRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count players: %w", err)
	}
	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}

	start := (page - 1) * limit
	if start > len(players) {
		start = len(players)
	}
	end := start + limit
	if end > len(players) {
		end = len(players)
	}
	pageItems := make([]models.Player, end-start)
	copy(pageItems, players[start:end])
	for i := range pageItems {
		populatePlayerDetailsFunc(&pageItems[i], s.uploader)
	}

	return &PlayerListResponse{
		Players:    pageItems,
		TotalCount: total,
		Page:       page,
		Limit:      limit,
	}, nil
}
