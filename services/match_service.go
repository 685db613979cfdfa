package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Dosada05/micro-tournaments/models"
	"github.com/Dosada05/micro-tournaments/repositories"
	"github.com/google/uuid"
)

// ErrMatchesListFailed - общая ошибка для листинга матчей
var ErrMatchesListFailed = errors.New("failed to list matches")

type MatchService interface {
	ListByTournament(ctx context.Context, tournamentID uuid.UUID) ([]models.Match, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Match, error)
}

type matchService struct {
	matchRepo      repositories.MatchRepository
	tournamentRepo repositories.TournamentRepository
}

func NewMatchService(matchRepo repositories.MatchRepository, tournamentRepo repositories.TournamentRepository) MatchService {
	return &matchService{
		matchRepo:      matchRepo,
		tournamentRepo: tournamentRepo,
	}
}

// ListByTournament возвращает сетку турнира в порядке расписания.
func (s *matchService) ListByTournament(ctx context.Context, tournamentID uuid.UUID) ([]models.Match, error) {
	if _, err := s.tournamentRepo.GetByID(ctx, tournamentID); err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to get tournament %s: %w", tournamentID, err)
	}

	matches, err := s.matchRepo.List(ctx, repositories.ListMatchesFilter{
		TournamentID: &tournamentID,
		OrderBy:      repositories.OrderByScheduledTime,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: tournament %s: %w", ErrMatchesListFailed, tournamentID, err)
	}
	if matches == nil {
		return []models.Match{}, nil
	}
	return matches, nil
}

func (s *matchService) GetByID(ctx context.Context, id uuid.UUID) (*models.Match, error) {
	match, err := s.matchRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match %s: %w", id, err)
	}
	return match, nil
}
