package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Dosada05/micro-tournaments/models"
	"github.com/Dosada05/micro-tournaments/repositories"
	"github.com/Dosada05/micro-tournaments/utils"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	defaultTournamentListLimit = 20
	maxTournamentListLimit     = 100
)

type TournamentService interface {
	ListUpcoming(ctx context.Context, limit int) ([]TournamentView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*TournamentView, error)
	Join(ctx context.Context, session models.Session, tournamentID uuid.UUID) (*models.Registration, error)
	Info() TournamentInfo
}

// TournamentView is a tournament with the labels shown in listings.
type TournamentView struct {
	models.Tournament
	Slots      string `json:"slots"`
	PrizeLabel string `json:"prize_label"`
	StartsIn   string `json:"starts_in"`
	IsFull     bool   `json:"is_full"`
}

type Rule struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type PrizeShare struct {
	Place      string `json:"place"`
	Percentage int    `json:"percentage"`
}

type TournamentInfo struct {
	Rules             []Rule       `json:"rules"`
	PrizeDistribution []PrizeShare `json:"prize_distribution"`
}

type tournamentService struct {
	tournamentRepo   repositories.TournamentRepository
	registrationRepo repositories.RegistrationRepository
	transactor       repositories.Transactor
	logger           logrus.FieldLogger
	now              Clock
}

func NewTournamentService(
	tournamentRepo repositories.TournamentRepository,
	registrationRepo repositories.RegistrationRepository,
	transactor repositories.Transactor,
	logger logrus.FieldLogger,
) TournamentService {
	return &tournamentService{
		tournamentRepo:   tournamentRepo,
		registrationRepo: registrationRepo,
		transactor:       transactor,
		logger:           logger,
		now:              systemClock,
	}
}

func (s *tournamentService) ListUpcoming(ctx context.Context, limit int) ([]TournamentView, error) {
	if limit <= 0 {
		limit = defaultTournamentListLimit
	}
	if limit > maxTournamentListLimit {
		limit = maxTournamentListLimit
	}

	status := models.TournamentUpcoming
	tournaments, err := s.tournamentRepo.List(ctx, repositories.ListTournamentsFilter{
		Status: &status,
		Order:  repositories.StartDateAsc,
		Limit:  limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming tournaments: %w", err)
	}

	now := s.now()
	views := make([]TournamentView, 0, len(tournaments))
	for _, t := range tournaments {
		views = append(views, toTournamentView(t, now))
	}
	return views, nil
}

func (s *tournamentService) GetByID(ctx context.Context, id uuid.UUID) (*TournamentView, error) {
	t, err := s.tournamentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to get tournament %s: %w", id, err)
	}
	view := toTournamentView(*t, s.now())
	return &view, nil
}

// Join регистрирует игрока на турнир: вставка регистрации и счётчик мест меняются
// в одной транзакции.
func (s *tournamentService) Join(ctx context.Context, session models.Session, tournamentID uuid.UUID) (*models.Registration, error) {
	t, err := s.tournamentRepo.GetByID(ctx, tournamentID)
	if err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to get tournament %s: %w", tournamentID, err)
	}
	if t.Status != models.TournamentUpcoming {
		return nil, ErrRegistrationNotOpen
	}
	if t.IsFull() {
		return nil, ErrTournamentFull
	}

	reg := &models.Registration{TournamentID: tournamentID, PlayerID: session.PlayerID}
	err = s.transactor.WithinTx(ctx, func(exec repositories.SQLExecutor) error {
		if err := s.registrationRepo.Create(ctx, exec, reg); err != nil {
			return err
		}
		return s.tournamentRepo.IncrementPlayers(ctx, exec, tournamentID)
	})
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrRegistrationConflict):
			return nil, ErrRegistrationConflict
		case errors.Is(err, repositories.ErrTournamentNotJoinable):
			return nil, ErrTournamentFull
		case errors.Is(err, repositories.ErrRegistrationInvalid):
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to join tournament %s: %w", tournamentID, err)
	}

	s.logger.WithFields(logrus.Fields{
		"player_id":     session.PlayerID,
		"tournament_id": tournamentID,
	}).Info("player joined tournament")
	return reg, nil
}

func (s *tournamentService) Info() TournamentInfo {
	places := []string{"1st Place", "2nd Place", "3rd Place"}
	shares := make([]PrizeShare, 0, len(models.PrizeDistribution))
	for i, share := range models.PrizeDistribution {
		shares = append(shares, PrizeShare{Place: places[i], Percentage: int(share*100 + 0.5)})
	}
	return TournamentInfo{
		Rules: []Rule{
			{Title: "Eligibility", Description: "Open to all skill levels. Age 13+ required."},
			{Title: "Format", Description: "Single elimination, best of 3 matches."},
			{Title: "Fair Play", Description: "Strict anti-cheat policy enforced."},
			{Title: "Prizes", Description: "Top 3 finishers receive cash prizes."},
		},
		PrizeDistribution: shares,
	}
}

func toTournamentView(t models.Tournament, now time.Time) TournamentView {
	return TournamentView{
		Tournament: t,
		Slots:      fmt.Sprintf("%d/%d", t.CurrentPlayers, t.MaxPlayers),
		PrizeLabel: prizeLabel(t.PrizePool),
		StartsIn:   utils.FormatRelative(t.StartDate, now),
		IsFull:     t.IsFull(),
	}
}
