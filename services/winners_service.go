package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Dosada05/micro-tournaments/models"
	"github.com/Dosada05/micro-tournaments/ranking"
	"github.com/Dosada05/micro-tournaments/repositories"
	"github.com/Dosada05/micro-tournaments/utils"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const (
	podiumSize     = 3
	hallOfFameSize = 3
	podiumWorkers  = 8
)

// LeaderboardCache is an optional store for the computed global leaderboard.
type LeaderboardCache interface {
	Get(ctx context.Context) ([]models.LeaderboardEntry, bool, error)
	Set(ctx context.Context, entries []models.LeaderboardEntry) error
}

type WinnersService interface {
	// Winners собирает пьедесталы последних завершённых турниров и зал славы.
	Winners(ctx context.Context) *models.WinnersPage
	Leaderboard(ctx context.Context, limit int) ([]models.LeaderboardEntry, error)
}

type winnersService struct {
	playerRepo     repositories.PlayerRepository
	tournamentRepo repositories.TournamentRepository
	matchRepo      repositories.MatchRepository
	cache          LeaderboardCache
	tournaments    int
	loc            *time.Location
	logger         logrus.FieldLogger
}

func NewWinnersService(
	playerRepo repositories.PlayerRepository,
	tournamentRepo repositories.TournamentRepository,
	matchRepo repositories.MatchRepository,
	cache LeaderboardCache,
	tournaments int,
	loc *time.Location,
	logger logrus.FieldLogger,
) WinnersService {
	if tournaments <= 0 {
		tournaments = 3
	}
	return &winnersService{
		playerRepo:     playerRepo,
		tournamentRepo: tournamentRepo,
		matchRepo:      matchRepo,
		cache:          cache,
		tournaments:    tournaments,
		loc:            loc,
		logger:         logger,
	}
}

func (s *winnersService) Winners(ctx context.Context) *models.WinnersPage {
	page := &models.WinnersPage{
		Tournaments: []models.TournamentWinners{},
		HallOfFame:  []models.HallOfFameEntry{},
	}

	players, err := s.playerRepo.List(ctx)
	if err != nil {
		s.logger.WithError(err).Warn("failed to fetch players for winners page")
	}
	gamertags := gamertagIndex(players)

	// Все завершённые турниры: выигрыши в зале славы считаются за всё время, как и победы.
	status := models.TournamentCompleted
	tournaments, err := s.tournamentRepo.List(ctx, repositories.ListTournamentsFilter{
		Status: &status,
		Order:  repositories.StartDateDesc,
	})
	if err != nil {
		s.logger.WithError(err).Warn("failed to fetch completed tournaments")
	}

	podiums := make([]models.TournamentWinners, len(tournaments))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(podiumWorkers)
	for i, t := range tournaments {
		g.Go(func() error {
			podiums[i] = s.podium(gctx, t, gamertags)
			return nil
		})
	}
	_ = g.Wait()
	page.Tournaments = podiums[:min(len(podiums), s.tournaments)]

	earnings := make(map[uuid.UUID]float64)
	for _, tw := range podiums {
		for _, place := range tw.Podium {
			earnings[place.PlayerID] += place.Prize
		}
	}

	board, err := s.Leaderboard(ctx, hallOfFameSize)
	if err != nil {
		s.logger.WithError(err).Warn("failed to build hall of fame")
		return page
	}
	for _, e := range board {
		if e.Wins == 0 {
			break
		}
		page.HallOfFame = append(page.HallOfFame, models.HallOfFameEntry{
			Rank:        e.Rank,
			PlayerID:    e.PlayerID,
			Gamertag:    e.Gamertag,
			Wins:        e.Wins,
			Earnings:    earnings[e.PlayerID],
			EarningsStr: utils.FormatMoney(earnings[e.PlayerID]),
		})
	}
	return page
}

func (s *winnersService) podium(ctx context.Context, t models.Tournament, gamertags map[uuid.UUID]string) models.TournamentWinners {
	tw := models.TournamentWinners{
		TournamentID: t.ID,
		Title:        t.Title,
		Date:         utils.FormatMatchDate(t.StartDate, s.loc),
		Podium:       []models.PodiumPlace{},
	}

	status := models.MatchCompleted
	matches, err := s.matchRepo.List(ctx, repositories.ListMatchesFilter{
		TournamentID: &t.ID,
		Status:       &status,
		OrderBy:      repositories.OrderByCompletedAt,
	})
	if err != nil {
		s.logger.WithError(err).WithField("tournament_id", t.ID).Warn("failed to fetch tournament matches")
		return tw
	}

	summary := t.Summary()
	for i, st := range ranking.WinCounts(matches) {
		if i >= podiumSize {
			break
		}
		prize := summary.PlacePrize(i, 0)
		tw.Podium = append(tw.Podium, models.PodiumPlace{
			Place:    i + 1,
			PlayerID: st.PlayerID,
			Gamertag: gamertags[st.PlayerID],
			Wins:     st.Wins,
			Prize:    prize,
			PrizeStr: prizeLabel(&prize),
		})
	}
	return tw
}

func (s *winnersService) Leaderboard(ctx context.Context, limit int) ([]models.LeaderboardEntry, error) {
	if s.cache != nil {
		entries, ok, err := s.cache.Get(ctx)
		if err != nil {
			s.logger.WithError(err).Warn("leaderboard cache read failed")
		} else if ok {
			return ranking.Top(entries, limit), nil
		}
	}

	var (
		players []models.Player
		matches []models.Match
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		players, err = s.playerRepo.List(gctx)
		if err != nil {
			return fmt.Errorf("failed to list players: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		status := models.MatchCompleted
		var err error
		matches, err = s.matchRepo.List(gctx, repositories.ListMatchesFilter{
			Status:  &status,
			OrderBy: repositories.OrderByCompletedAt,
		})
		if err != nil {
			return fmt.Errorf("failed to list completed matches: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	entries := ranking.Leaderboard(matches, players)
	if s.cache != nil {
		if err := s.cache.Set(ctx, entries); err != nil {
			s.logger.WithError(err).Warn("leaderboard cache write failed")
		}
	}
	return ranking.Top(entries, limit), nil
}
