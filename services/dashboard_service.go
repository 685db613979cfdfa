package services

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/Dosada05/micro-tournaments/models"
	"github.com/Dosada05/micro-tournaments/ranking"
	"github.com/Dosada05/micro-tournaments/repositories"
	"github.com/Dosada05/micro-tournaments/utils"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

type DashboardService interface {
	// Load собирает дашборд игрока. Ошибки выборок не возвращаются: соответствующие
	// поля остаются пустыми. Ошибка бывает только если ctx отменён.
	Load(ctx context.Context, session models.Session) (*models.Dashboard, error)
	State(playerID uuid.UUID) models.LoadState
}

type DashboardOptions struct {
	RecentMatchLimit int
	UpcomingLimit    int
	FallbackPrize    float64
	Location         *time.Location
}

type achievementTier struct {
	title       string
	description string
	target      int
}

var achievementTiers = []achievementTier{
	{"First Victory", "Won your first tournament", 1},
	{"Sharpshooter", "Win 5 tournaments", 5},
	{"Champion", "Win 10 tournaments", 10},
}

type dashboardService struct {
	playerRepo       repositories.PlayerRepository
	tournamentRepo   repositories.TournamentRepository
	matchRepo        repositories.MatchRepository
	registrationRepo repositories.RegistrationRepository
	opts             DashboardOptions
	logger           logrus.FieldLogger
	now              Clock

	group    singleflight.Group
	mu       sync.Mutex
	inFlight map[uuid.UUID]int
	loaded   map[uuid.UUID]bool
}

func NewDashboardService(
	playerRepo repositories.PlayerRepository,
	tournamentRepo repositories.TournamentRepository,
	matchRepo repositories.MatchRepository,
	registrationRepo repositories.RegistrationRepository,
	opts DashboardOptions,
	logger logrus.FieldLogger,
) DashboardService {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	return &dashboardService{
		playerRepo:       playerRepo,
		tournamentRepo:   tournamentRepo,
		matchRepo:        matchRepo,
		registrationRepo: registrationRepo,
		opts:             opts,
		logger:           logger,
		now:              systemClock,
		inFlight:         make(map[uuid.UUID]int),
		loaded:           make(map[uuid.UUID]bool),
	}
}

func (s *dashboardService) State(playerID uuid.UUID) models.LoadState {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case s.inFlight[playerID] > 0:
		return models.LoadLoading
	case s.loaded[playerID]:
		return models.LoadReady
	default:
		return models.LoadIdle
	}
}

func (s *dashboardService) begin(playerID uuid.UUID) {
	s.mu.Lock()
	s.inFlight[playerID]++
	s.mu.Unlock()
}

func (s *dashboardService) end(playerID uuid.UUID, completed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inFlight[playerID]--; s.inFlight[playerID] <= 0 {
		delete(s.inFlight, playerID)
	}
	if completed {
		s.loaded[playerID] = true
	}
}

// Load объединяет одновременные загрузки одного игрока в одну.
func (s *dashboardService) Load(ctx context.Context, session models.Session) (*models.Dashboard, error) {
	playerID := session.PlayerID
	s.begin(playerID)

	ch := s.group.DoChan(playerID.String(), func() (interface{}, error) {
		return s.load(ctx, session), ctx.Err()
	})

	select {
	case res := <-ch:
		if err := ctx.Err(); err != nil {
			s.end(playerID, false)
			return nil, err
		}
		dashboard, _ := res.Val.(*models.Dashboard)
		if res.Err != nil || dashboard == nil {
			// Общую загрузку отменил запрос, который её начал; грузим заново для себя.
			dashboard = s.load(ctx, session)
		}
		s.end(playerID, true)

		out := *dashboard
		out.Gamertag = session.Gamertag
		return &out, nil
	case <-ctx.Done():
		s.end(playerID, false)
		return nil, ctx.Err()
	}
}

type dashboardData struct {
	registrations int
	wins          []models.Match
	players       []models.Player
	completed     []models.Match
	recent        []models.Match
	upcoming      []models.Tournament
}

func (s *dashboardService) fetch(ctx context.Context, playerID uuid.UUID, now time.Time) dashboardData {
	var d dashboardData
	log := s.logger.WithField("player_id", playerID)
	completed := models.MatchCompleted

	g, gctx := errgroup.WithContext(ctx)
	degrade := func(name string, fn func() error) {
		g.Go(func() error {
			if err := fn(); err != nil {
				log.WithError(err).Warnf("dashboard fetch %q failed", name)
			}
			return nil
		})
	}

	degrade("registrations", func() (err error) {
		d.registrations, err = s.registrationRepo.CountByPlayer(gctx, playerID)
		return err
	})
	degrade("wins", func() (err error) {
		d.wins, err = s.matchRepo.List(gctx, repositories.ListMatchesFilter{
			WinnerID: &playerID,
			Status:   &completed,
		})
		return err
	})
	degrade("players", func() (err error) {
		d.players, err = s.playerRepo.List(gctx)
		return err
	})
	degrade("completed matches", func() (err error) {
		d.completed, err = s.matchRepo.List(gctx, repositories.ListMatchesFilter{
			Status:  &completed,
			OrderBy: repositories.OrderByCompletedAt,
		})
		return err
	})
	degrade("recent matches", func() (err error) {
		d.recent, err = s.matchRepo.List(gctx, repositories.ListMatchesFilter{
			PlayerID: &playerID,
			Status:   &completed,
			OrderBy:  repositories.OrderByCompletedAt,
			Desc:     true,
			Limit:    s.opts.RecentMatchLimit,
		})
		return err
	})
	degrade("upcoming tournaments", func() (err error) {
		upcoming := models.TournamentUpcoming
		d.upcoming, err = s.tournamentRepo.List(gctx, repositories.ListTournamentsFilter{
			Status:      &upcoming,
			StartsAfter: &now,
			Order:       repositories.StartDateAsc,
			Limit:       s.opts.UpcomingLimit,
		})
		return err
	})

	_ = g.Wait()
	return d
}

func (s *dashboardService) load(ctx context.Context, session models.Session) *models.Dashboard {
	now := s.now()
	d := s.fetch(ctx, session.PlayerID, now)

	wins := len(d.wins)
	stats := models.DashboardStats{
		TournamentsPlayed: d.registrations,
		Wins:              wins,
		WinRate:           winRate(wins, d.registrations),
	}
	if rank, err := ranking.Rank(d.completed, d.players, session.PlayerID); err == nil {
		stats.Rank = &rank
	}

	recent := make([]models.RecentMatch, 0, len(d.recent))
	for _, m := range d.recent {
		recent = append(recent, s.recentMatch(m, session.PlayerID))
	}

	upcoming := make([]models.UpcomingTournament, 0, len(d.upcoming))
	for _, t := range d.upcoming {
		upcoming = append(upcoming, models.UpcomingTournament{
			ID:     t.ID.String(),
			Name:   t.Title,
			Time:   utils.FormatScheduleLabel(t.StartDate, now, s.opts.Location),
			Slots:  fmt.Sprintf("%d/%d", t.CurrentPlayers, t.MaxPlayers),
			Prize:  prizeLabel(t.PrizePool),
			IsFull: t.IsFull(),
		})
	}

	return &models.Dashboard{
		State:         models.LoadReady,
		Gamertag:      session.Gamertag,
		Stats:         stats,
		RecentMatches: recent,
		Upcoming:      upcoming,
		Achievements:  achievements(wins),
		GeneratedAt:   now,
	}
}

func winRate(wins, played int) int {
	if played <= 0 {
		return 0
	}
	return int(math.Round(float64(wins) / float64(played) * 100))
}

const (
	resultWon       = "won"
	resultLost      = "lost"
	resultDraw      = "draw"
	resultUndecided = "undecided"
)

func (s *dashboardService) recentMatch(m models.Match, playerID uuid.UUID) models.RecentMatch {
	at := m.CompletedAt
	if at == nil {
		at = m.ScheduledTime
	}

	row := models.RecentMatch{
		Tournament: m.TournamentTitle(),
		Placement:  "-",
		Prize:      "-",
		Status:     resultUndecided,
	}
	if at != nil {
		row.Date = utils.FormatMatchDate(*at, s.opts.Location)
	}

	// Без записанного победителя результат выводим из счёта.
	own, opp, scored := m.Scores(playerID)
	switch {
	case m.WonBy(playerID), m.WinnerID == nil && scored && own > opp:
		row.Status = resultWon
		row.Placement = "1st"
		row.Prize = utils.FormatMoney(m.Tournament.PlacePrize(0, s.opts.FallbackPrize))
	case m.WinnerID != nil, scored && own < opp:
		row.Status = resultLost
		row.Placement = "2nd"
	case scored:
		row.Status = resultDraw
	}
	return row
}

func achievements(wins int) []models.Achievement {
	list := make([]models.Achievement, 0, len(achievementTiers))
	for _, tier := range achievementTiers {
		a := models.Achievement{
			Title:       tier.title,
			Description: tier.description,
			Unlocked:    wins >= tier.target,
		}
		if !a.Unlocked {
			a.Progress = fmt.Sprintf("%d/%d", wins, tier.target)
		}
		list = append(list, a)
	}
	return list
}
