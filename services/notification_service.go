package services

import (
	"context"
	"time"

	"github.com/Dosada05/micro-tournaments/models"
	"github.com/Dosada05/micro-tournaments/notifications"
	"github.com/Dosada05/micro-tournaments/realtime"
	"github.com/Dosada05/micro-tournaments/repositories"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// NoticeLimits bounds the three fetches feeding the notification list.
type NoticeLimits struct {
	Tournaments int
	Wins        int
	Matches     int
}

type NotificationService interface {
	ForPlayer(ctx context.Context, playerID uuid.UUID, sortByTime bool) []models.Notice
	// RunPusher periodically sends fresh notices to every connected player until ctx ends.
	RunPusher(ctx context.Context, interval time.Duration, rooms RoomBroadcaster)
}

// RoomBroadcaster is the part of the realtime hub the pusher needs.
type RoomBroadcaster interface {
	Rooms() []string
	BroadcastToRoom(roomID string, message interface{})
}

type notificationService struct {
	tournamentRepo repositories.TournamentRepository
	matchRepo      repositories.MatchRepository
	aggregator     *notifications.Aggregator
	limits         NoticeLimits
	logger         logrus.FieldLogger
	now            Clock
}

func NewNotificationService(
	tournamentRepo repositories.TournamentRepository,
	matchRepo repositories.MatchRepository,
	windows notifications.Windows,
	limits NoticeLimits,
	logger logrus.FieldLogger,
) NotificationService {
	return &notificationService{
		tournamentRepo: tournamentRepo,
		matchRepo:      matchRepo,
		aggregator:     notifications.NewAggregator(windows),
		limits:         limits,
		logger:         logger,
		now:            systemClock,
	}
}

// ForPlayer загружает три выборки параллельно. Ошибка любой из них логируется,
// а выборка считается пустой.
func (s *notificationService) ForPlayer(ctx context.Context, playerID uuid.UUID, sortByTime bool) []models.Notice {
	now := s.now()
	log := s.logger.WithField("player_id", playerID)

	var in notifications.Input
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		status := models.TournamentUpcoming
		tournaments, err := s.tournamentRepo.List(gctx, repositories.ListTournamentsFilter{
			Status:      &status,
			StartsAfter: &now,
			Order:       repositories.StartDateAsc,
			Limit:       s.limits.Tournaments,
		})
		if err != nil {
			log.WithError(err).Warn("failed to fetch upcoming tournaments for notices")
			return nil
		}
		in.Tournaments = tournaments
		return nil
	})

	g.Go(func() error {
		status := models.MatchCompleted
		wins, err := s.matchRepo.List(gctx, repositories.ListMatchesFilter{
			WinnerID: &playerID,
			Status:   &status,
			OrderBy:  repositories.OrderByCompletedAt,
			Desc:     true,
			Limit:    s.limits.Wins,
		})
		if err != nil {
			log.WithError(err).Warn("failed to fetch recent wins for notices")
			return nil
		}
		in.Wins = wins
		return nil
	})

	g.Go(func() error {
		status := models.MatchUpcoming
		matches, err := s.matchRepo.List(gctx, repositories.ListMatchesFilter{
			PlayerID:       &playerID,
			Status:         &status,
			ScheduledAfter: &now,
			OrderBy:        repositories.OrderByScheduledTime,
			Limit:          s.limits.Matches,
		})
		if err != nil {
			log.WithError(err).Warn("failed to fetch upcoming matches for notices")
			return nil
		}
		in.Matches = matches
		return nil
	})

	_ = g.Wait()

	notices := s.aggregator.Aggregate(in, now)
	if sortByTime {
		notices = notifications.SortByTime(notices, now)
	}
	return notices
}

func (s *notificationService) RunPusher(ctx context.Context, interval time.Duration, rooms RoomBroadcaster) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.logger.WithField("interval", interval.String()).Info("notice pusher started")
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("notice pusher stopped")
			return
		case <-ticker.C:
			s.pushOnce(ctx, rooms)
		}
	}
}

func (s *notificationService) pushOnce(ctx context.Context, rooms RoomBroadcaster) {
	for _, room := range rooms.Rooms() {
		playerID, err := uuid.Parse(room)
		if err != nil {
			s.logger.WithField("room", room).Warn("skipping room with non-player id")
			continue
		}
		notices := s.ForPlayer(ctx, playerID, false)
		rooms.BroadcastToRoom(room, realtime.Message{
			Type:    "notifications",
			Payload: notices,
			RoomID:  room,
		})
	}
}
