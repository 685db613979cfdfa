package main

import (
	"context"
	"errors"
	"fmt"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dosada05/micro-tournaments/cache"
	"github.com/Dosada05/micro-tournaments/config"
	"github.com/Dosada05/micro-tournaments/db"
	_ "github.com/Dosada05/micro-tournaments/docs"
	"github.com/Dosada05/micro-tournaments/handlers"
	applog "github.com/Dosada05/micro-tournaments/logger"
	"github.com/Dosada05/micro-tournaments/notifications"
	"github.com/Dosada05/micro-tournaments/realtime"
	"github.com/Dosada05/micro-tournaments/repositories"
	"github.com/Dosada05/micro-tournaments/routes"
	"github.com/Dosada05/micro-tournaments/services"
	"github.com/Dosada05/micro-tournaments/storage"
	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

// @title						Micro Tournaments API
// @version					1.0
// @description				Турниры, дашборд игрока, победители и уведомления.
// @BasePath					/
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
func main() {
	// Настройка логгера
	logger := applog.New("info")

	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		logger.WithError(err).Fatal("failed to load configuration")
	}
	logger = applog.New(cfg.LogLevel)
	handlers.SetLogger(logger)
	logger.WithField("port", cfg.ServerPort).Info("configuration loaded")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Подключение к базе данных
	dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second)
	if err != nil {
		logger.WithError(err).Fatal("failed to connect to database")
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.WithError(err).Error("failed to close database connection")
		} else {
			logger.Info("database connection closed")
		}
	}()
	logger.Info("database connection established")

	if err := db.Migrate(dbConn); err != nil {
		logger.WithError(err).Fatal("failed to apply migrations")
	}

	// Redis опционален: без него нет отзыва токенов и кэша рейтинга.
	var (
		denyList services.TokenDenyList
		lbCache  services.LeaderboardCache
	)
	if cfg.Redis.Addr != "" {
		rdb, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			logger.WithError(err).Fatal("failed to connect to redis")
		}
		defer rdb.Close()
		denyList = cache.NewTokenDenyList(rdb)
		lbCache = cache.NewLeaderboardCache(rdb, cache.LeaderboardTTL)
		logger.WithField("addr", cfg.Redis.Addr).Info("redis connected")
	} else {
		logger.Warn("REDIS_ADDR is not set: logout will not revoke tokens, leaderboard is not cached")
	}

	// Инициализация загрузчика файлов (Cloudflare R2)
	var uploader storage.FileUploader
	if cfg.R2.Enabled() {
		uploader, err = storage.NewCloudflareR2Uploader(ctx, cfg.R2)
		if err != nil {
			logger.WithError(err).Fatal("failed to initialize Cloudflare R2 uploader")
		}
		logger.Info("Cloudflare R2 uploader initialized")
	} else {
		logger.Warn("R2 settings are incomplete: avatar uploads are disabled")
	}

	loc, err := time.LoadLocation(cfg.Dashboard.TimeZone)
	if err != nil {
		logger.WithError(err).Fatal("failed to load dashboard time zone")
	}

	hub := realtime.NewHub(logger)
	go hub.Run(ctx)

	// Инициализация репозиториев
	playerRepo := repositories.NewPostgresPlayerRepository(dbConn)
	tournamentRepo := repositories.NewPostgresTournamentRepository(dbConn)
	matchRepo := repositories.NewPostgresMatchRepository(dbConn)
	registrationRepo := repositories.NewPostgresRegistrationRepository(dbConn)
	transactor := repositories.NewPostgresTransactor(dbConn)
	logger.Info("Repositories initialized")

	// Инициализация сервисов
	tokenManager := services.NewTokenManager(cfg.JWTSecretKey, services.DefaultTokenTTL, denyList)
	authService := services.NewAuthService(playerRepo, tokenManager, uploader, logger)
	playerService := services.NewPlayerService(playerRepo, uploader, logger)
	tournamentService := services.NewTournamentService(tournamentRepo, registrationRepo, transactor, logger)
	winnersService := services.NewWinnersService(playerRepo, tournamentRepo, matchRepo, lbCache, cfg.WinnersLimit, loc, logger)
	dashboardService := services.NewDashboardService(
		playerRepo,
		tournamentRepo,
		matchRepo,
		registrationRepo,
		services.DashboardOptions{
			RecentMatchLimit: cfg.Dashboard.RecentMatchLimit,
			UpcomingLimit:    cfg.Dashboard.UpcomingLimit,
			FallbackPrize:    cfg.Notices.FallbackPrize,
			Location:         loc,
		},
		logger,
	)
	notificationService := services.NewNotificationService(
		tournamentRepo,
		matchRepo,
		notifications.Windows{
			Tournament:    cfg.Notices.TournamentWindow.Duration,
			Match:         cfg.Notices.MatchWindow.Duration,
			FallbackPrize: cfg.Notices.FallbackPrize,
		},
		services.NoticeLimits{
			Tournaments: cfg.Notices.TournamentLimit,
			Wins:        cfg.Notices.WinLimit,
			Matches:     cfg.Notices.MatchLimit,
		},
		logger,
	)
	matchService := services.NewMatchService(matchRepo, tournamentRepo)
	adminPlayerService := services.NewAdminPlayerService(playerRepo, uploader)
	logger.Info("Services initialized")

	go notificationService.RunPusher(ctx, cfg.Notices.PushInterval.Duration, hub)

	// Настройка маршрутизатора
	router := chi.NewRouter()
	routes.SetupRoutes(router, routes.Handlers{
		Auth:          handlers.NewAuthHandler(authService),
		Tournament:    handlers.NewTournamentHandler(tournamentService),
		Match:         handlers.NewMatchHandler(matchService),
		Leaderboard:   handlers.NewLeaderboardHandler(winnersService),
		Dashboard:     handlers.NewDashboardHandler(dashboardService),
		Notification:  handlers.NewNotificationHandler(notificationService),
		Player:        handlers.NewPlayerHandler(playerService),
		AdminPlayer:   handlers.NewAdminPlayerHandler(adminPlayerService),
		WebSocket:     handlers.NewWebSocketHandler(hub, notificationService, cfg.CORSAllowedOrigins),
		Health:        handlers.NewHealthHandler(dbConn),
		Verifier:      tokenManager,
		AllowedOrigin: cfg.CORSAllowedOrigins,
	}, logger)
	logger.Info("Routes configured")

	errorLog := logger.WriterLevel(logrus.ErrorLevel)
	defer errorLog.Close()

	// Настройка и запуск HTTP-сервера
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     stdlog.New(errorLog, "", 0),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.WithField("address", server.Addr).Info("starting server")
		serverErrors <- server.ListenAndServe()
	}()

	// Ожидание сигнала завершения
	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Error("server error")
			os.Exit(1)
		}
		logger.Info("server stopped gracefully")
	case <-ctx.Done():
		logger.Info("shutdown signal received")
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		logger.WithField("timeout", 15*time.Second).Info("shutting down server")
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.WithError(err).Error("graceful shutdown failed")
			if closeErr := server.Close(); closeErr != nil {
				logger.WithError(closeErr).Error("failed to force close server")
			}
			os.Exit(1)
		}
		logger.Info("server shutdown complete")
	}
	logger.Info("application exited")
}
