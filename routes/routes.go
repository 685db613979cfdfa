package routes

import (
	"net/http"

	"github.com/Dosada05/micro-tournaments/handlers"
	"github.com/Dosada05/micro-tournaments/middleware"
	"github.com/Dosada05/micro-tournaments/models"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Handlers struct {
	Auth          *handlers.AuthHandler
	Tournament    *handlers.TournamentHandler
	Match         *handlers.MatchHandler
	Leaderboard   *handlers.LeaderboardHandler
	Dashboard     *handlers.DashboardHandler
	Notification  *handlers.NotificationHandler
	Player        *handlers.PlayerHandler
	AdminPlayer   *handlers.AdminPlayerHandler
	WebSocket     *handlers.WebSocketHandler
	Health        *handlers.HealthHandler
	Verifier      middleware.SessionVerifier
	AllowedOrigin []string
}

func SetupRoutes(router chi.Router, h Handlers, logger logrus.FieldLogger) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.RequestLogger(&chiMiddleware.DefaultLogFormatter{
		Logger:  logger,
		NoColor: true,
	}))
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.AllowedOrigin,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	authenticate := middleware.Authenticate(h.Verifier, logger)

	router.Get("/healthz", h.Health.Healthz)
	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	router.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.Auth.Register)
		r.Post("/login", h.Auth.Login)
		r.With(authenticate).Post("/logout", h.Auth.Logout)
	})

	router.Route("/tournaments", func(r chi.Router) {
		r.Get("/", h.Tournament.ListTournaments)
		r.Get("/info", h.Tournament.GetTournamentInfo)
		r.Get("/{tournamentID}", h.Tournament.GetTournamentByID)
		r.Get("/{tournamentID}/matches", h.Match.ListTournamentMatches)
		r.With(authenticate).Post("/{tournamentID}/join", h.Tournament.JoinTournament)
	})

	router.Get("/matches/{matchID}", h.Match.GetMatch)
	router.Get("/winners", h.Leaderboard.GetWinners)
	router.Get("/leaderboard", h.Leaderboard.GetLeaderboard)

	router.Group(func(r chi.Router) {
		r.Use(authenticate)

		r.Get("/dashboard", h.Dashboard.GetDashboard)
		r.Get("/dashboard/state", h.Dashboard.GetDashboardState)
		r.Get("/notifications", h.Notification.ListNotifications)
		r.Get("/players/me", h.Player.GetMe)
		r.Put("/players/me/avatar", h.Player.UploadAvatar)
		r.Get("/ws/notifications", h.WebSocket.ServeWs)

		r.With(middleware.Authorize(models.RoleAdmin)).Get("/admin/players", h.AdminPlayer.ListPlayers)
	})
}
