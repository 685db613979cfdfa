package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const defaultConfigFile = "configs/server.toml"

// Notices задаёт окна уведомлений и лимиты выборок.
type Notices struct {
	TournamentWindow Duration `toml:"tournament_window"`
	MatchWindow      Duration `toml:"match_window"`
	FallbackPrize    float64  `toml:"fallback_prize"`
	TournamentLimit  int      `toml:"tournament_limit"`
	WinLimit         int      `toml:"win_limit"`
	MatchLimit       int      `toml:"match_limit"`
	PushInterval     Duration `toml:"push_interval"`
}

type Dashboard struct {
	RecentMatchLimit int    `toml:"recent_match_limit"`
	UpcomingLimit    int    `toml:"upcoming_limit"`
	TimeZone         string `toml:"time_zone"`
}

type Redis struct {
	Addr     string
	Password string
	DB       int
}

type R2 struct {
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	PublicBaseURL   string
}

// Enabled reports whether all R2 settings are present.
func (r R2) Enabled() bool {
	return r.AccountID != "" && r.AccessKeyID != "" && r.SecretAccessKey != "" && r.BucketName != "" && r.PublicBaseURL != ""
}

// Config хранит все конфигурационные параметры приложения.
type Config struct {
	DatabaseURL        string   `toml:"-"`
	JWTSecretKey       string   `toml:"-"`
	ServerPort         int      `toml:"server_port"`
	LogLevel           string   `toml:"log_level"`
	CORSAllowedOrigins []string `toml:"cors_allowed_origins"`
	WinnersLimit       int      `toml:"winners_limit"`

	Notices   Notices   `toml:"notices"`
	Dashboard Dashboard `toml:"dashboard"`
	Redis     Redis     `toml:"-"`
	R2        R2        `toml:"-"`
}

// Duration lets TOML files use strings like "24h".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

func defaults() Config {
	return Config{
		ServerPort:         8080,
		LogLevel:           "info",
		CORSAllowedOrigins: []string{"*"},
		WinnersLimit:       3,
		Notices: Notices{
			TournamentWindow: Duration{24 * time.Hour},
			MatchWindow:      Duration{30 * time.Minute},
			FallbackPrize:    250,
			TournamentLimit:  5,
			WinLimit:         3,
			MatchLimit:       5,
			PushInterval:     Duration{30 * time.Second},
		},
		Dashboard: Dashboard{
			RecentMatchLimit: 5,
			UpcomingLimit:    3,
			TimeZone:         "UTC",
		},
	}
}

// Load загружает конфигурацию: значения по умолчанию, затем TOML-файл (если есть),
// затем переменные окружения.
func Load() (*Config, error) {
	// Загружаем .env файл, если он есть. Ошибку не считаем фатальной.
	_ = godotenv.Load()

	cfg := defaults()

	path := os.Getenv("CONFIG_FILE")
	if path == "" {
		path = defaultConfigFile
	}
	if err := loadFile(path, &cfg); err != nil {
		return nil, err
	}

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is not set")
	}

	cfg.JWTSecretKey = os.Getenv("JWT_SECRET_KEY")
	if cfg.JWTSecretKey == "" {
		return nil, fmt.Errorf("JWT_SECRET_KEY environment variable is not set")
	}

	if portStr := os.Getenv("SERVER_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid SERVER_PORT environment variable: %w", err)
		}
		cfg.ServerPort = port
	}
	if cfg.ServerPort <= 0 || cfg.ServerPort > 65535 {
		return nil, fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.ServerPort)
	}

	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}
	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		cfg.CORSAllowedOrigins = splitList(origins)
	}

	cfg.Redis = Redis{
		Addr:     os.Getenv("REDIS_ADDR"),
		Password: os.Getenv("REDIS_PASSWORD"),
	}
	if dbStr := os.Getenv("REDIS_DB"); dbStr != "" {
		db, err := strconv.Atoi(dbStr)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB environment variable: %w", err)
		}
		cfg.Redis.DB = db
	}

	cfg.R2 = R2{
		AccountID:       os.Getenv("R2_ACCOUNT_ID"),
		AccessKeyID:     os.Getenv("R2_ACCESS_KEY_ID"),
		SecretAccessKey: os.Getenv("R2_SECRET_ACCESS_KEY"),
		BucketName:      os.Getenv("R2_BUCKET_NAME"),
		PublicBaseURL:   os.Getenv("R2_PUBLIC_BASE_URL"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func loadFile(path string, cfg *Config) error {
	_, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to decode config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) validate() error {
	if c.Notices.TournamentWindow.Duration <= 0 || c.Notices.MatchWindow.Duration <= 0 {
		return errors.New("notice windows must be positive")
	}
	if c.Notices.PushInterval.Duration <= 0 {
		return errors.New("notices.push_interval must be positive")
	}
	if c.Notices.FallbackPrize < 0 {
		return errors.New("notices.fallback_prize must not be negative")
	}
	if _, err := time.LoadLocation(c.Dashboard.TimeZone); err != nil {
		return fmt.Errorf("invalid dashboard.time_zone %q: %w", c.Dashboard.TimeZone, err)
	}
	return nil
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
