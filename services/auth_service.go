package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Dosada05/micro-tournaments/models"
	"github.com/Dosada05/micro-tournaments/repositories"
	"github.com/Dosada05/micro-tournaments/storage"
	"github.com/Dosada05/micro-tournaments/utils"
	"github.com/sirupsen/logrus"
)

const minPasswordLength = 6

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, input LoginInput) (*AuthResult, error)
	Logout(ctx context.Context, session models.Session) error
}

type RegisterInput struct {
	PlayerName string            `json:"player_name"`
	Email      string            `json:"email"`
	Gamertag   string            `json:"gamertag"`
	Password   string            `json:"password"`
	SkillLevel models.SkillLevel `json:"skill_level"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResult is returned by both register and login.
type AuthResult struct {
	Player  *models.Player  `json:"player"`
	Token   string          `json:"token"`
	Session *models.Session `json:"session"`
}

type authService struct {
	playerRepo repositories.PlayerRepository
	tokens     *TokenManager
	uploader   storage.FileUploader
	logger     logrus.FieldLogger
}

func NewAuthService(
	playerRepo repositories.PlayerRepository,
	tokens *TokenManager,
	uploader storage.FileUploader,
	logger logrus.FieldLogger,
) AuthService {
	return &authService{
		playerRepo: playerRepo,
		tokens:     tokens,
		uploader:   uploader,
		logger:     logger,
	}
}

func (in *RegisterInput) normalize() error {
	in.PlayerName = strings.TrimSpace(in.PlayerName)
	in.Gamertag = strings.TrimSpace(in.Gamertag)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))

	if in.PlayerName == "" || in.Email == "" || in.Gamertag == "" || in.Password == "" {
		return fmt.Errorf("%w: player_name, email, gamertag and password are required", ErrValidationFailed)
	}
	if !utils.IsValidEmail(in.Email) {
		return fmt.Errorf("%w: email address is invalid", ErrValidationFailed)
	}
	if len(in.Password) < minPasswordLength {
		return ErrPasswordTooShort
	}
	if in.SkillLevel == "" {
		in.SkillLevel = models.SkillIntermediate
	}
	if !in.SkillLevel.Valid() {
		return fmt.Errorf("%w: unknown skill level %q", ErrValidationFailed, in.SkillLevel)
	}
	return nil
}

func (s *authService) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	if err := input.normalize(); err != nil {
		return nil, err
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("ошибка хеширования пароля: %w", err)
	}

	player := &models.Player{
		PlayerName:   input.PlayerName,
		Email:        input.Email,
		Gamertag:     input.Gamertag,
		SkillLevel:   input.SkillLevel,
		Role:         models.RoleUser,
		PasswordHash: hash,
	}

	if err := s.playerRepo.Create(ctx, player); err != nil {
		if errors.Is(err, repositories.ErrPlayerEmailConflict) {
			return nil, ErrEmailConflict
		}
		return nil, fmt.Errorf("ошибка создания игрока: %w", err)
	}

	s.logger.WithField("player_id", player.ID).Info("player registered")
	return s.authenticated(player)
}

func (s *authService) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || input.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrValidationFailed)
	}

	player, err := s.playerRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find player by email: %w", err)
	}

	if !utils.CheckPasswordHash(input.Password, player.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return s.authenticated(player)
}

func (s *authService) authenticated(player *models.Player) (*AuthResult, error) {
	token, session, err := s.tokens.Issue(player)
	if err != nil {
		return nil, err
	}
	populatePlayerDetailsFunc(player, s.uploader)
	return &AuthResult{Player: player, Token: token, Session: session}, nil
}

func (s *authService) Logout(ctx context.Context, session models.Session) error {
	if err := s.tokens.Revoke(ctx, session); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	s.logger.WithField("player_id", session.PlayerID).Debug("player logged out")
	return nil
}
