package services

import "errors"

// Общие ошибки, используемые в разных сервисах и маппинге HTTP.
var (
	ErrNotFound = errors.New("requested resource not found")

	// Ошибки валидации и бизнес-правил
	ErrValidationFailed    = errors.New("validation failed")
	ErrPasswordTooShort    = errors.New("password must be at least 6 characters")
	ErrRegistrationNotOpen = errors.New("tournament registration is not open")
	ErrTournamentFull      = errors.New("tournament registration is full")
	ErrUnsupportedFileType = errors.New("unsupported file type")

	// Ошибки конфликтов
	ErrEmailConflict        = errors.New("an account with this email already exists")
	ErrRegistrationConflict = errors.New("you are already registered for this tournament")

	// Ошибки аутентификации
	ErrInvalidCredentials   = errors.New("Invalid email or password. Please try again or register.")
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrTokenRevoked         = errors.New("session has been logged out")

	ErrPlayerNotFound     = errors.New("player not found")
	ErrTournamentNotFound = errors.New("tournament not found")
	ErrMatchNotFound      = errors.New("match not found")

	ErrUploadsDisabled = errors.New("file uploads are not configured")
)
