package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dosada05/micro-tournaments/models"
	"github.com/google/uuid"
)

var (
	ErrRegistrationConflict = errors.New("player is already registered for this tournament")
	ErrRegistrationInvalid  = errors.New("registration references an unknown player or tournament")
)

type RegistrationRepository interface {
	Create(ctx context.Context, exec SQLExecutor, reg *models.Registration) error
	CountByPlayer(ctx context.Context, playerID uuid.UUID) (int, error)
}

type postgresRegistrationRepository struct {
	db *sql.DB
}

func NewPostgresRegistrationRepository(db *sql.DB) RegistrationRepository {
	return &postgresRegistrationRepository{db: db}
}

func (r *postgresRegistrationRepository) Create(ctx context.Context, exec SQLExecutor, reg *models.Registration) error {
	query := `
		INSERT INTO tournament_registrations (tournament_id, player_id)
		VALUES ($1, $2)
		RETURNING id, registered_at`

	err := getExecutor(r.db, exec).QueryRowContext(ctx, query, reg.TournamentID, reg.PlayerID).
		Scan(&reg.ID, &reg.RegisteredAt)
	if err != nil {
		if code, _, ok := pqConstraint(err); ok {
			switch code {
			case pqUniqueViolation:
				return ErrRegistrationConflict
			case pqForeignKeyViolation:
				return ErrRegistrationInvalid
			}
		}
		return fmt.Errorf("failed to create registration: %w", err)
	}
	return nil
}

func (r *postgresRegistrationRepository) CountByPlayer(ctx context.Context, playerID uuid.UUID) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM tournament_registrations WHERE player_id = $1`
	if err := r.db.QueryRowContext(ctx, query, playerID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count registrations for player %s: %w", playerID, err)
	}
	return count, nil
}
