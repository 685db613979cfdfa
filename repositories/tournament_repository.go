package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Dosada05/micro-tournaments/models"
	"github.com/google/uuid"
)

var (
	ErrTournamentNotFound    = errors.New("tournament not found")
	ErrTournamentNotJoinable = errors.New("tournament is full or no longer open")
)

type TournamentOrder int

const (
	StartDateDesc TournamentOrder = iota
	StartDateAsc
)

type ListTournamentsFilter struct {
	Status       *models.TournamentStatus
	StartsAfter  *time.Time
	StartsBefore *time.Time
	Order        TournamentOrder
	Limit        int
	Offset       int
}

type TournamentRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Tournament, error)
	List(ctx context.Context, filter ListTournamentsFilter) ([]models.Tournament, error)
	// IncrementPlayers takes a seat in an upcoming tournament that still has room.
	IncrementPlayers(ctx context.Context, exec SQLExecutor, id uuid.UUID) error
}

type postgresTournamentRepository struct {
	db *sql.DB
}

func NewPostgresTournamentRepository(db *sql.DB) TournamentRepository {
	return &postgresTournamentRepository{db: db}
}

const tournamentColumns = `
	id, title, description, game, format, start_date, status,
	max_players, current_players, prize_pool, created_at`

func (r *postgresTournamentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Tournament, error) {
	query := `SELECT ` + tournamentColumns + ` FROM tournaments WHERE id = $1`

	t := &models.Tournament{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&t.ID, &t.Title, &t.Description, &t.Game, &t.Format, &t.StartDate, &t.Status,
		&t.MaxPlayers, &t.CurrentPlayers, &t.PrizePool, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to scan tournament %s: %w", id, err)
	}
	return t, nil
}

func (r *postgresTournamentRepository) List(ctx context.Context, filter ListTournamentsFilter) ([]models.Tournament, error) {
	query, args := buildTournamentListQuery(filter)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query tournaments: %w", err)
	}
	defer rows.Close()

	tournaments := make([]models.Tournament, 0)
	for rows.Next() {
		var t models.Tournament
		if scanErr := rows.Scan(
			&t.ID, &t.Title, &t.Description, &t.Game, &t.Format, &t.StartDate, &t.Status,
			&t.MaxPlayers, &t.CurrentPlayers, &t.PrizePool, &t.CreatedAt,
		); scanErr != nil {
			return nil, fmt.Errorf("failed to scan tournament row: %w", scanErr)
		}
		tournaments = append(tournaments, t)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during tournament rows iteration: %w", err)
	}
	return tournaments, nil
}

func buildTournamentListQuery(filter ListTournamentsFilter) (string, []interface{}) {
	query := `SELECT ` + tournamentColumns + ` FROM tournaments WHERE 1=1`
	args := []interface{}{}

	if filter.Status != nil {
		query += " AND status = " + placeholder(&args, *filter.Status)
	}
	if filter.StartsAfter != nil {
		query += " AND start_date > " + placeholder(&args, *filter.StartsAfter)
	}
	if filter.StartsBefore != nil {
		query += " AND start_date <= " + placeholder(&args, *filter.StartsBefore)
	}

	if filter.Order == StartDateAsc {
		query += " ORDER BY start_date ASC, id ASC"
	} else {
		query += " ORDER BY start_date DESC, id ASC"
	}

	if filter.Limit > 0 {
		query += " LIMIT " + placeholder(&args, filter.Limit)
	}
	if filter.Offset > 0 {
		query += " OFFSET " + placeholder(&args, filter.Offset)
	}
	return query, args
}

func (r *postgresTournamentRepository) IncrementPlayers(ctx context.Context, exec SQLExecutor, id uuid.UUID) error {
	query := `
		UPDATE tournaments
		SET current_players = current_players + 1
		WHERE id = $1 AND status = $2 AND current_players < max_players`

	result, err := getExecutor(r.db, exec).ExecContext(ctx, query, id, models.TournamentUpcoming)
	if err != nil {
		return fmt.Errorf("failed to increment players for tournament %s: %w", id, err)
	}
	return checkAffectedRows(result, ErrTournamentNotJoinable)
}
