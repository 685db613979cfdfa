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

var ErrMatchNotFound = errors.New("match not found")

type MatchOrder int

const (
	OrderByCompletedAt MatchOrder = iota
	OrderByScheduledTime
)

// ListMatchesFilter narrows a match query. PlayerID matches either player slot.
type ListMatchesFilter struct {
	TournamentID   *uuid.UUID
	WinnerID       *uuid.UUID
	PlayerID       *uuid.UUID
	Status         *models.MatchStatus
	ScheduledAfter *time.Time
	OrderBy        MatchOrder
	Desc           bool
	Limit          int
}

type MatchRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Match, error)
	// List returns matches joined with their tournament's title and prize pool.
	List(ctx context.Context, filter ListMatchesFilter) ([]models.Match, error)
}

type postgresMatchRepository struct {
	db *sql.DB
}

func NewPostgresMatchRepository(db *sql.DB) MatchRepository {
	return &postgresMatchRepository{db: db}
}

const matchSelect = `
	SELECT m.id, m.tournament_id, m.round, m.match_number, m.player1_id, m.player2_id,
	       m.player1_score, m.player2_score, m.winner_id, m.status, m.scheduled_time, m.completed_at,
	       t.title, t.prize_pool
	FROM matches m
	JOIN tournaments t ON t.id = m.tournament_id`

func (r *postgresMatchRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Match, error) {
	rows, err := r.db.QueryContext(ctx, matchSelect+` WHERE m.id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query match %s: %w", id, err)
	}
	defer rows.Close()

	matches, err := scanMatches(rows)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, ErrMatchNotFound
	}
	return &matches[0], nil
}

func (r *postgresMatchRepository) List(ctx context.Context, filter ListMatchesFilter) ([]models.Match, error) {
	query, args := buildMatchListQuery(filter)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query matches: %w", err)
	}
	defer rows.Close()

	return scanMatches(rows)
}

func buildMatchListQuery(filter ListMatchesFilter) (string, []interface{}) {
	query := matchSelect + ` WHERE 1=1`
	args := []interface{}{}

	if filter.TournamentID != nil {
		query += " AND m.tournament_id = " + placeholder(&args, *filter.TournamentID)
	}
	if filter.WinnerID != nil {
		query += " AND m.winner_id = " + placeholder(&args, *filter.WinnerID)
	}
	if filter.PlayerID != nil {
		p := placeholder(&args, *filter.PlayerID)
		query += fmt.Sprintf(" AND (m.player1_id = %s OR m.player2_id = %s)", p, p)
	}
	if filter.Status != nil {
		query += " AND m.status = " + placeholder(&args, *filter.Status)
	}
	if filter.ScheduledAfter != nil {
		query += " AND m.scheduled_time > " + placeholder(&args, *filter.ScheduledAfter)
	}

	column := "m.completed_at"
	if filter.OrderBy == OrderByScheduledTime {
		column = "m.scheduled_time"
	}
	direction := "ASC"
	if filter.Desc {
		direction = "DESC"
	}
	query += fmt.Sprintf(" ORDER BY %s %s NULLS LAST, m.id ASC", column, direction)

	if filter.Limit > 0 {
		query += " LIMIT " + placeholder(&args, filter.Limit)
	}
	return query, args
}

func scanMatches(rows *sql.Rows) ([]models.Match, error) {
	matches := make([]models.Match, 0)
	for rows.Next() {
		var m models.Match
		summary := &models.TournamentSummary{}
		if err := rows.Scan(
			&m.ID, &m.TournamentID, &m.Round, &m.MatchNumber, &m.Player1ID, &m.Player2ID,
			&m.Player1Score, &m.Player2Score, &m.WinnerID, &m.Status, &m.ScheduledTime, &m.CompletedAt,
			&summary.Title, &summary.PrizePool,
		); err != nil {
			return nil, fmt.Errorf("failed to scan match row: %w", err)
		}
		m.Tournament = summary
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during match rows iteration: %w", err)
	}
	return matches, nil
}
