package repositories

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/Dosada05/micro-tournaments/models"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestBuildTournamentListQuery(t *testing.T) {
	status := models.TournamentUpcoming
	after := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	before := after.Add(24 * time.Hour)

	query, args := buildTournamentListQuery(ListTournamentsFilter{
		Status:       &status,
		StartsAfter:  &after,
		StartsBefore: &before,
		Order:        StartDateAsc,
		Limit:        5,
		Offset:       10,
	})

	assert.Contains(t, query, "AND status = $1")
	assert.Contains(t, query, "AND start_date > $2")
	assert.Contains(t, query, "AND start_date <= $3")
	assert.Contains(t, query, "ORDER BY start_date ASC, id ASC")
	assert.True(t, strings.HasSuffix(query, "LIMIT $4 OFFSET $5"))
	assert.Equal(t, []interface{}{status, after, before, 5, 10}, args)
}

func TestBuildTournamentListQuery_Defaults(t *testing.T) {
	query, args := buildTournamentListQuery(ListTournamentsFilter{})

	assert.Contains(t, query, "ORDER BY start_date DESC, id ASC")
	assert.NotContains(t, query, "LIMIT")
	assert.NotContains(t, query, "$1")
	assert.Empty(t, args)
}

func TestBuildMatchListQuery(t *testing.T) {
	playerID := uuid.New()
	status := models.MatchUpcoming
	after := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	query, args := buildMatchListQuery(ListMatchesFilter{
		PlayerID:       &playerID,
		Status:         &status,
		ScheduledAfter: &after,
		OrderBy:        OrderByScheduledTime,
		Limit:          5,
	})

	assert.Contains(t, query, "JOIN tournaments")
	assert.Contains(t, query, "AND (m.player1_id = $1 OR m.player2_id = $1)")
	assert.Contains(t, query, "AND m.status = $2")
	assert.Contains(t, query, "AND m.scheduled_time > $3")
	assert.Contains(t, query, "ORDER BY m.scheduled_time ASC NULLS LAST, m.id ASC")
	assert.True(t, strings.HasSuffix(query, "LIMIT $4"))
	assert.Equal(t, []interface{}{playerID, status, after, 5}, args)
}

func TestBuildMatchListQuery_WinsNewestFirst(t *testing.T) {
	winnerID := uuid.New()
	tournamentID := uuid.New()

	query, args := buildMatchListQuery(ListMatchesFilter{
		TournamentID: &tournamentID,
		WinnerID:     &winnerID,
		Desc:         true,
	})

	assert.Contains(t, query, "AND m.tournament_id = $1")
	assert.Contains(t, query, "AND m.winner_id = $2")
	assert.Contains(t, query, "ORDER BY m.completed_at DESC NULLS LAST")
	assert.NotContains(t, query, "LIMIT")
	assert.Equal(t, []interface{}{tournamentID, winnerID}, args)
}

type fakeResult struct {
	rows int64
	err  error
}

func (r fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (r fakeResult) RowsAffected() (int64, error) { return r.rows, r.err }

func TestCheckAffectedRows(t *testing.T) {
	assert.NoError(t, checkAffectedRows(fakeResult{rows: 1}, ErrTournamentNotJoinable))
	assert.ErrorIs(t, checkAffectedRows(fakeResult{rows: 0}, ErrTournamentNotJoinable), ErrTournamentNotJoinable)

	err := checkAffectedRows(fakeResult{err: errors.New("driver")}, ErrTournamentNotJoinable)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrTournamentNotJoinable)
}

func TestPQConstraint(t *testing.T) {
	code, constraint, ok := pqConstraint(&pq.Error{Code: pqUniqueViolation, Constraint: "registrations_tournament_id_player_id_key"})
	assert.True(t, ok)
	assert.Equal(t, pqUniqueViolation, code)
	assert.Equal(t, "registrations_tournament_id_player_id_key", constraint)

	_, _, ok = pqConstraint(fmt.Errorf("wrapped: %w", errors.New("plain")))
	assert.False(t, ok)
}
