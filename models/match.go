package models

import (
	"time"

	"github.com/google/uuid"
)

type MatchStatus string

const (
	MatchUpcoming  MatchStatus = "upcoming"
	MatchLive      MatchStatus = "live"
	MatchCompleted MatchStatus = "completed"
)

// Match is a single pairing inside a tournament. Player slots, scores and the
// winner stay nil until the store fills them in.
type Match struct {
	ID            uuid.UUID   `json:"id"`
	TournamentID  uuid.UUID   `json:"tournament_id"`
	Round         string      `json:"round"`
	MatchNumber   int         `json:"match_number"`
	Player1ID     *uuid.UUID  `json:"player1_id,omitempty"`
	Player2ID     *uuid.UUID  `json:"player2_id,omitempty"`
	Player1Score  *int        `json:"player1_score,omitempty"`
	Player2Score  *int        `json:"player2_score,omitempty"`
	WinnerID      *uuid.UUID  `json:"winner_id,omitempty"`
	Status        MatchStatus `json:"status"`
	ScheduledTime *time.Time  `json:"scheduled_time,omitempty"`
	CompletedAt   *time.Time  `json:"completed_at,omitempty"`

	Tournament *TournamentSummary `json:"tournament,omitempty"`
}

func (m Match) HasPlayer(id uuid.UUID) bool {
	return (m.Player1ID != nil && *m.Player1ID == id) || (m.Player2ID != nil && *m.Player2ID == id)
}

func (m Match) WonBy(id uuid.UUID) bool {
	return m.WinnerID != nil && *m.WinnerID == id
}

// Scores returns the player's and the opponent's score, ok is false until both are reported.
func (m Match) Scores(playerID uuid.UUID) (own, opponent int, ok bool) {
	if m.Player1Score == nil || m.Player2Score == nil {
		return 0, 0, false
	}
	if m.Player2ID != nil && *m.Player2ID == playerID {
		return *m.Player2Score, *m.Player1Score, true
	}
	return *m.Player1Score, *m.Player2Score, true
}

func (m Match) TournamentTitle() string {
	if m.Tournament == nil {
		return ""
	}
	return m.Tournament.Title
}
