package models

import (
	"time"

	"github.com/google/uuid"
)

// TournamentStatus is owned by the store; the API only reads it.
type TournamentStatus string

const (
	TournamentUpcoming  TournamentStatus = "upcoming"
	TournamentLive      TournamentStatus = "live"
	TournamentCompleted TournamentStatus = "completed"
)

// PrizeDistribution holds the podium shares of a prize pool, 1st place first.
var PrizeDistribution = []float64{0.5, 0.3, 0.2}

type Tournament struct {
	ID             uuid.UUID        `json:"id"`
	Title          string           `json:"title"`
	Description    *string          `json:"description,omitempty"`
	Game           *string          `json:"game,omitempty"`
	Format         *string          `json:"format,omitempty"`
	StartDate      time.Time        `json:"start_date"`
	Status         TournamentStatus `json:"status"`
	MaxPlayers     int              `json:"max_players"`
	CurrentPlayers int              `json:"current_players"`
	PrizePool      *float64         `json:"prize_pool,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
}

func (t Tournament) IsFull() bool {
	return t.MaxPlayers > 0 && t.CurrentPlayers >= t.MaxPlayers
}

// Summary returns the fields that matches carry about their parent tournament.
func (t Tournament) Summary() *TournamentSummary {
	return &TournamentSummary{Title: t.Title, PrizePool: t.PrizePool}
}

// TournamentSummary is the joined part of a tournament loaded together with a match.
type TournamentSummary struct {
	Title     string   `json:"title"`
	PrizePool *float64 `json:"prize_pool,omitempty"`
}

// PlacePrize returns the prize for the given podium place (0 = first), or fallback
// when the pool is unknown.
func (s *TournamentSummary) PlacePrize(place int, fallback float64) float64 {
	if place < 0 || place >= len(PrizeDistribution) {
		return 0
	}
	if s == nil || s.PrizePool == nil || *s.PrizePool <= 0 {
		return fallback
	}
	return *s.PrizePool * PrizeDistribution[place]
}
