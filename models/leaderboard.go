package models

import "github.com/google/uuid"

// LeaderboardEntry is a player's position by completed-match wins.
type LeaderboardEntry struct {
	Rank     int       `json:"rank"`
	PlayerID uuid.UUID `json:"player_id"`
	Gamertag string    `json:"gamertag"`
	Wins     int       `json:"wins"`
}

type PodiumPlace struct {
	Place    int       `json:"place"`
	PlayerID uuid.UUID `json:"player_id"`
	Gamertag string    `json:"gamertag"`
	Wins     int       `json:"wins"`
	Prize    float64   `json:"prize"`
	PrizeStr string    `json:"prize_label"`
}

type TournamentWinners struct {
	TournamentID uuid.UUID     `json:"tournament_id"`
	Title        string        `json:"title"`
	Date         string        `json:"date"`
	Podium       []PodiumPlace `json:"podium"`
}

type HallOfFameEntry struct {
	Rank        int       `json:"rank"`
	PlayerID    uuid.UUID `json:"player_id"`
	Gamertag    string    `json:"gamertag"`
	Wins        int       `json:"wins"`
	Earnings    float64   `json:"earnings"`
	EarningsStr string    `json:"earnings_label"`
}

type WinnersPage struct {
	Tournaments []TournamentWinners `json:"tournaments"`
	HallOfFame  []HallOfFameEntry   `json:"hall_of_fame"`
}
